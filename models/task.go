package models

import "time"

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	TaskID      string     `json:"taskId" firestore:"taskId"`
	ParentID    string     `json:"parentId" firestore:"parentId"`
	ChildID     string     `json:"childId" firestore:"childId"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description,omitempty" firestore:"description,omitempty"`
	Reward      string     `json:"reward,omitempty" firestore:"reward,omitempty"`
	Status      string     `json:"status" firestore:"status"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
}
