package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var taskService TaskServiceInterface

func SetTaskService(service TaskServiceInterface) {
	taskService = service
}

func CreateTask(c *gin.Context) {
	var input struct {
		ParentID    string `json:"parentId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Reward      string `json:"reward"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	task, err := taskService.Create(c.Request.Context(), input.ParentID, input.Title, input.Description, input.Reward)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task created successfully", "data": task})
}

func CompleteTask(c *gin.Context) {
	taskID := c.Param("task_id")
	var input struct {
		ChildID string `json:"childId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	task, err := taskService.Complete(c.Request.Context(), input.ChildID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed", "data": task})
}

func ListTasksForChild(c *gin.Context) {
	childID := c.Param("child_id")
	tasks, err := taskService.ListForChild(c.Request.Context(), childID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tasks, "count": len(tasks)})
}

func ListTasksForParent(c *gin.Context) {
	parentID := c.Param("parent_id")
	tasks, err := taskService.ListForParent(c.Request.Context(), parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tasks, "count": len(tasks)})
}

func DeleteTask(c *gin.Context) {
	taskID := c.Param("task_id")
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := taskService.Delete(c.Request.Context(), input.ParentID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
