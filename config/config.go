package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client

// Значения по умолчанию для push-канала: доставка негарантированная,
// поэтому ограничитель настроен щедро и только отсекает всплески.
const (
	defaultPushRPS   = 50
	defaultPushBurst = 100
)

func InitFirebase() {
	opt := option.WithCredentialsFile(os.Getenv("FIREBASE_CREDENTIALS_PATH"))
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}
	FirebaseApp = app

	client, err := app.Firestore(context.Background())
	if err != nil {
		log.Fatalf("error getting Firestore client: %v\n", err)
	}
	FirestoreClient = client

	log.Println("Successfully connected to Firestore!")
}

// PushRateLimit читает лимит отправки push из PUSH_RATE_LIMIT (rps).
// Burst всегда вдвое больше rps, отдельной настройки для него нет.
func PushRateLimit() (float64, int) {
	raw := os.Getenv("PUSH_RATE_LIMIT")
	if raw == "" {
		return defaultPushRPS, defaultPushBurst
	}

	rps, err := strconv.ParseFloat(raw, 64)
	if err != nil || rps <= 0 {
		log.Printf("Invalid PUSH_RATE_LIMIT %q, using default %d rps", raw, defaultPushRPS)
		return defaultPushRPS, defaultPushBurst
	}
	return rps, int(rps * 2)
}
