package integrations

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/Deryl7/StudyTrack/internal/config"
)

func InitFirebase(ctx context.Context) (*firebase.App, *firestore.Client, *messaging.Client) {
	// Connect Firebase
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	if err != nil {
		log.Fatal("Firebase ERR:", err)
	}
	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal("Firestore ERR:", err)
	}
	fcmClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatal("FCM ERR:", err)
	}
	log.Println("Firebase connected")
	return app, fsClient, fcmClient
}
