// utils/firebase.go
package utils

import (
	"context"
	"log"

	"pressroom/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseAuthClient verifies managed-identity ID tokens when the
// deployment delegates sign-in to Firebase. Nil when not configured;
// the built-in JWT session path then handles authentication alone.
var FirebaseAuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	credsFile := config.AppConfig.FirebaseCredentialsFile
	if credsFile == "" {
		log.Println("firebase: no credentials configured, managed auth disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseAuthClient = client
}

// VerifyFirebaseIDToken validates a Firebase ID token and returns its UID.
func VerifyFirebaseIDToken(ctx context.Context, idToken string) (string, error) {
	tok, err := FirebaseAuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return tok.UID, nil
}
