package push

import (
	"context"
	"errors"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMTransport sends messages through Firebase Cloud Messaging.
type FCMTransport struct {
	client *messaging.Client
}

// NewFCMTransport initializes the Firebase Admin SDK. Inline
// credential JSON takes precedence over a credentials file path; one
// of the two must be provided.
func NewFCMTransport(ctx context.Context, credentialsJSON []byte, credentialsFile string) (*FCMTransport, error) {
	var opts []option.ClientOption
	switch {
	case len(credentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	default:
		return nil, errors.New("fcm: no service account configured")
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMTransport{client: client}, nil
}

// Send delivers a data-only message. No Notification block is set; see
// the package comment.
func (t *FCMTransport) Send(ctx context.Context, token string, data map[string]string, priority string, ttl time.Duration) (string, error) {
	msg := &messaging.Message{
		Token: token,
		Data:  data,
		Android: &messaging.AndroidConfig{
			Priority: priority,
			TTL:      &ttl,
		},
	}
	return t.client.Send(ctx, msg)
}
