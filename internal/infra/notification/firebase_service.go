// Package notification delivers push messages to student devices over FCM.
package notification

import (
	"context"

	"academy/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// FCM caps multicast requests at 500 tokens; larger fan-outs are chunked.
const multicastLimit = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService builds the FCM-backed push sender from a service
// account credentials file.
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification pushes one message to one device token.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return errors.Wrap(err, "send notification")
	}

	return nil
}

// SendBatchNotification fans one message out to many device tokens. Along
// with the delivery counts it reports the tokens FCM considers dead so the
// caller can drop their registrations.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for len(tokens) > 0 {
		chunk := tokens
		if len(chunk) > multicastLimit {
			chunk = tokens[:multicastLimit]
		}
		tokens = tokens[len(chunk):]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if err != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(err, "send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
