// Package notify sends best-effort confirmation emails to students after a
// successful signup or unregister. Failures are logged and never surface to
// the HTTP caller.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"school-activities/internal/common/config"
	"school-activities/internal/common/logger"
)

// Notifier delivers registration confirmations.
type Notifier interface {
	SignupConfirmation(ctx context.Context, email, activity string)
	UnregisterConfirmation(ctx context.Context, email, activity string)
}

// sesAPI is the subset of the SES client used here, extracted for testing.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier sends confirmations through AWS SES.
type SESNotifier struct {
	client sesAPI
	sender string
	logger logger.Logger
}

// NewSES builds an SESNotifier from the notification configuration.
func NewSES(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*SESNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESNotifier{
		client: ses.NewFromConfig(awsCfg),
		sender: cfg.Sender,
		logger: log,
	}, nil
}

// NewSESWithClient wraps a pre-built SES client. Used by tests.
func NewSESWithClient(client sesAPI, sender string, log logger.Logger) *SESNotifier {
	return &SESNotifier{client: client, sender: sender, logger: log}
}

func (n *SESNotifier) SignupConfirmation(ctx context.Context, email, activity string) {
	subject := fmt.Sprintf("You are signed up for %s", activity)
	body := fmt.Sprintf("Hi,\n\nYou have been signed up for %s. See you there!\n", activity)
	n.send(ctx, email, activity, subject, body)
}

func (n *SESNotifier) UnregisterConfirmation(ctx context.Context, email, activity string) {
	subject := fmt.Sprintf("You have left %s", activity)
	body := fmt.Sprintf("Hi,\n\nYou have been unregistered from %s.\n", activity)
	n.send(ctx, email, activity, subject, body)
}

func (n *SESNotifier) send(ctx context.Context, to, activity, subject, body string) {
	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.sender),
	})
	if err != nil {
		n.logger.WithError(err).Warn("confirmation email failed", map[string]interface{}{
			"email":    to,
			"activity": activity,
		})
		return
	}
	n.logger.Debug("confirmation email sent", map[string]interface{}{
		"email":    to,
		"activity": activity,
	})
}

// Noop is a Notifier that does nothing. Used when notifications are disabled.
type Noop struct{}

func (Noop) SignupConfirmation(ctx context.Context, email, activity string)     {}
func (Noop) UnregisterConfirmation(ctx context.Context, email, activity string) {}
