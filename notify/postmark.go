package notify

import (
	"context"

	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
)

// PostmarkTag is attached to every alert sent through Postmark
const PostmarkTag = "phonewatch-alert"

// PostmarkNotifier sends alerts through the Postmark HTTP API
type PostmarkNotifier struct {
	client *postmark.Client
}

func NewPostmarkNotifier(serverToken string) (*PostmarkNotifier, error) {
	if serverToken == "" {
		return nil, errors.New("postmark server token is required")
	}
	return &PostmarkNotifier{client: postmark.NewClient(serverToken, "")}, nil
}

func (n *PostmarkNotifier) Notify(ctx context.Context, msg Message) error {
	resp, err := n.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		Subject:  msg.Subject,
		TextBody: msg.Body,
		Tag:      PostmarkTag,
	})
	if err != nil {
		return errors.Wrap(err, "send alert email via postmark")
	}
	if resp.ErrorCode > 0 {
		return errors.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}
