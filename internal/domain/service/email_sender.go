package service

import "context"

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
