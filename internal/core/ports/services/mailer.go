package services

import "context"

// Mailer delivers transactional mail (password-reset links).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
