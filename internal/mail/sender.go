package mail

import "orghub-backend/internal/logger"

// Message is a single outbound email.
type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Sender delivers one message synchronously. The queue sits in front of it.
type Sender interface {
	Send(msg Message) error
}

// LogSender is the fallback when no SendGrid API key is configured: it logs
// the message instead of delivering it. Useful for local development.
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	logger.Info("Email suppressed (no mail provider configured)",
		"to", msg.To, "subject", msg.Subject)
	return nil
}
