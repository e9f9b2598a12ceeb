package notification

import (
	"context"
	"crypto/tls"

	"wingman/config"
	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"gopkg.in/gomail.v2"
)

const defaultSMTPPort = 587

// smtpEmailService implements EmailSender over SMTP
type smtpEmailService struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

// NewSMTPEmailService creates an SMTP backed EmailSender
func NewSMTPEmailService(cfg *config.EmailConfig) (service.EmailSender, error) {
	if cfg == nil || cfg.SMTPHost == "" || cfg.From == "" {
		return nil, errors.New("incomplete SMTP configuration")
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = defaultSMTPPort
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.Username, cfg.Password)
	dialer.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}

	return &smtpEmailService{
		from:     cfg.From,
		fromName: cfg.FromName,
		dialer:   dialer,
	}, nil
}

// Send delivers one HTML email. The context is only checked before dialing since
// gomail does not accept one.
func (s *smtpEmailService) Send(ctx context.Context, msg *service.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, s.fromName))
	if msg.ToName != "" {
		m.SetHeader("To", m.FormatAddress(msg.To, msg.ToName))
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", msg.To)
	}

	return nil
}

// noopEmailSender is used when SMTP is not configured
type noopEmailSender struct{}

func (noopEmailSender) Send(context.Context, *service.EmailMessage) error {
	return nil
}
