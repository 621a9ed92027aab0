package external_services

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// smtp attribute
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
	send        func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		send:        smtp.SendMail,
	}
}

// make sure EmailService implements contract.IEmailService.go
var _ contract.IEmailService = (*EmailService)(nil)

func buildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s\r\n"+
			"Subject: %s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		to, from, subject, body,
	))
}

// SendEmail delivers a plain text message over SMTP with PLAIN auth.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := es.send(addr, auth, es.From, []string{to}, buildMessage(es.From, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// ErrNoMailHost is returned by NewMailer when production has no SMTP host.
var ErrNoMailHost = errors.New("EMAIL_HOST is required in production")

// NewMailer returns an SMTP mailer when host is set. Outside production it
// falls back to a LogMailer; in production that fallback is refused.
func NewMailer(host, port, username, appPassword, from string, production bool, logger usecasecontract.IAppLogger) (contract.IEmailService, error) {
	if host != "" {
		return NewEmailService(host, port, username, appPassword, from), nil
	}
	if production {
		return nil, ErrNoMailHost
	}
	logger.Warnf("EMAIL_HOST not set, outgoing mail will only be logged")
	return NewLogMailer(logger), nil
}

// LogMailer writes outgoing mail to the application log. Bodies carry
// reset links, so they are logged at debug level only.
type LogMailer struct {
	logger usecasecontract.IAppLogger
}

var _ contract.IEmailService = (*LogMailer)(nil)

func NewLogMailer(logger usecasecontract.IAppLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.logger.Infof("mail to=%s subject=%q", to, subject)
	m.logger.Debugf("mail body to=%s body=%q", to, body)
	return nil
}
