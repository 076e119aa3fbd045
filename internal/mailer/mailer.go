package mailer

import (
	"context"

	"go.uber.org/fx"
	gomail "gopkg.in/gomail.v2"

	"github.com/Cba40/blogCBA/pkg/envutils"
)

type Mail struct {
	To      string
	Subject string
	HTML    string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     envutils.Env("SMTP_HOST", "localhost"),
		Port:     envutils.EnvInt("SMTP_PORT", 587),
		Username: envutils.Env("SMTP_USERNAME", ""),
		Password: envutils.EnvSecret("SMTP_PASSWORD"),
		From:     envutils.Env("MAIL_FROM", "CBA Blog <no-reply@cbablog.local>"),
	}
}

// SMTPMailer delivers through a plain SMTP relay, one dial per message.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)

	return m.dialer.DialAndSend(msg)
}

type NewSMTPMailerParams struct {
	fx.In

	Config *SMTPConfig
}

func NewSMTPMailer(params NewSMTPMailerParams) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(
			params.Config.Host,
			params.Config.Port,
			params.Config.Username,
			params.Config.Password,
		),
		from: params.Config.From,
	}
}
