package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"tickpanel/config"
)

// MailSender is the outgoing mail collaborator. Templating stays here;
// the auth flows only decide whether and what to send.
type MailSender interface {
	SendPasswordReset(to, resetURL string) error
	SendResetConfirmation(to string) error
}

// SMTPMailService sends mail through a plain SMTP relay.
type SMTPMailService struct {
	cfg config.SMTPConfig
}

func NewSMTPMailService(cfg config.SMTPConfig) *SMTPMailService {
	return &SMTPMailService{cfg: cfg}
}

func (s *SMTPMailService) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(`<p>You requested a password reset for your account.</p>
<p><a href="%s">Reset Password</a></p>
<p>If the link doesn't work, copy and paste it into your browser:</p>
<p>%s</p>
<p>This link will expire in 1 hour. If you didn't request this password reset, please ignore this email.</p>`,
		resetURL, resetURL)
	return s.send(to, "Password Reset Request", body)
}

func (s *SMTPMailService) SendResetConfirmation(to string) error {
	body := `<p>Your password has been successfully reset.</p>
<p>If you did not perform this action, please contact support immediately.</p>`
	return s.send(to, "Password Reset Successful", body)
}

func (s *SMTPMailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
