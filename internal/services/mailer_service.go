package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/propertyhub/listings-api/internal/utils"
)

// MailerService delivers transactional email. With no API key configured it
// logs the message instead of sending, so local setups work without SendGrid.
type MailerService interface {
	SendPasswordReset(toEmail, username, resetToken string) error
}

type mailerService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewMailerService(apiKey, fromEmail, fromName string) MailerService {
	m := &mailerService{fromEmail: fromEmail, fromName: fromName}
	if apiKey != "" {
		m.client = sendgrid.NewSendClient(apiKey)
	}
	return m
}

func (m *mailerService) SendPasswordReset(toEmail, username, resetToken string) error {
	subject := "Password reset request"
	body := fmt.Sprintf(
		"Hi %s,\n\nUse the token below to reset your password:\n\n%s\n\nIf you did not request this, you can ignore this email.\n",
		username, resetToken,
	)

	if m.client == nil {
		utils.Logger.WithField("to", toEmail).Info("mailer not configured; logging reset token instead of sending")
		utils.Logger.WithField("reset_token", resetToken).Debug("password reset token")
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(username, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status %d", resp.StatusCode)
	}
	return nil
}
