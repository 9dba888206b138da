package mailing

import (
	"family-hub-backend/internal/utils"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendInviteMail mails a family invite code to a prospective member.
func SendInviteMail(toEmail, familyName, inviteCode string) error {
	emailConfig := LoadMailConfig()
	body := fmt.Sprintf(
		"<p>You have been invited to join the <b>%s</b> family on Family Hub.</p>"+
			"<p>Your invite code: <b>%s</b></p>"+
			"<p>Register at %s and enter the code to join.</p>",
		familyName, inviteCode, emailConfig.AppURL,
	)
	return SendMail(toEmail, "Family Hub invitation", body)
}

// SendExpiryDigestMail mails the daily list of pantry items about to expire.
func SendExpiryDigestMail(toEmail string, itemLines []string) error {
	body := fmt.Sprintf(
		"<p>The following pantry items expire within the next few days:</p><ul><li>%s</li></ul>",
		strings.Join(itemLines, "</li><li>"),
	)
	return SendMail(toEmail, "Pantry items expiring soon", body)
}
