package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid. A missing API key
// turns sending into a logged no-op so local and demo setups work without
// provider credentials.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("[EMAIL] SENDGRID_API_KEY not set, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}

// SendWelcomeEmail greets a newly provisioned user and names the
// organization created for them. Called fire-and-forget from the callback
// handler.
func SendWelcomeEmail(toEmail, name, orgName string) {
	if toEmail == "" {
		return
	}

	subject := "Welcome to your new organization"
	body := fmt.Sprintf(`
	<html>
	<body style="font-family: Helvetica, Arial, sans-serif; color: #1a1a2e;">
		<h2>Welcome, %s!</h2>
		<p>Your organization <strong>%s</strong> has been created and you have
		been signed in as its first teacher.</p>
		<p>Create a course to get started.</p>
	</body>
	</html>`, name, orgName)

	if err := SendEmail(toEmail, name, subject, body); err != nil {
		log.Printf("[EMAIL] Welcome email to %s failed: %v", toEmail, err)
	}
}
