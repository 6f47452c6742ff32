package services

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"trainings-module/config"
	"trainings-module/logger"
	"trainings-module/models"
)

// SendEmailDirect sends an email via SMTP using the configured credentials.
func SendEmailDirect(to, subject, body string) error {
	logger.Info("Sending email via SMTP - Recipient: %s", to)

	from := config.AppConfig.EmailFrom
	if from == "" {
		from = config.AppConfig.SMTPUser
	}
	if from == "" {
		return fmt.Errorf("email sender not configured (set EMAIL_FROM or SMTP_USER)")
	}

	if config.AppConfig.SMTPUser == "" || config.AppConfig.SMTPPass == "" {
		return fmt.Errorf("smtp credentials not configured (set SMTP_USER and SMTP_PASS)")
	}

	port := 587
	if p, err := strconv.Atoi(config.AppConfig.SMTPPort); err == nil {
		port = p
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.AppConfig.SMTPHost, port, config.AppConfig.SMTPUser, config.AppConfig.SMTPPass)

	if err := d.DialAndSend(m); err != nil {
		logger.Error("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email successfully sent to: %s", to)
	return nil
}

// SendContactMessage forwards a validated contact-form submission to the
// configured site address.
func SendContactMessage(name, email, phone, message string) error {
	to := config.AppConfig.ContactEmail
	if to == "" {
		return fmt.Errorf("contact email not configured (set CONTACT_EMAIL)")
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2 style="color: #16a34a;">New contact message</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Phone:</strong> %s</p>
	<p style="border-left: 3px solid #16a34a; padding-left: 12px;">%s</p>
</body>
</html>`, name, email, phone, message)

	return SendEmailDirect(to, "New contact message from "+name, body)
}

// SendEnrollmentConfirmation emails the enrollee after their enrollment is
// confirmed. Non-critical: callers log failures and move on.
func SendEnrollmentConfirmation(e *models.Enrollment, t *models.Training) error {
	if e.Email == "" {
		return fmt.Errorf("enrollee email is required")
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2 style="color: #16a34a;">Enrollment confirmed</h2>
	<p>Dear %s,</p>
	<p>Your enrollment in <strong>%s</strong> by %s has been confirmed.</p>
	<p><strong>Duration:</strong> %s<br><strong>Amount:</strong> &#8358;%d</p>
	<p>We will contact you with the next steps shortly.</p>
</body>
</html>`, e.Name, t.Title, t.Provider, t.Duration, e.Amount)

	return SendEmailDirect(e.Email, "Your enrollment is confirmed: "+t.Title, body)
}

// SendApprovalNotice emails the site address when a pending training goes
// live, so providers can be informed.
func SendApprovalNotice(t *models.Training) error {
	to := config.AppConfig.ContactEmail
	if to == "" {
		return fmt.Errorf("contact email not configured (set CONTACT_EMAIL)")
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2 style="color: #16a34a;">Training approved</h2>
	<p><strong>%s</strong> by %s is now live on the listing.</p>
	<p><strong>Category:</strong> %s<br><strong>Price:</strong> &#8358;%d</p>
</body>
</html>`, t.Title, t.Provider, t.Category, t.Price)

	return SendEmailDirect(to, "Training approved: "+t.Title, body)
}
