package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"raceday-backend/models"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

// SendImportSummary mails the batch outcome to the contact email taken from
// the first row of the uploaded file. Non-blocking.
func SendImportSummary(eventName string, batch *models.ImportBatch) {
	if batch.ContactEmail == "" {
		return
	}
	go func() {
		subject := fmt.Sprintf("Import result for %s", eventName)
		body := fmt.Sprintf(`<h2>Registration import finished</h2>
<p>Event: <strong>%s</strong><br>File: %s</p>
<ul>
<li>Total rows: %d</li>
<li>Imported: %d</li>
<li>Failed: %d</li>
<li>Shirts sold: %d</li>
</ul>
<p>Status: <strong>%s</strong></p>`,
			eventName, batch.FileName,
			batch.TotalRows, batch.SuccessCount, batch.FailedCount,
			batch.TotalShirtsSold, batch.Status)
		if err := SendEmail(batch.ContactEmail, subject, body); err != nil {
			log.Printf("Failed to send import summary email: %v", err)
		}
	}()
}

// SendRegistrationConfirmation mails fee details to an online registrant.
// Non-blocking.
func SendRegistrationConfirmation(eventName string, reg *models.Registration) {
	if reg.Email == "" {
		return
	}
	go func() {
		subject := fmt.Sprintf("Registration received for %s", eventName)
		body := fmt.Sprintf(`<h2>Thank you, %s!</h2>
<p>Your registration for <strong>%s</strong> has been received.</p>
<ul>
<li>Race fee: %.0f</li>
<li>Shirt fee: %.0f</li>
<li>Total: %.0f</li>
</ul>
<p>Payment status: %s. We will confirm your spot once payment completes.</p>`,
			reg.FullName, eventName, reg.RaceFee, reg.ShirtFee, reg.TotalAmount, reg.PaymentStatus)
		if err := SendEmail(reg.Email, subject, body); err != nil {
			log.Printf("Failed to send registration confirmation email: %v", err)
		}
	}()
}
