package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"time"
)

// ======================
// SMTP Configuration
// ======================
var (
	smtpHost      = os.Getenv("SMTP_HOST")
	smtpPort      = os.Getenv("SMTP_PORT")
	smtpUsername  = os.Getenv("SMTP_USERNAME")
	smtpPassword  = os.Getenv("SMTP_PASSWORD")
	smtpFromName  = os.Getenv("SMTP_FROM_NAME")
	smtpFromEmail = os.Getenv("SMTP_FROM_EMAIL")
	frontendURL   = os.Getenv("FRONTEND_URL")
)

// sendEmail dials SMTP, upgrades to TLS and delivers one message.
// When SMTP is not configured the mail is logged and skipped, so local
// environments keep working.
func sendEmail(to, subject, body string) error {
	if smtpHost == "" || smtpUsername == "" || smtpPassword == "" {
		fmt.Printf("⚠️ SMTP not configured. Skipping email to %s (%s)\n", to, subject)
		return nil
	}

	if smtpFromEmail == "" {
		smtpFromEmail = smtpUsername
	}

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         smtpHost,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(smtpFromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		smtpFromName, smtpFromEmail, to, subject, body)

	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

// SendResetLink mails the password reset link for the given token
func SendResetLink(to, token string) error {
	base := frontendURL
	if base == "" {
		base = "http://localhost:3000"
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", base, token)
	body := fmt.Sprintf("We received a request to reset your password.\n\nReset link (valid for 15 minutes):\n%s\n\nIf you did not request this, you can ignore this email.", link)
	return sendEmail(to, "Password Reset Request", body)
}

// SendPaymentReceipt mails a plain-text receipt after a successful payment
func SendPaymentReceipt(to, eventName string, amount float64, method string, paidAt time.Time) error {
	body := fmt.Sprintf(
		"Thank you for your purchase!\n\nEvent   : %s\nAmount  : %.2f\nMethod  : %s\nPaid at : %s\n\nSee you at the event.",
		eventName, amount, method, paidAt.Format("Jan 2, 2006 15:04"),
	)
	return sendEmail(to, fmt.Sprintf("Payment receipt - %s", eventName), body)
}
