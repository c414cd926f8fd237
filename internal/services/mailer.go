package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// Mailer sends a single message. Handlers depend on this interface so
// the SMTP transport can be swapped out in tests.
type Mailer interface {
	Send(to, subject, body string) error
}

const companyName = "AutoRent"

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #2c7be5; margin: 0;">AutoRent</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2026 AutoRent. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

// SMTPMailer sends mail through the SMTP server configured in the
// environment.
type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		from:     os.Getenv("EMAIL_FROM"),
		password: os.Getenv("EMAIL_PASSWORD"),
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.from == "" || m.password == "" || m.host == "" || m.port == "" {
		return fmt.Errorf("email configuration not set")
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", companyName, m.from),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
		"X-Mailer":     "AutoRent-Mailer",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(message)); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}

	return nil
}

// SendReservationCodeEmail mails the confirmation code for a new
// reservation.
func SendReservationCodeEmail(m Mailer, to, carName, code string) error {
	subject := "Please confirm your reservation - AutoRent"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Confirm Your Reservation</h1>
					<p>Hello,</p>
					<p>Thank you for reserving a <strong>%s</strong> with AutoRent.</p>
					<p>Your reservation code is:</p>
					<p style="text-align: center; font-size: 28px; letter-spacing: 4px;"><strong>%s</strong></p>
					<p>Enter this code in your reservations page to activate the booking. The code expires in one hour.</p>
					<p>Best regards,<br>The AutoRent Team</p>
				</div>`+emailFooter,
		carName, code)

	return m.Send(to, subject, body)
}

// SendReservationConfirmedEmail mails the activation notice after a
// reservation has been verified.
func SendReservationConfirmedEmail(m Mailer, to, carName string) error {
	subject := "Reservation Confirmed - AutoRent"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Reservation Confirmed</h1>
					<p>Hello,</p>
					<p>Your reservation for a <strong>%s</strong> has been successfully confirmed.</p>
					<p>We look forward to seeing you at pickup.</p>
					<p>Best regards,<br>The AutoRent Team</p>
				</div>`+emailFooter,
		carName)

	return m.Send(to, subject, body)
}
