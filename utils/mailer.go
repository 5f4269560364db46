package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"
)

type SMTPMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTPMailer(host, port, user, password, from string) *SMTPMailer {
	if from == "" {
		from = user
	}
	return &SMTPMailer{host: host, port: port, user: user, password: password, from: from}
}

func (m *SMTPMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			htmlBody + "\r\n")

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return smtp.SendMail(addr, auth, m.user, []string{to}, msg)
}

var otpEmailTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f4f4f4;">
  <div style="max-width: 500px; margin: auto; background: white; padding: 20px; border-radius: 10px;">
    <h2 style="color: #2C3E50; text-align: center;">Your One-Time Password (OTP)</h2>
    <p style="font-size: 16px; color: #333; text-align: center;">Hello, <strong>{{.Email}}</strong></p>
    <p style="font-size: 16px; color: #333; text-align: center;">Use the following OTP to confirm your order:</p>
    <div style="text-align: center; margin: 20px 0;">
      <span style="display: inline-block; font-size: 24px; font-weight: bold; color: #27ae60; background: #ecf0f1; padding: 10px 20px; border-radius: 5px;">{{.Code}}</span>
    </div>
    <p style="font-size: 14px; text-align: center; color: #888;">This OTP is valid for <strong>{{.Validity}}</strong>. Do not share it with anyone.</p>
    <hr style="border: none; border-top: 1px solid #ddd;">
    <p style="font-size: 12px; text-align: center; color: #aaa;">If you did not request this OTP, please ignore this email.</p>
  </div>
</div>`))

// RenderOTPEmail builds the HTML body of the OTP email.
func RenderOTPEmail(email, code string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	err := otpEmailTemplate.Execute(&buf, struct {
		Email    string
		Code     string
		Validity string
	}{email, code, HumanizeDuration(ttl)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HumanizeDuration renders whole minutes as "1 minute" / "5 minutes" and
// anything else with time.Duration formatting.
func HumanizeDuration(d time.Duration) string {
	if d > 0 && d%time.Minute == 0 {
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}
