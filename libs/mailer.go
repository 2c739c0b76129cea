package libs

import (
	"amazon-shop/models"
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

var ErrSMTPNotConfigured = errors.New("SMTP configuration missing")

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type Mailer struct {
	from string
	dial func() (gomail.SendCloser, error)
}

func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return nil, ErrSMTPNotConfigured
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass)
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &Mailer{from: from, dial: dialer.Dial}, nil
}

var orderConfirmationTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #333;">Order Confirmation</h2>
    <p>Thank you for your order, {{.Name}}!</p>
    <table style="width: 100%; border-collapse: collapse;">
      {{range .Items}}
      <tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td style="text-align: right;">{{.Subtotal}}</td></tr>
      {{end}}
      <tr><td colspan="2"><strong>Total</strong></td><td style="text-align: right;"><strong>{{.TotalCost}}</strong></td></tr>
    </table>
    <p>Shipping to: {{.Address}}</p>
    <p style="color: #666; font-size: 12px;">Order reference {{.ID}}. This is an automated email, please do not reply.</p>
  </div>
</body>
</html>`))

func (m *Mailer) SendOrderConfirmation(toEmail string, order *models.Order) error {
	var body bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&body, order); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	msg := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s", order.ID))
	msg.SetBody("text/html", body.String())

	sender, err := m.dial()
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer sender.Close()

	if err := gomail.Send(sender, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
