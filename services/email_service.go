package services

import (
	"fmt"
	"html"
	"revorz_storefront/structs"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.EmailConfig
	sender emailSender
}

// NewEmailService returns a service that sends nothing when no API key is configured
func NewEmailService(logger *gecho.Logger, cfg *structs.EmailConfig) *EmailService {
	es := &EmailService{logger: logger, cfg: cfg}
	if cfg.ApiKey != "" {
		es.sender = getEmailClient(cfg.ApiKey).Emails
	}
	return es
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) Enabled() bool {
	return es.sender != nil
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if !es.Enabled() {
		es.logger.Debug("Email disabled, skipping", gecho.Field("to", to), gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.sender.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendNewsletterWelcome confirms a newsletter subscription
func (es *EmailService) SendNewsletterWelcome(email string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2563eb; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Terima kasih!</h1>
				</div>
				<div class="content">
					<p>Halo,</p>
					<p>Anda telah subscribe ke newsletter Revorz dengan alamat <strong>%s</strong>.</p>
					<p>Kami akan mengirimkan kabar produk dan penawaran terbaru langsung ke inbox Anda.</p>
				</div>
				<div class="footer">
					<p>Jika Anda tidak mendaftar, abaikan email ini.</p>
				</div>
			</div>
		</body>
		</html>
	`, html.EscapeString(email))

	return es.SendEmail([]string{email}, "Selamat datang di newsletter Revorz", body)
}
