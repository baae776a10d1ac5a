package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"pvmarket-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) Enabled() bool {
	return s.apiKey != ""
}

// SendPoleInquiry emails the owner about a rent/buy request. Template text is
// Norwegian; the audience is Norwegian pole vaulters.
func (s *emailService) SendPoleInquiry(ctx context.Context, inquiry InquiryEmail) error {
	ownerName := inquiry.OwnerName
	if ownerName == "" {
		ownerName = "der"
	}
	inquirerName := inquiry.InquirerName
	if inquirerName == "" {
		inquirerName = inquiry.InquirerEmail
	}

	subject := fmt.Sprintf("Forespørsel om stav: %s %dcm", inquiry.Brand, inquiry.LengthCM)

	plainText := fmt.Sprintf(
		"Hei %s,\n\nDu har mottatt en forespørsel om følgende stav:\n\nMerke: %s\nLengde: %dcm\nVekt: %dlbs\n",
		ownerName, inquiry.Brand, inquiry.LengthCM, inquiry.WeightLbs)
	if inquiry.Location != "" {
		plainText += fmt.Sprintf("Lokasjon: %s\n", inquiry.Location)
	}
	if inquiry.Message != "" {
		plainText += fmt.Sprintf("\nMelding fra %s:\n%s\n", inquirerName, inquiry.Message)
	}
	plainText += fmt.Sprintf(
		"\nKontaktinformasjon:\nNavn: %s\nE-post: %s\n\nDu kan svare direkte på denne e-posten eller bruke kontaktinformasjonen ovenfor.\n",
		inquirerName, inquiry.InquirerEmail)

	htmlContent := fmt.Sprintf(`<html><body>
<h2>Ny forespørsel om stav</h2>
<p>Hei %s,</p>
<p>Du har mottatt en forespørsel om følgende stav:</p>
<p><strong>Merke:</strong> %s<br>
<strong>Lengde:</strong> %dcm<br>
<strong>Vekt:</strong> %dlbs</p>`,
		ownerName, inquiry.Brand, inquiry.LengthCM, inquiry.WeightLbs)
	if inquiry.Location != "" {
		htmlContent += fmt.Sprintf(`<p><strong>Lokasjon:</strong> %s</p>`, inquiry.Location)
	}
	if inquiry.Message != "" {
		htmlContent += fmt.Sprintf(`<p><strong>Melding fra %s:</strong><br>%s</p>`, inquirerName, inquiry.Message)
	}
	htmlContent += fmt.Sprintf(`<p><strong>Kontaktinformasjon:</strong><br>Navn: %s<br>E-post: <a href="mailto:%s">%s</a></p>
<p>Du kan svare direkte på denne e-posten eller bruke kontaktinformasjonen ovenfor.</p>
</body></html>`, inquirerName, inquiry.InquirerEmail, inquiry.InquirerEmail)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(ownerName, inquiry.OwnerEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)
	message.ReplyTo = mail.NewEmail(inquirerName, inquiry.InquirerEmail)

	logger.ExternalServiceCall("sendgrid", "send_pole_inquiry", "to", inquiry.OwnerEmail)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send_pole_inquiry", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
