package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends transactional email through the Brevo HTTP API.
type BrevoMailer struct {
	APIKey      string
	SenderName  string
	SenderEmail string
	HTTPClient  *http.Client
}

func NewBrevoMailer(apiKey, senderName, senderEmail string) *BrevoMailer {
	return &BrevoMailer{
		APIKey:      apiKey,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
}

func (m *BrevoMailer) SendEmail(to, subject, htmlContent string) error {
	payload, err := json.Marshal(brevoSendRequest{
		Sender:      brevoParty{Name: m.SenderName, Email: m.SenderEmail},
		To:          []brevoParty{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlContent,
	})
	if err != nil {
		return errors.Wrap(err, "marshal brevo payload")
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build brevo request")
	}
	req.Header.Set("api-key", m.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send email")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo responded with status %d", resp.StatusCode)
	}
	return nil
}
