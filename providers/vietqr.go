package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const vietQRBaseURL = "https://api.vietqr.io/v2"

// VietQRClient generates bank-transfer QR payment links through the
// VietQR API.
type VietQRClient struct {
	ClientID    string
	APIKey      string
	AccountNo   string
	AccountName string
	AcqID       string // bank BIN
	HTTPClient  *http.Client
}

func NewVietQRClient(clientID, apiKey, accountNo, accountName, acqID string) *VietQRClient {
	return &VietQRClient{
		ClientID:    clientID,
		APIKey:      apiKey,
		AccountNo:   accountNo,
		AccountName: accountName,
		AcqID:       acqID,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type vietQRGenerateRequest struct {
	AccountNo   string  `json:"accountNo"`
	AccountName string  `json:"accountName"`
	AcqID       string  `json:"acqId"`
	Amount      float64 `json:"amount"`
	AddInfo     string  `json:"addInfo"`
	Format      string  `json:"format"`
	Template    string  `json:"template"`
}

// VietQRData is the generated QR payload.
type VietQRData struct {
	QRCode    string `json:"qrCode"`
	QRDataURL string `json:"qrDataURL"`
}

type vietQRGenerateResponse struct {
	Code string     `json:"code"`
	Desc string     `json:"desc"`
	Data VietQRData `json:"data"`
}

// GenerateQR builds a payment QR for the configured bank account.
func (c *VietQRClient) GenerateQR(amount float64, description string) (*VietQRData, error) {
	if description == "" {
		description = "Payment"
	}
	payload, err := json.Marshal(vietQRGenerateRequest{
		AccountNo:   c.AccountNo,
		AccountName: c.AccountName,
		AcqID:       c.AcqID,
		Amount:      amount,
		AddInfo:     description,
		Format:      "text",
		Template:    "print",
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal vietqr payload")
	}

	req, err := http.NewRequest(http.MethodPost, vietQRBaseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build vietqr request")
	}
	req.Header.Set("x-client-id", c.ClientID)
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call vietqr")
	}
	defer resp.Body.Close()

	var out vietQRGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode vietqr response")
	}
	if out.Code != "00" {
		return nil, fmt.Errorf("vietqr: %s", out.Desc)
	}
	return &out.Data, nil
}
