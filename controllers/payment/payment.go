package paymentControllers

import (
	"net/http"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/providers"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type GenerateQRInput struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// POST /payment/generate-qr
func GenerateQR(qr *providers.VietQRClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GenerateQRInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if qr.AccountNo == "" || qr.AcqID == "" || qr.AccountName == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Bank information not configured"})
			return
		}

		data, err := qr.GenerateQR(input.Amount, input.Description)
		if err != nil {
			logrus.Errorf("generate QR: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
	}
}
