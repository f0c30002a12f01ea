package utils

import (
	"net/http"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RespondError maps a service error to its HTTP reply. Unexpected errors
// are logged and masked as a generic internal error.
func RespondError(c *gin.Context, err error) {
	status := apperr.StatusOf(err)
	if status == http.StatusInternalServerError {
		logrus.Errorf("%s %s: %+v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
