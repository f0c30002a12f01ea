package services

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterAdminInput struct {
	Email     string `json:"email" binding:"required,email"`
	AdminName string `json:"adminName" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	SecretKey string `json:"secretKey" binding:"required"`
}

// RegisterAdmin creates an inactive back-office account. Creation is
// gated by a shared secret so the endpoint can stay public, and the
// account must verify its email before logging in.
func RegisterAdmin(db *gorm.DB, mailer Mailer, websiteDomain, creationSecret string, in RegisterAdminInput) (*models.Admin, error) {
	if creationSecret == "" || in.SecretKey != creationSecret {
		return nil, apperr.New(http.StatusForbidden, "invalid secret key")
	}

	var existing models.Admin
	err := db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	admin := models.Admin{
		ID:          uuid.NewString(),
		Email:       in.Email,
		Password:    string(hash),
		AdminName:   in.AdminName,
		FullName:    strings.SplitN(in.Email, "@", 2)[0],
		Role:        models.RoleAdmin,
		VerifyToken: uuid.NewString(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, errors.Wrap(err, "create admin")
	}

	if mailer != nil {
		link := fmt.Sprintf("%s/admin/account/verification?email=%s&token=%s",
			websiteDomain, admin.Email, admin.VerifyToken)
		subject := "Beautify: please verify your admin email address"
		html := fmt.Sprintf(
			`<p>Welcome to the <b>Beautify</b> admin dashboard!</p>
<p>Click the link below to activate your admin account:</p>
<p><a href="%s">Verify Admin Email</a></p>`, link)
		if err := mailer.SendEmail(admin.Email, subject, html); err != nil {
			logrus.Warnf("failed to send admin verification email to %s: %v", admin.Email, err)
		}
	}

	return &admin, nil
}

// VerifyAdminEmail activates the admin account when the token matches.
func VerifyAdminEmail(db *gorm.DB, email, token string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("admin not found")
		}
		return nil, errors.Wrap(err, "fetch admin")
	}
	if admin.VerifyToken != token {
		return nil, apperr.New(http.StatusForbidden, "invalid verification token")
	}

	if err := db.Model(&admin).Updates(map[string]interface{}{
		"is_active":    true,
		"verify_token": "",
	}).Error; err != nil {
		return nil, errors.Wrap(err, "activate admin")
	}
	admin.IsActive = true
	admin.VerifyToken = ""
	return &admin, nil
}

// AdminLogin checks credentials against the stored bcrypt hash. Only
// verified accounts may log in.
func AdminLogin(db *gorm.DB, email, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("admin not found")
		}
		return nil, errors.Wrap(err, "fetch admin")
	}
	if !admin.IsActive {
		return nil, apperr.New(http.StatusForbidden, "admin account is not verified")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, apperr.New(http.StatusNotAcceptable, "email or password is incorrect")
	}
	return &admin, nil
}
