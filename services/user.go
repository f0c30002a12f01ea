package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mailer delivers transactional email. Satisfied by providers.BrevoMailer;
// tests substitute a recording fake.
type Mailer interface {
	SendEmail(to, subject, htmlContent string) error
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserInput struct {
	FullName *string    `json:"fullName"`
	Phone    *string    `json:"phone"`
	Gender   *string    `json:"gender"`
	DOB      *time.Time `json:"dob"`
	Avatar   *string    `json:"avatar"`
}

// Register creates an inactive account and emails a verification link.
func Register(db *gorm.DB, mailer Mailer, websiteDomain string, in RegisterInput) (*models.User, error) {
	var existing models.User
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

	user := models.User{
		ID:          uuid.NewString(),
		Email:       in.Email,
		Password:    string(hash),
		Username:    in.Username,
		FullName:    in.Username,
		Role:        models.RoleCustomer,
		VerifyToken: uuid.NewString(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	if mailer != nil {
		link := fmt.Sprintf("%s/users/account/verification?email=%s&token=%s",
			websiteDomain, user.Email, user.VerifyToken)
		subject := "Beautify: please verify your email address"
		html := fmt.Sprintf(
			`<p>Thanks for signing up to <b>Beautify</b>!</p>
<p>Click the link below to verify your email address:</p>
<p><a href="%s">Verify Email</a></p>`, link)
		if err := mailer.SendEmail(user.Email, subject, html); err != nil {
			// Account creation stands even when the mail provider is down;
			// the user can request a resend.
			logrus.Warnf("failed to send verification email to %s: %v", user.Email, err)
		}
	}

	return &user, nil
}

// VerifyEmail activates the account when the token matches.
func VerifyEmail(db *gorm.DB, email, token string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, errors.Wrap(err, "fetch user")
	}
	if user.IsActive {
		return nil, apperr.New(http.StatusNotAcceptable, "account already verified")
	}
	if user.VerifyToken != token {
		return nil, apperr.Unauthorized("invalid verification token")
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"is_active":    true,
		"verify_token": "",
	}).Error; err != nil {
		return nil, errors.Wrap(err, "activate user")
	}
	user.IsActive = true
	user.VerifyToken = ""
	return &user, nil
}

// Login checks credentials against the stored bcrypt hash.
func Login(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, errors.Wrap(err, "fetch user")
	}
	if !user.IsActive {
		return nil, apperr.New(http.StatusForbidden, "account is not verified")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("email or password is incorrect")
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, errors.Wrap(err, "fetch user")
	}
	return &user, nil
}

func UpdateUser(db *gorm.DB, id string, in UpdateUserInput) (*models.User, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
	}
	if in.DOB != nil {
		updates["dob"] = *in.DOB
	}
	if in.Avatar != nil {
		updates["avatar"] = *in.Avatar
	}

	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update user")
		}
	}
	return user, nil
}

// DeleteUser soft-deletes an account; orders and addresses keep their
// user id for auditing.
func DeleteUser(db *gorm.DB, id string) error {
	user, err := GetUserByID(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(user).Error; err != nil {
		return errors.Wrap(err, "delete user")
	}
	return nil
}

func GetUsersPaginated(db *gorm.DB, page, limit int) ([]models.User, utils.Pagination, error) {
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "count users")
	}

	var users []models.User
	if err := db.Order("created_at DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "list users")
	}
	return users, utils.CalculatePagination(total, page, limit), nil
}
