package service

import (
	"errors"
	"net/mail"

	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"gorm.io/gorm"
)

// AccountService handles seller onboarding and company lookup.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

type SignupInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	CompanyName     string
	Website         string
}

// SignupSeller creates a user and its company in one transaction. A failed
// company insert never leaves an orphaned user behind.
func (s *AccountService) SignupSeller(in SignupInput) (*models.User, *models.Company, error) {
	verr := &ValidationError{}
	if in.Username == "" {
		verr.Add("username", "required", "Username is required")
	}
	if !validEmail(in.Email) {
		verr.Add("email", "invalid", "A valid email address is required")
	}
	if len(in.Password) < 8 {
		verr.Add("password", "too_short", "Password must be at least 8 characters")
	}
	if in.Password != in.PasswordConfirm {
		verr.Add("password_confirm", "mismatch", "Passwords do not match")
	}
	if in.CompanyName == "" {
		verr.Add("company_name", "required", "Company name is required")
	}
	if verr.HasErrors() {
		return nil, nil, verr
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	company := models.Company{
		Name:    in.CompanyName,
		Email:   in.Email,
		Website: in.Website,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		company.UserID = &user.ID
		return tx.Create(&company).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &user, &company, nil
}

// CompanyForUser returns the company linked to a user, or nil when the
// user is not a seller. Absence is not an error.
func (s *AccountService) CompanyForUser(userID uint) (*models.Company, error) {
	var company models.Company
	err := s.db.Where("user_id = ?", userID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func validEmail(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
