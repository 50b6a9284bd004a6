package handlers

import (
	"errors"

	"github.com/vansh9528/dealstash/internal/service"
	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB       *gorm.DB
	Accounts *service.AccountService
}

func NewAuthHandler(db *gorm.DB, accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{DB: db, Accounts: accounts}
}

// SignupRequest defines the payload for seller signup
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	CompanyName     string `json:"company_name"`
	Website         string `json:"website"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup - POST /api/auth/signup
// Creates a user and its company atomically, then logs the seller in.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	user, company, err := h.Accounts.SignupSeller(service.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		CompanyName:     req.CompanyName,
		Website:         req.Website,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return renderServiceError(c, err)
		}
		// Unique constraint on username or company email
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username or email already registered"})
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Seller account created",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
		"company": fiber.Map{
			"id":      company.ID,
			"name":    company.Name,
			"email":   company.Email,
			"website": company.Website,
		},
	})
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	// Verify password
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}
