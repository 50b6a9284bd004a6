package handlers

import (
	"strconv"

	"github.com/vansh9528/dealstash/internal/guard"
	"github.com/vansh9528/dealstash/internal/service"
	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB       *gorm.DB
	Accounts *service.AccountService
}

func NewProductHandler(db *gorm.DB, accounts *service.AccountService) *ProductHandler {
	return &ProductHandler{DB: db, Accounts: accounts}
}

// ProductRequest is the create/update payload
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

func (r *ProductRequest) validate() *service.ValidationError {
	verr := &service.ValidationError{}
	if r.Name == "" {
		verr.Add("name", "required", "Product name is required")
	}
	if r.Price.IsNegative() {
		verr.Add("price", "min", "Price must not be negative")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// callerCompany resolves the authenticated user's company. A nil company
// with nil error means "complete seller signup first", not a hard failure;
// returned errors are *fiber.Error handled by the app error handler.
func (h *ProductHandler) callerCompany(c *fiber.Ctx) (*models.Company, error) {
	userID, ok := utils.UserIDFromLocals(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user session")
	}
	company, err := h.Accounts.CompanyForUser(userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load seller profile")
	}
	return company, nil
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	company, err := h.callerCompany(c)
	if err != nil {
		return err
	}
	if company == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "You must complete seller signup before adding products",
			"signup": "/api/auth/signup",
		})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if verr := req.validate(); verr != nil {
		return renderServiceError(c, verr)
	}

	product := models.Product{
		CompanyID:   company.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product

	// Public catalog, newest first
	if err := h.DB.Preload("Company", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, website")
	}).Order("created_at desc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var product models.Product

	if err := h.DB.Preload("Company", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email, website")
	}).First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(fiber.Map{"data": product, "image_url": product.DisplayImageURL()})
}

// UpdateProduct - PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	company, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	// Check ownership
	if !guard.CanModifyProduct(company, &product) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if verr := req.validate(); verr != nil {
		return renderServiceError(c, verr)
	}

	// Update fields; CreatedAt is immutable
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL

	if err := h.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	company, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	// Check ownership
	if !guard.CanModifyProduct(company, &product) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GetMyProducts - GET /api/seller/products
// Seller dashboard: the caller's own listings, newest first.
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	company, err := h.callerCompany(c)
	if err != nil {
		return err
	}
	if company == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "Please complete seller signup to manage your products",
			"signup": "/api/auth/signup",
		})
	}

	var products []models.Product
	if err := h.DB.Where("company_id = ?", company.ID).Order("created_at desc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products})
}
