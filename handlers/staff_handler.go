package handlers

import (
	"strconv"

	"github.com/vansh9528/dealstash/internal/service"
	"github.com/vansh9528/dealstash/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffHandler covers back-office actions. Routes are gated by the staff
// role middleware; ownership never applies here.
type StaffHandler struct {
	DB     *gorm.DB
	Orders *service.OrderService
}

func NewStaffHandler(db *gorm.DB, orders *service.OrderService) *StaffHandler {
	return &StaffHandler{DB: db, Orders: orders}
}

// DeleteProduct - DELETE /api/staff/products/:id
// Staff may delete any product; its orders go with it.
func (h *StaffHandler) DeleteProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.JSON(models.SuccessResponse("Product '"+product.Name+"' deleted by staff", nil))
}

// DeleteCompany - DELETE /api/staff/companies/:id
// Cascades to the company's products and their orders.
func (h *StaffHandler) DeleteCompany(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var company models.Company
	if err := h.DB.First(&company, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	if err := h.DB.Delete(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete company"})
	}

	return c.JSON(models.SuccessResponse("Company '"+company.Name+"' and its products were deleted", nil))
}

// UpdateOrderStatusRequest carries the target status
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus - PUT /api/staff/orders/:id/status
func (h *StaffHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	order, err := h.Orders.UpdateStatus(uint(id), models.OrderStatus(req.Status))
	if err != nil {
		return renderServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse("Order status updated", order))
}

// ListOrders - GET /api/staff/orders
// Back-office listing of all orders, newest first.
func (h *StaffHandler) ListOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := h.DB.Preload("Product").Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}
	return c.JSON(fiber.Map{"data": orders})
}
