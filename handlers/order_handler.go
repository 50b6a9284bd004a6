package handlers

import (
	"fmt"
	"strconv"

	"github.com/vansh9528/dealstash/internal/service"
	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders   *service.OrderService
	Accounts *service.AccountService
}

func NewOrderHandler(orders *service.OrderService, accounts *service.AccountService) *OrderHandler {
	return &OrderHandler{Orders: orders, Accounts: accounts}
}

// PlaceOrderRequest is the public order payload
type PlaceOrderRequest struct {
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrder - POST /api/products/:id/orders
// Public: anyone can order against an existing product. A failed
// notification downgrades the response to a warning, never a failure.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	productID, _ := strconv.Atoi(c.Params("id"))

	req := PlaceOrderRequest{Quantity: 1}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	result, err := h.Orders.PlaceOrder(uint(productID), service.PlaceOrderInput{
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return renderServiceError(c, err)
	}

	if result.NotificationErr != nil {
		return c.Status(fiber.StatusCreated).JSON(models.WarningResponse(
			"Order placed",
			result.Order,
			fmt.Sprintf("Order created but sending notification failed: %v", result.NotificationErr),
		))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(
		fmt.Sprintf("Order placed. We will contact you at %s", result.Order.BuyerEmail),
		result.Order,
	))
}

// GetSellerOrders - GET /api/seller/orders
// Orders for the caller's company's products, newest first.
func (h *OrderHandler) GetSellerOrders(c *fiber.Ctx) error {
	userID, ok := utils.UserIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	company, err := h.Accounts.CompanyForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load seller profile"})
	}
	if company == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "Please complete seller signup to view your orders",
			"signup": "/api/auth/signup",
		})
	}

	orders, err := h.Orders.ListCompanyOrders(company.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	return c.JSON(fiber.Map{"data": orders})
}
