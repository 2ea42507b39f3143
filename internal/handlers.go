package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"malipo/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func NewRouter(h *Handlers) *fiber.App {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/", h.Index)
	app.Get("/health", h.Health)

	pesapal := app.Group("/pesapal")
	pesapal.Post("/order", h.CreateOrder)
	pesapal.Get("/callback", h.PaymentCallback)
	pesapal.Get("/transaction-status", h.TransactionStatus)

	app.Use(h.NotFound)

	return app
}

func (h *Handlers) Index(c *fiber.Ctx) error {
	return c.SendString("malipo payment service")
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "service is healthy"})
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.CreateOrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid request body"})
	}

	if i.Order == nil || i.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "order and orderId are required"})
	}

	paymentURL, err := h.Service.SubmitOrder(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to initiate payment"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "paymentUrl": paymentURL})
}

func (h *Handlers) PaymentCallback(c *fiber.Ctx) error {
	trackingID := c.Query("OrderTrackingId")
	orderID := c.Query("OrderMerchantReference")

	if trackingID == "" || orderID == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	res, err := h.Service.ProcessCallback(c.Context(), trackingID, orderID)
	if err != nil {
		h.logger.Errorf("Error on payment callback for order %s: %s", orderID, err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch res {
	case model.PaymentAlreadyProcessed:
		h.logger.Infof("duplicate payment callback for order %s ignored", orderID)
	case model.PaymentMarkedFailed:
		h.logger.Infof("payment for order %s failed", orderID)
	default:
		h.logger.Infof("payment for order %s confirmed", orderID)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) TransactionStatus(c *fiber.Ctx) error {
	trackingID := c.Query("pesapalTrackingId")
	if trackingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": model.PaymentStatusInvalid, "description": "pesapalTrackingId is required"})
	}

	out, err := h.Service.GetTransactionStatus(c.Context(), trackingID)
	if err != nil {
		h.logger.Errorf("Error on transaction status request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": model.PaymentStatusFailed, "description": "could not fetch transaction status"})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *Handlers) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not Found"})
}
