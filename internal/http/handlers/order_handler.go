package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"playgear/internal/cart"
	"playgear/internal/checkout"
	applog "playgear/internal/log"
	"playgear/internal/validate"
	"playgear/internal/webhook"
)

// ShippingFlat is shown on the checkout page on top of the cart total.
// It is presentation only and never part of the stored order total.
const ShippingFlat = 49

type OrderHandler struct {
	Carts    *cart.Store
	Checkout *checkout.Service
}

func (h *OrderHandler) CheckoutForm(c *fiber.Ctx) error {
	crt := h.Carts.Ensure(ensureSID(c))
	total := crt.Total()
	return render(c, "checkout", fiber.Map{
		"Lines":    crt.Lines(),
		"Total":    total,
		"Shipping": ShippingFlat,
		"Payable":  total + ShippingFlat,
	})
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	cust, err := validate.Checkout(validate.CheckoutForm{
		Name:    c.FormValue("name"),
		Phone:   c.FormValue("phone"),
		Address: c.FormValue("address"),
		Note:    c.FormValue("note"),
	})
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).SendString("please fill name, phone and address")
	}

	order, err := h.Checkout.Submit(c.Context(), sid, cust)
	if err != nil {
		return h.placeError(c, sid, err)
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "total": order.Total})
	return render(c, "order", fiber.Map{"Order": order, "Shipping": ShippingFlat})
}

func (h *OrderHandler) placeError(c *fiber.Ctx, sid string, err error) error {
	var se *webhook.StatusError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).SendString("your cart is empty")
	case errors.Is(err, checkout.ErrSubmitInFlight):
		applog.Security(c, "order.place.double", map[string]any{"sid": sid})
		return c.Status(fiber.StatusTooManyRequests).SendString("an order is already being placed")
	case errors.Is(err, webhook.ErrEndpointUnset):
		applog.Error(c, "order.place.noendpoint", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Ordering is not set up yet. Please try later."})
	case errors.As(err, &se):
		applog.Error(c, "order.place.webhook", err, map[string]any{"status": se.Code})
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Could not place your order. Nothing was charged; your cart is intact."})
	default:
		applog.Error(c, "order.place.transport", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Could not reach the order service. Your cart is intact."})
	}
}
