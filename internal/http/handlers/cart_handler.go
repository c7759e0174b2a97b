package handlers

import (
	"github.com/gofiber/fiber/v2"

	"playgear/internal/cart"
	"playgear/internal/catalog"
	applog "playgear/internal/log"
	"playgear/internal/validate"
)

type CartHandler struct {
	Carts   *cart.Store
	Catalog *catalog.Store
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	crt := h.Carts.Ensure(ensureSID(c))
	return render(c, "cart", fiber.Map{"Lines": crt.Lines(), "Total": crt.Total()})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, found := h.Catalog.Get(productID)
	if !found {
		return c.Status(fiber.StatusNotFound).SendString("unknown product")
	}
	qty := validate.Qty(c.FormValue("qty"))
	h.Carts.Ensure(sid).Add(p, qty)
	applog.Info(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	return c.Redirect("/cart")
}

// Update replaces a line's quantity. The cart silently ignores qty < 1
// and unknown ids, so this always lands back on the cart page.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if qty, ok := validate.UpdateQty(c.FormValue("qty")); ok {
		h.Carts.Ensure(sid).UpdateQty(productID, qty)
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Carts.Ensure(sid).Remove(productID)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Carts.Ensure(ensureSID(c)).Clear()
	return c.Redirect("/cart")
}
