package handlers

import (
	"github.com/gofiber/fiber/v2"

	"playgear/internal/admin"
	applog "playgear/internal/log"
	"playgear/internal/repos"
)

type AdminHandler struct {
	Orders  *admin.Service
	Journal *repos.JournalRepo
}

// LoginForm shows the secret prompt for the order viewer.
func (h *AdminHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "admin_login", fiber.Map{"Err": ""})
}

// OrdersPage verifies the posted secret, then pulls the order list from
// the webhook and the local submission journal side by side.
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	secret := c.FormValue("secret")
	orders, err := h.Orders.FetchOrders(c.Context(), secret)
	if err != nil {
		if err == admin.ErrBadSecret {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).Render("admin_login", fiber.Map{"Err": "Wrong secret"})
		}
		applog.Error(c, "admin.orders.fetch.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("notfound", fiber.Map{"Message": "Could not load orders from the sheet"})
	}

	var journal []repos.SubmissionRow
	if h.Journal != nil {
		if rows, jerr := h.Journal.ListLatest(50); jerr == nil {
			journal = rows
		} else {
			applog.Error(c, "admin.journal.list.fail", jerr, nil)
		}
	}

	applog.Audit(c, "admin.orders.view", map[string]any{"remote": len(orders), "journal": len(journal)})
	return render(c, "admin_orders", fiber.Map{"Orders": orders, "Journal": journal})
}
