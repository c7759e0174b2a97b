package handlers

import (
	"github.com/gofiber/fiber/v2"

	"playgear/internal/catalog"
	"playgear/internal/validate"
)

type CatalogHandler struct {
	Catalog *catalog.Store
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{"Products": h.Catalog.List()})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, found := h.Catalog.Get(id)
	if !found {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"Product": p, "Availability": h.Catalog.Availability(id)})
}

// Check is the JSON availability endpoint (GET /api/v1/availability).
func (h *CatalogHandler) Check(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}
	return c.JSON(h.Catalog.Availability(id))
}
