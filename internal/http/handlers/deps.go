package handlers

import (
	"playgear/internal/admin"
	"playgear/internal/cart"
	"playgear/internal/catalog"
	"playgear/internal/checkout"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler
}

func NewDeps(cat *catalog.Store, carts *cart.Store, co *checkout.Service, adm *admin.Service) *Deps {
	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: cat},
		CartHandler:    &CartHandler{Carts: carts, Catalog: cat},
		OrderHandler:   &OrderHandler{Carts: carts, Checkout: co},
		AdminHandler:   &AdminHandler{Orders: adm, Journal: co.Journal},
	}
}
