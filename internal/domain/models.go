package domain

import "time"

type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"` // SHOES | JERSEY | ACCESSORY
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
	ImageRef string `json:"imageRef,omitempty"`
}

// CartLine aggregates one product's quantity in a cart. The product is a
// snapshot taken at add time, not a reference into the catalog.
type CartLine struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

func (l CartLine) Subtotal() int { return l.Product.Price * l.Qty }

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

type OrderItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

// Order is immutable once built. Items are copies of the cart lines at
// submission time, so later cart mutations never touch a placed order.
type Order struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     int         `json:"total"`
	Status    OrderStatus `json:"status"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
