package validate

import (
	"regexp"
	"strconv"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"playgear/internal/domain"
)

var (
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,14}$`)

	v = newValidator()
)

func newValidator() *validatorv10.Validate {
	val := validatorv10.New()
	_ = val.RegisterValidation("phone", func(fl validatorv10.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})
	return val
}

// CheckoutForm carries the customer fields posted at checkout. Name,
// phone and address are required before an order may be built.
type CheckoutForm struct {
	Name    string `validate:"required,max=60"`
	Phone   string `validate:"required,phone"`
	Address string `validate:"required,max=200"`
	Note    string `validate:"max=200"`
}

// Checkout validates the form and returns the trimmed customer record.
func Checkout(f CheckoutForm) (domain.Customer, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.Note = strings.TrimSpace(f.Note)
	if err := v.Struct(f); err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{Name: f.Name, Phone: f.Phone, Address: f.Address, Note: f.Note}, nil
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses an add-to-cart quantity, clamped to a sane range.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// UpdateQty parses a quantity for a line update without clamping, so a
// below-1 value reaches the cart and is ignored there.
func UpdateQty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
