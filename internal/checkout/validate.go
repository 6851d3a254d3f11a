package checkout

import (
	"strings"

	"shekinah-storefront/pkg/models"
)

// FieldErrors flags the checkout fields that block submission. Name and
// address are the only hard gates; payment method and change text never
// block, and the GPS link is always optional.
type FieldErrors struct {
	Name    bool `json:"name"`
	Address bool `json:"address"`
}

// OK reports whether submission may proceed.
func (e FieldErrors) OK() bool {
	return !e.Name && !e.Address
}

// Validate checks the two required fields after trimming whitespace.
func Validate(form models.CheckoutForm) FieldErrors {
	return FieldErrors{
		Name:    strings.TrimSpace(form.CustomerName) == "",
		Address: strings.TrimSpace(form.Address) == "",
	}
}
