// Package configurator prices a single catalog item under the customer's
// chosen options and produces the resulting cart line.
package configurator

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/pkg/models"
)

var (
	// ErrSplitIncomplete gates confirmation when split mode is on without a
	// valid second flavor. Callers surface it as a disabled confirm action,
	// not as a user-facing failure.
	ErrSplitIncomplete = errors.New("split selected without a valid second flavor")

	ErrUnknownSize  = errors.New("unknown size option")
	ErrUnknownAddOn = errors.New("unknown add-on option")
)

// Options carries the customer's selections for one item. Zero values mean
// "use the default": the largest size, no add-on, no split, quantity 1.
type Options struct {
	SizeLabel string `json:"size,omitempty"`
	AddOnName string `json:"add_on,omitempty"`
	Split     bool   `json:"split,omitempty"`
	SecondID  string `json:"second_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

type Configurator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Configurator {
	return &Configurator{catalog: c}
}

// Configure validates the options against the item and returns a priced,
// identity-bearing cart line. It has no side effects; appending the line to
// the cart is the caller's separate step.
//
// Pricing: flat items cost FlatPrice * qty and ignore size, add-on and
// split. Sized items cost (size.Price + addOn.Surcharge) * qty; a split
// adds nothing beyond the base size price.
func (cf *Configurator) Configure(item models.CatalogItem, opts Options) (models.CartLine, error) {
	qty := opts.Quantity
	if qty < 1 {
		qty = 1
	}

	line := models.CartLine{
		ID:       uuid.NewString(),
		Product:  item,
		Quantity: qty,
	}

	if !item.Sized {
		line.TotalPrice = item.FlatPrice.Mul(decimal.NewFromInt(int64(qty)))
		return line, nil
	}

	size := cf.catalog.DefaultSize()
	if opts.SizeLabel != "" {
		s, ok := cf.catalog.SizeByLabel(opts.SizeLabel)
		if !ok {
			return models.CartLine{}, ErrUnknownSize
		}
		size = s
	}
	line.Size = &size

	addOn := decimal.Zero
	if opts.AddOnName != "" {
		a, ok := cf.catalog.AddOnByName(opts.AddOnName)
		if !ok {
			return models.CartLine{}, ErrUnknownAddOn
		}
		if !a.Free() {
			line.AddOn = &a
			addOn = a.Surcharge
		}
	}

	// A size below the split-eligible tiers silently drops any split
	// selection along with its second flavor.
	if opts.Split && cf.catalog.SplitEligible(size) {
		second, err := cf.secondHalf(item, opts.SecondID)
		if err != nil {
			return models.CartLine{}, err
		}
		line.SecondHalf = &second
	}

	line.TotalPrice = size.Price.Add(addOn).Mul(decimal.NewFromInt(int64(qty)))
	return line, nil
}

func (cf *Configurator) secondHalf(item models.CatalogItem, secondID string) (models.CatalogItem, error) {
	if secondID == "" {
		return models.CatalogItem{}, ErrSplitIncomplete
	}
	second, err := cf.catalog.ByID(secondID)
	if err != nil {
		return models.CatalogItem{}, ErrSplitIncomplete
	}
	if !second.Sized || second.Category != item.Category || second.ID == item.ID {
		return models.CatalogItem{}, ErrSplitIncomplete
	}
	return second, nil
}
