package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category groups catalog items for browsing and constrains which items can
// be combined in a split line (both halves must share the category).
type Category string

const (
	CategorySalgadas Category = "Salgadas"
	CategoryDoces    Category = "Doces"
	CategoryBebidas  Category = "Bebidas"
)

// Payment is the closed set of accepted payment methods.
type Payment string

const (
	PaymentPix    Payment = "Pix"
	PaymentCredit Payment = "Cartão de Crédito"
	PaymentDebit  Payment = "Cartão de Débito"
	PaymentCash   Payment = "Dinheiro"
)

// Valid reports whether p is one of the accepted payment methods.
func (p Payment) Valid() bool {
	switch p {
	case PaymentPix, PaymentCredit, PaymentDebit, PaymentCash:
		return true
	}
	return false
}

// CatalogItem is one purchasable product. Sized items are priced by the
// selected SizeOption; flat items carry FlatPrice directly.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Sized       bool            `json:"sized"`
	FlatPrice   decimal.Decimal `json:"flat_price"`
	ImagePath   string          `json:"image_path"`
}

// SizeOption is one tier of the shared size table.
type SizeOption struct {
	Label  string          `json:"label"`
	Price  decimal.Decimal `json:"price"`
	Slices int             `json:"slices"`
}

// AddOn is an optional stuffed-crust choice. The zero-surcharge entry means
// "no add-on".
type AddOn struct {
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// Free reports whether the add-on carries no surcharge.
func (a AddOn) Free() bool {
	return a.Surcharge.IsZero()
}

// CartLine is one configured, priced entry in the cart. It is immutable
// after creation; to change a line the caller removes it and adds a new one.
type CartLine struct {
	ID         string          `json:"id"`
	Product    CatalogItem     `json:"product"`
	SecondHalf *CatalogItem    `json:"second_half,omitempty"`
	Size       *SizeOption     `json:"size,omitempty"`
	AddOn      *AddOn          `json:"add_on,omitempty"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// DisplayName renders the line's item name, using the half-and-half form
// for split lines.
func (l CartLine) DisplayName() string {
	if l.SecondHalf != nil {
		return fmt.Sprintf("Meia %s + Meia %s", l.Product.Name, l.SecondHalf.Name)
	}
	return l.Product.Name
}

// CheckoutForm holds the delivery details collected before hand-off. The
// GPS link and the manual address are independent; both may be present.
type CheckoutForm struct {
	CustomerName string  `json:"customer_name"`
	Address      string  `json:"address"`
	LocationLink string  `json:"location_link,omitempty"`
	Payment      Payment `json:"payment"`
	ChangeFor    string  `json:"change_for,omitempty"`
}
