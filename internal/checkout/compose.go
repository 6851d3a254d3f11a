// Package checkout validates the delivery form and composes the final order
// message handed off to the messaging channel.
package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shekinah-storefront/pkg/models"
)

const (
	header    = "*NOVO PEDIDO - PIZZAS SHEKINAH*"
	separator = "--------------------------------"
)

// Handoff is the terminal artifact of a checkout: where to deliver the
// message and the message itself, both plain and percent-encoded as a ready
// wa.me link. Delivery is the external transport's job; nothing here awaits
// a response.
type Handoff struct {
	Destination string `json:"destination"`
	Message     string `json:"message"`
	Link        string `json:"link"`
}

// Compose serializes the order into the hand-off text block. The line order
// matches cart insertion order and every currency value renders with two
// decimals and the decimal comma. Compose reads state and never mutates it;
// clearing the cart after a successful hand-off is the caller's separate
// step, so a failed hand-off loses nothing.
func Compose(lines []models.CartLine, form models.CheckoutForm, phone string, deliveryFee decimal.Decimal) Handoff {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.TotalPrice)
	}
	total := subtotal.Add(deliveryFee)

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")
	b.WriteString("*Cliente:* " + strings.TrimSpace(form.CustomerName) + "\n")
	b.WriteString("*Endereço:* " + strings.TrimSpace(form.Address) + "\n")
	if form.LocationLink != "" {
		b.WriteString("*📍 Localização GPS:* " + form.LocationLink + "\n")
	}
	b.WriteString(separator + "\n")
	b.WriteString("*ITENS DO PEDIDO:*\n")

	for _, l := range lines {
		b.WriteString("• ")
		b.WriteString(itemLabel(l))
		if l.AddOn != nil {
			b.WriteString("\n  + Borda: " + l.AddOn.Name)
		}
		b.WriteString(" - " + FormatBRL(l.TotalPrice) + "\n")
	}

	b.WriteString(separator + "\n")
	b.WriteString("*Subtotal:* " + FormatBRL(subtotal) + "\n")
	b.WriteString("*Taxa de Entrega:* " + FormatBRL(deliveryFee) + "\n")
	b.WriteString("*TOTAL:* " + FormatBRL(total) + "\n")
	b.WriteString(separator + "\n")
	b.WriteString("*Pagamento:* " + string(form.Payment) + "\n")
	if form.Payment == models.PaymentCash && strings.TrimSpace(form.ChangeFor) != "" {
		b.WriteString("*Troco para:* R$ " + strings.TrimSpace(form.ChangeFor) + "\n")
	}

	message := b.String()
	return Handoff{
		Destination: phone,
		Message:     message,
		Link:        "https://wa.me/" + phone + "?text=" + encode(message),
	}
}

func itemLabel(l models.CartLine) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(l.Quantity) + "x " + l.DisplayName())
	if l.Product.Sized && l.Size != nil {
		b.WriteString(" (" + l.Size.Label + ")")
	}
	return b.String()
}

// encode percent-encodes the message body for the transport URL. Spaces
// become %20, not +, matching what the external channel expects in a query
// fragment.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
