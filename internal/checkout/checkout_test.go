package checkout

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shekinah-storefront/pkg/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{182, "182,00"},
		{65.5, "65,50"},
		{7, "7,00"},
		{1234.56, "1234,56"},
		{0, "0,00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(decimal.NewFromFloat(tt.in)); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		form        models.CheckoutForm
		wantName    bool
		wantAddress bool
	}{
		{"both present", models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1, Qd 2"}, false, false},
		{"empty name", models.CheckoutForm{CustomerName: "", Address: "Rua 1"}, true, false},
		{"whitespace name", models.CheckoutForm{CustomerName: "   ", Address: "Rua 1"}, true, false},
		{"empty address", models.CheckoutForm{CustomerName: "Ana", Address: " \t"}, false, true},
		{"both missing", models.CheckoutForm{}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.form)
			if errs.Name != tt.wantName || errs.Address != tt.wantAddress {
				t.Errorf("Validate = %+v, want name=%v address=%v", errs, tt.wantName, tt.wantAddress)
			}
			if errs.OK() != (!tt.wantName && !tt.wantAddress) {
				t.Errorf("OK() inconsistent with flags: %+v", errs)
			}
		})
	}
}

func TestValidateIgnoresPaymentAndChange(t *testing.T) {
	for _, p := range []models.Payment{models.PaymentPix, models.PaymentCredit, models.PaymentDebit, models.PaymentCash, ""} {
		form := models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1", Payment: p}
		if !Validate(form).OK() {
			t.Errorf("payment %q blocked validation", p)
		}
	}
}

func sampleLines() []models.CartLine {
	grande := models.SizeOption{Label: "Grande", Price: decimal.NewFromFloat(65.00), Slices: 8}
	catupiry := models.AddOn{Name: "Catupiry", Surcharge: decimal.NewFromFloat(13.00)}
	return []models.CartLine{
		{
			ID:         "l1",
			Product:    models.CatalogItem{ID: "4", Name: "Calabresa", Category: models.CategorySalgadas, Sized: true},
			Size:       &grande,
			AddOn:      &catupiry,
			Quantity:   2,
			TotalPrice: decimal.NewFromFloat(156.00),
		},
		{
			ID:         "l2",
			Product:    models.CatalogItem{ID: "34", Name: "Refrigerante Lata", Category: models.CategoryBebidas, FlatPrice: decimal.NewFromFloat(7.00)},
			Quantity:   3,
			TotalPrice: decimal.NewFromFloat(21.00),
		},
	}
}

func TestComposeMessage(t *testing.T) {
	form := models.CheckoutForm{
		CustomerName: "Ana Souza",
		Address:      "Rua das Flores, Qd 10, Lt 5",
		LocationLink: "https://www.google.com/maps?q=-15.8,-47.9",
		Payment:      models.PaymentCash,
		ChangeFor:    "200,00",
	}

	h := Compose(sampleLines(), form, "5561996125274", decimal.NewFromFloat(5.00))

	want := strings.Join([]string{
		"*NOVO PEDIDO - PIZZAS SHEKINAH*",
		"--------------------------------",
		"*Cliente:* Ana Souza",
		"*Endereço:* Rua das Flores, Qd 10, Lt 5",
		"*📍 Localização GPS:* https://www.google.com/maps?q=-15.8,-47.9",
		"--------------------------------",
		"*ITENS DO PEDIDO:*",
		"• 2x Calabresa (Grande)",
		"  + Borda: Catupiry - R$ 156,00",
		"• 3x Refrigerante Lata - R$ 21,00",
		"--------------------------------",
		"*Subtotal:* R$ 177,00",
		"*Taxa de Entrega:* R$ 5,00",
		"*TOTAL:* R$ 182,00",
		"--------------------------------",
		"*Pagamento:* Dinheiro",
		"*Troco para:* R$ 200,00",
		"",
	}, "\n")

	if h.Message != want {
		t.Errorf("message mismatch:\ngot:\n%s\nwant:\n%s", h.Message, want)
	}
	if h.Destination != "5561996125274" {
		t.Errorf("destination = %q", h.Destination)
	}
}

func TestComposeSplitLineNaming(t *testing.T) {
	grande := models.SizeOption{Label: "Grande", Price: decimal.NewFromFloat(65.00), Slices: 8}
	second := models.CatalogItem{ID: "20", Name: "Mussarela", Category: models.CategorySalgadas, Sized: true}
	lines := []models.CartLine{{
		ID:         "l1",
		Product:    models.CatalogItem{ID: "4", Name: "Calabresa", Category: models.CategorySalgadas, Sized: true},
		SecondHalf: &second,
		Size:       &grande,
		Quantity:   1,
		TotalPrice: decimal.NewFromFloat(65.00),
	}}
	form := models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1", Payment: models.PaymentPix}

	h := Compose(lines, form, "5561996125274", decimal.NewFromFloat(5.00))
	if !strings.Contains(h.Message, "• 1x Meia Calabresa + Meia Mussarela (Grande) - R$ 65,00") {
		t.Errorf("split line missing or malformed:\n%s", h.Message)
	}
}

func TestComposeOmitsOptionalLines(t *testing.T) {
	form := models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1", Payment: models.PaymentPix, ChangeFor: "100"}

	h := Compose(sampleLines(), form, "5561996125274", decimal.NewFromFloat(5.00))
	if strings.Contains(h.Message, "Localização GPS") {
		t.Error("GPS line present without a location link")
	}
	// Change is advisory and only rendered for cash payments.
	if strings.Contains(h.Message, "Troco para") {
		t.Error("change line present for non-cash payment")
	}

	form.Payment = models.PaymentCash
	form.ChangeFor = "   "
	h = Compose(sampleLines(), form, "5561996125274", decimal.NewFromFloat(5.00))
	if strings.Contains(h.Message, "Troco para") {
		t.Error("change line present for blank change text")
	}
}

func TestComposeLinkEncoding(t *testing.T) {
	form := models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1", Payment: models.PaymentPix}
	h := Compose(sampleLines(), form, "5561996125274", decimal.NewFromFloat(5.00))

	if !strings.HasPrefix(h.Link, "https://wa.me/5561996125274?text=") {
		t.Fatalf("link prefix wrong: %s", h.Link)
	}
	encoded := strings.TrimPrefix(h.Link, "https://wa.me/5561996125274?text=")
	if strings.ContainsAny(encoded, " \n*+") {
		t.Errorf("payload not fully percent-encoded: %s", encoded)
	}
	if !strings.Contains(encoded, "%20") {
		t.Error("spaces must encode as %20")
	}
}

func TestComposeDoesNotMutateLines(t *testing.T) {
	lines := sampleLines()
	before := lines[0].TotalPrice.String()
	form := models.CheckoutForm{CustomerName: "Ana", Address: "Rua 1", Payment: models.PaymentPix}

	_ = Compose(lines, form, "5561996125274", decimal.NewFromFloat(5.00))
	if lines[0].TotalPrice.String() != before {
		t.Error("compose mutated a cart line")
	}
}
