package configurator

import (
	"errors"
	"testing"

	"shekinah-storefront/internal/catalog"
)

func newConfigurator(t *testing.T) (*Configurator, *catalog.Catalog) {
	t.Helper()
	menu := catalog.New()
	return New(menu), menu
}

func TestSizedItemPricing(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	line, err := cf.Configure(calabresa, Options{
		SizeLabel: "Grande",
		AddOnName: "Catupiry",
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	// (65.00 + 13.00) * 2
	if got := line.TotalPrice.StringFixed(2); got != "156.00" {
		t.Errorf("total = %s, want 156.00", got)
	}
	if line.AddOn == nil || line.AddOn.Name != "Catupiry" {
		t.Errorf("add-on not recorded: %+v", line.AddOn)
	}
	if line.Size == nil || line.Size.Label != "Grande" {
		t.Errorf("size not recorded: %+v", line.Size)
	}
}

func TestFlatItemPricing(t *testing.T) {
	cf, menu := newConfigurator(t)
	lata, _ := menu.ByID("34")

	line, err := cf.Configure(lata, Options{Quantity: 3})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := line.TotalPrice.StringFixed(2); got != "21.00" {
		t.Errorf("total = %s, want 21.00", got)
	}
}

func TestFlatItemIgnoresPizzaOptions(t *testing.T) {
	cf, menu := newConfigurator(t)
	lata, _ := menu.ByID("34")

	line, err := cf.Configure(lata, Options{
		SizeLabel: "Grande",
		AddOnName: "Cheddar",
		Split:     true,
		SecondID:  "35",
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if line.Size != nil || line.AddOn != nil || line.SecondHalf != nil {
		t.Errorf("flat item must ignore size/add-on/split: %+v", line)
	}
	if got := line.TotalPrice.StringFixed(2); got != "7.00" {
		t.Errorf("total = %s, want 7.00", got)
	}
}

func TestSplitSamePriceAsSingleFlavor(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	line, err := cf.Configure(calabresa, Options{
		SizeLabel: "Grande",
		Split:     true,
		SecondID:  "20", // Mussarela
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := line.TotalPrice.StringFixed(2); got != "65.00" {
		t.Errorf("split total = %s, want 65.00 (no upcharge)", got)
	}
	if line.SecondHalf == nil || line.SecondHalf.Name != "Mussarela" {
		t.Errorf("second half not recorded: %+v", line.SecondHalf)
	}
	if got := line.DisplayName(); got != "Meia Calabresa + Meia Mussarela" {
		t.Errorf("DisplayName = %q", got)
	}
}

// Any size below the two largest tiers silently drops the split selection.
func TestSmallSizeClearsSplit(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	for _, label := range []string{"Pequena"} {
		line, err := cf.Configure(calabresa, Options{
			SizeLabel: label,
			Split:     true,
			SecondID:  "20",
			Quantity:  1,
		})
		if err != nil {
			t.Fatalf("Configure(%s): %v", label, err)
		}
		if line.SecondHalf != nil {
			t.Errorf("size %s kept the split selection", label)
		}
		if got := line.TotalPrice.StringFixed(2); got != "45.00" {
			t.Errorf("total = %s, want 45.00", got)
		}
	}

	for _, label := range []string{"Média", "Grande"} {
		line, err := cf.Configure(calabresa, Options{
			SizeLabel: label,
			Split:     true,
			SecondID:  "20",
			Quantity:  1,
		})
		if err != nil {
			t.Fatalf("Configure(%s): %v", label, err)
		}
		if line.SecondHalf == nil {
			t.Errorf("size %s should keep the split selection", label)
		}
	}
}

func TestSplitIncompleteBlocksConfirmation(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	tests := []struct {
		name     string
		secondID string
	}{
		{"no second flavor", ""},
		{"unknown second flavor", "999"},
		{"same item as second flavor", "4"},
		{"flat item as second flavor", "34"},
		{"cross-category second flavor", "30"}, // Prestígio is Doces
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cf.Configure(calabresa, Options{
				SizeLabel: "Grande",
				Split:     true,
				SecondID:  tt.secondID,
				Quantity:  1,
			})
			if !errors.Is(err, ErrSplitIncomplete) {
				t.Errorf("err = %v, want ErrSplitIncomplete", err)
			}
		})
	}
}

func TestQuantityFlooredAtOne(t *testing.T) {
	cf, menu := newConfigurator(t)
	lata, _ := menu.ByID("34")

	for _, qty := range []int{0, -3} {
		line, err := cf.Configure(lata, Options{Quantity: qty})
		if err != nil {
			t.Fatalf("Configure(qty=%d): %v", qty, err)
		}
		if line.Quantity != 1 {
			t.Errorf("qty %d floored to %d, want 1", qty, line.Quantity)
		}
	}
}

func TestDefaultsToLargestSize(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	line, err := cf.Configure(calabresa, Options{Quantity: 1})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if line.Size == nil || line.Size.Label != "Grande" {
		t.Errorf("default size = %+v, want Grande", line.Size)
	}
	if got := line.TotalPrice.StringFixed(2); got != "65.00" {
		t.Errorf("total = %s, want 65.00", got)
	}
}

func TestFreeAddOnIsNotRecorded(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	line, err := cf.Configure(calabresa, Options{
		SizeLabel: "Média",
		AddOnName: "Sem Borda Recheada",
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if line.AddOn != nil {
		t.Errorf("free add-on recorded on line: %+v", line.AddOn)
	}
	if got := line.TotalPrice.StringFixed(2); got != "55.00" {
		t.Errorf("total = %s, want 55.00", got)
	}
}

func TestUnknownOptions(t *testing.T) {
	cf, menu := newConfigurator(t)
	calabresa, _ := menu.ByID("4")

	if _, err := cf.Configure(calabresa, Options{SizeLabel: "Gigante", Quantity: 1}); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("err = %v, want ErrUnknownSize", err)
	}
	if _, err := cf.Configure(calabresa, Options{AddOnName: "Requeijão", Quantity: 1}); !errors.Is(err, ErrUnknownAddOn) {
		t.Errorf("err = %v, want ErrUnknownAddOn", err)
	}
}

func TestLineIdentityIsUnique(t *testing.T) {
	cf, menu := newConfigurator(t)
	lata, _ := menu.ByID("34")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		line, err := cf.Configure(lata, Options{Quantity: 1})
		if err != nil {
			t.Fatalf("Configure: %v", err)
		}
		if line.ID == "" || seen[line.ID] {
			t.Fatalf("duplicate or empty line id %q", line.ID)
		}
		seen[line.ID] = true
	}
}
