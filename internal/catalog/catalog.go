// Package catalog holds the static menu: products, the shared size table,
// stuffed-crust add-ons and the pricing constants. Everything here is fixed
// at build time and never mutated.
package catalog

import (
	"errors"

	"github.com/shopspring/decimal"

	"shekinah-storefront/pkg/models"
)

// PhoneNumber is the WhatsApp destination orders are handed off to.
const PhoneNumber = "5561996125274"

// PlaceholderImage is substituted at render time when a product image is
// missing on disk.
const PlaceholderImage = "/images/placeholder.svg"

var (
	// DeliveryFee is the fixed city-wide delivery charge.
	DeliveryFee = decimal.NewFromFloat(5.00)

	// AddOnSurcharge is the single surcharge shared by every non-free
	// stuffed-crust option.
	AddOnSurcharge = decimal.NewFromFloat(13.00)
)

var ErrUnknownItem = errors.New("unknown catalog item")

var sizes = []models.SizeOption{
	{Label: "Pequena", Slices: 4, Price: decimal.NewFromFloat(45.00)},
	{Label: "Média", Slices: 6, Price: decimal.NewFromFloat(55.00)},
	{Label: "Grande", Slices: 8, Price: decimal.NewFromFloat(65.00)},
}

var addOns = []models.AddOn{
	{Name: "Sem Borda Recheada", Surcharge: decimal.Zero},
	{Name: "Catupiry", Surcharge: AddOnSurcharge},
	{Name: "Cheddar", Surcharge: AddOnSurcharge},
	{Name: "Chocolate", Surcharge: AddOnSurcharge},
	{Name: "Chocolate Branco", Surcharge: AddOnSurcharge},
	{Name: "Doce de Leite", Surcharge: AddOnSurcharge},
}

func pizza(id, name, description string, category models.Category) models.CatalogItem {
	return models.CatalogItem{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Sized:       true,
		ImagePath:   ImagePath(name),
	}
}

func drink(id, name, description string, price float64) models.CatalogItem {
	return models.CatalogItem{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    models.CategoryBebidas,
		FlatPrice:   decimal.NewFromFloat(price),
		ImagePath:   ImagePath(name),
	}
}

var items = []models.CatalogItem{
	pizza("1", "Bacon", "Mussarela, bacon, champignon e orégano.", models.CategorySalgadas),
	pizza("2", "Bacon Crocante", "Mussarela, bacon, batata palha e orégano.", models.CategorySalgadas),
	pizza("3", "Baiana", "Mussarela, calabresa, pimenta calabresa, cebola e orégano.", models.CategorySalgadas),
	pizza("4", "Calabresa", "Mussarela, calabresa, cebola, azeitona e orégano.", models.CategorySalgadas),
	pizza("5", "Carne Seca", "Mussarela, carne seca, pimentão, cebola e orégano.", models.CategorySalgadas),
	pizza("6", "Carne Seca com Catupiry", "Mussarela, carne, catupiry e orégano.", models.CategorySalgadas),
	pizza("7", "Carnechedda", "Mussarela, carne seca, tomate, cheddar, cebola e orégano.", models.CategorySalgadas),
	pizza("8", "Calacheddar", "Mussarela, calabresa, cheddar e orégano.", models.CategorySalgadas),
	pizza("9", "Carne Seca c/ Banana", "Mussarela, carne seca, banana e orégano.", models.CategorySalgadas),
	pizza("10", "Catupiresa", "Mussarela, calabresa, catupiry, azeitona e orégano.", models.CategorySalgadas),
	pizza("11", "Champignon", "Mussarela, champignon, pimentão, catupiry e orégano.", models.CategorySalgadas),
	pizza("12", "Cheddar Especial", "Mussarela, cheddar, champignon, palmito e orégano.", models.CategorySalgadas),
	pizza("13", "Espanhola", "Mussarela, presunto, tomate, palmito, azeitona e orégano.", models.CategorySalgadas),
	pizza("14", "Frango com Cheddar", "Mussarela, frango, cheddar, milho e orégano.", models.CategorySalgadas),
	pizza("15", "Francesa", "Mussarela, presunto, ovo, catupiry e orégano.", models.CategorySalgadas),
	pizza("16", "Frango com Catupiry", "Mussarela, frango, catupiry e orégano.", models.CategorySalgadas),
	pizza("17", "Goiana", "Mussarela, frango, milho, palmito, azeitona, catupiry e orégano.", models.CategorySalgadas),
	pizza("18", "Hot Dog", "Mussarela, salsicha, bacon, batata palha e orégano.", models.CategorySalgadas),
	pizza("19", "Marguerita", "Mussarela, tomate, alho, azeitona e orégano.", models.CategorySalgadas),
	pizza("20", "Mussarela", "Mussarela, tomate e orégano.", models.CategorySalgadas),
	pizza("21", "Palmito", "Mussarela, palmito, alho, bacon e orégano.", models.CategorySalgadas),
	pizza("22", "Portuguesa", "Mussarela, presunto, ovo, pimentão, cebola e orégano.", models.CategorySalgadas),
	pizza("23", "Presunto", "Mussarela, presunto, tomate e orégano.", models.CategorySalgadas),
	pizza("24", "Vegetariana", "Mussarela, tomate, ervilha, palmito, azeitona e orégano.", models.CategorySalgadas),
	pizza("25", "Shekinah", "Mussarela, calabresa, milho, ovo, cebola, bacon e orégano.", models.CategorySalgadas),
	pizza("26", "Tropical", "Mussarela, frango, milho, ervilha, ovo, catupiry e orégano.", models.CategorySalgadas),

	pizza("27", "Banana com Chocolate", "Mussarela, banana, chocolate, canela e confete.", models.CategoryDoces),
	pizza("28", "Banana com Canela", "Mussarela, banana, açúcar e canela.", models.CategoryDoces),
	pizza("29", "Doce de Leite", "Mussarela, doce de leite e paçoca.", models.CategoryDoces),
	pizza("30", "Prestígio", "Mussarela, chocolate e coco ralado.", models.CategoryDoces),
	pizza("31", "Pistache", "Mussarela, ganache de pistache e gotas de chocolate.", models.CategoryDoces),
	pizza("32", "Romeu e Julieta", "Mussarela, goiabada e catupiry.", models.CategoryDoces),
	pizza("33", "Brigadeiro", "Mussarela, chocolate e confete.", models.CategoryDoces),

	drink("34", "Refrigerante Lata", "350ml - Diversos sabores", 7.00),
	drink("35", "Refrigerante 2L", "Coca-cola, Guaraná, etc.", 14.00),
}

// Catalog is the immutable menu. A single instance is built at startup and
// shared read-only.
type Catalog struct {
	items []models.CatalogItem
	byID  map[string]models.CatalogItem
}

func New() *Catalog {
	c := &Catalog{
		items: items,
		byID:  make(map[string]models.CatalogItem, len(items)),
	}
	for _, it := range items {
		c.byID[it.ID] = it
	}
	return c
}

// Items returns every catalog item in menu order.
func (c *Catalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByID looks an item up by its stable id.
func (c *Catalog) ByID(id string) (models.CatalogItem, error) {
	it, ok := c.byID[id]
	if !ok {
		return models.CatalogItem{}, ErrUnknownItem
	}
	return it, nil
}

// ByCategory returns the items of one category in menu order.
func (c *Catalog) ByCategory(cat models.Category) []models.CatalogItem {
	var out []models.CatalogItem
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// SecondHalfChoices lists the valid second flavors for a split of item:
// sized items of the same category, excluding the item itself.
func (c *Catalog) SecondHalfChoices(item models.CatalogItem) []models.CatalogItem {
	var out []models.CatalogItem
	for _, it := range c.items {
		if it.Sized && it.Category == item.Category && it.ID != item.ID {
			out = append(out, it)
		}
	}
	return out
}

// Sizes returns the shared size table, smallest tier first.
func (c *Catalog) Sizes() []models.SizeOption {
	out := make([]models.SizeOption, len(sizes))
	copy(out, sizes)
	return out
}

// SizeByLabel resolves a size tier by its label.
func (c *Catalog) SizeByLabel(label string) (models.SizeOption, bool) {
	for _, s := range sizes {
		if s.Label == label {
			return s, true
		}
	}
	return models.SizeOption{}, false
}

// DefaultSize is the tier preselected in the configurator (the largest).
func (c *Catalog) DefaultSize() models.SizeOption {
	return sizes[len(sizes)-1]
}

// SplitEligible reports whether the size tier admits a half-and-half
// configuration: only the two largest tiers do.
func (c *Catalog) SplitEligible(size models.SizeOption) bool {
	for _, s := range sizes[len(sizes)-2:] {
		if s.Label == size.Label {
			return true
		}
	}
	return false
}

// AddOns returns the stuffed-crust table, the free entry first.
func (c *Catalog) AddOns() []models.AddOn {
	out := make([]models.AddOn, len(addOns))
	copy(out, addOns)
	return out
}

// AddOnByName resolves an add-on by name.
func (c *Catalog) AddOnByName(name string) (models.AddOn, bool) {
	for _, a := range addOns {
		if a.Name == name {
			return a, true
		}
	}
	return models.AddOn{}, false
}

// MinSizePrice is the lowest size tier price, shown as the "from" price for
// sized items before configuration. The original storefront hardcoded this
// display value; it is computed here so the menu and the size table cannot
// drift apart.
func (c *Catalog) MinSizePrice() decimal.Decimal {
	min := sizes[0].Price
	for _, s := range sizes[1:] {
		if s.Price.LessThan(min) {
			min = s.Price
		}
	}
	return min
}
