package handle

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/checkout"
	"shekinah-storefront/pkg/models"
)

type catalogItemView struct {
	models.CatalogItem
	// FromPrice is the lowest size tier for sized items, the flat price
	// otherwise — always the real computed value, never a display constant.
	FromPrice string `json:"from_price"`
}

func (h *Handler) itemView(it models.CatalogItem) catalogItemView {
	price := it.FlatPrice
	if it.Sized {
		price = h.menu.MinSizePrice()
	}
	return catalogItemView{CatalogItem: it, FromPrice: checkout.FormatAmount(price)}
}

// ListCatalog returns the menu, optionally filtered by category.
func (h *Handler) ListCatalog(c *gin.Context) {
	items := h.menu.Items()
	if cat := c.Query("category"); cat != "" {
		items = h.menu.ByCategory(models.Category(cat))
	}

	views := make([]catalogItemView, 0, len(items))
	for _, it := range items {
		views = append(views, h.itemView(it))
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

// CatalogItem returns one product with its configuration choices: the size
// table, the add-on table and the valid second flavors for a split.
func (h *Handler) CatalogItem(c *gin.Context) {
	it, err := h.menu.ByID(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return
	}

	resp := gin.H{"item": h.itemView(it)}
	if it.Sized {
		resp["sizes"] = h.menu.Sizes()
		resp["add_ons"] = h.menu.AddOns()
		resp["second_half_choices"] = h.menu.SecondHalfChoices(it)
	}
	c.JSON(http.StatusOK, resp)
}

// Image serves a product image, substituting the placeholder when the asset
// is missing. Purely presentational; the catalog data is untouched.
func (h *Handler) Image(c *gin.Context) {
	name := filepath.Base(c.Param("file"))
	if name == "." || strings.HasPrefix(name, "..") {
		c.Status(http.StatusNotFound)
		return
	}

	path := filepath.Join(h.imagesDir, name)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(h.imagesDir, "placeholder.svg")
		if _, err := os.Stat(path); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
	}
	c.File(path)
}
