// Package handle implements the storefront HTTP handlers.
package handle

import (
	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/internal/configurator"
	"shekinah-storefront/internal/session"
	"shekinah-storefront/pkg/logger"
)

type Handler struct {
	menu      *catalog.Catalog
	config    *configurator.Configurator
	store     *session.Store
	imagesDir string
	mylog     *logger.Logger
}

func NewHandler(menu *catalog.Catalog, config *configurator.Configurator, store *session.Store, imagesDir string, mylog *logger.Logger) *Handler {
	return &Handler{
		menu:      menu,
		config:    config,
		store:     store,
		imagesDir: imagesDir,
		mylog:     mylog,
	}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/catalog", h.ListCatalog)
	api.GET("/catalog/:id", h.CatalogItem)

	api.POST("/sessions", h.CreateSession)

	sess := api.Group("/sessions/:id")
	sess.POST("/configure", h.StartConfiguring)
	sess.POST("/configure/confirm", h.ConfirmConfiguration)
	sess.POST("/configure/cancel", h.CancelConfiguring)
	sess.POST("/configure/quote", h.QuoteConfiguration)

	sess.GET("/cart", h.Cart)
	sess.DELETE("/cart/:lineID", h.RemoveLine)
	sess.POST("/cart/review", h.OpenCartReview)
	sess.POST("/cart/review/close", h.CloseCartReview)

	sess.POST("/checkout", h.BeginCheckout)
	sess.POST("/checkout/back", h.BackToCart)
	sess.PUT("/checkout/form", h.UpdateForm)
	sess.POST("/checkout/submit", h.Submit)

	sess.POST("/location", h.RequestLocation)
	sess.PUT("/location", h.AttachLocation)
	sess.POST("/location/fail", h.FailLocation)
	sess.DELETE("/location", h.RemoveLocation)

	r.GET("/images/:file", h.Image)
}
