package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/internal/session"
	"shekinah-storefront/pkg/models"
)

// BeginCheckout moves from cart review to the delivery form.
func (h *Handler) BeginCheckout(c *gin.Context) {
	h.transition(c, func(s *session.Session) error { return s.BeginCheckout() })
}

// BackToCart returns from the delivery form to cart review.
func (h *Handler) BackToCart(c *gin.Context) {
	h.transition(c, func(s *session.Session) error { return s.BackToCart() })
}

type formRequest struct {
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Payment      string `json:"payment"`
	ChangeFor    string `json:"change_for"`
}

// UpdateForm stashes the delivery form fields.
func (h *Handler) UpdateForm(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req formRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	if err := s.UpdateForm(req.CustomerName, req.Address, models.Payment(req.Payment), req.ChangeFor); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": s.Form()})
}

// Submit validates the form and either returns the field flags (422) or the
// composed hand-off (200). On success the session is already back in
// browsing with an empty cart; the hand-off link is the caller's to open.
func (h *Handler) Submit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	handoff, fieldErrs, err := s.Submit(catalog.PhoneNumber, catalog.DeliveryFee)
	if err != nil {
		jsonError(c, err)
		return
	}
	if !fieldErrs.OK() {
		h.mylog.Debug(s.ID, "checkout_blocked", "Checkout blocked by missing required fields")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"field_errors": fieldErrs})
		return
	}

	h.mylog.Info(s.ID, "order_handed_off", "Order composed and handed off to "+handoff.Destination)
	c.JSON(http.StatusOK, gin.H{"step": s.Step(), "handoff": handoff})
}
