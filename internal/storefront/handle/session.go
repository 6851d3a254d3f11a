package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/internal/checkout"
	"shekinah-storefront/internal/session"
	"shekinah-storefront/pkg/models"
)

// CreateSession opens a fresh browsing session.
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.store.Create()
	h.mylog.Info(s.ID, "session_created", "New storefront session")
	c.JSON(http.StatusCreated, gin.H{"session_id": s.ID, "step": s.Step()})
}

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		jsonError(c, err)
		return nil, false
	}
	return s, true
}

type lineView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size,omitempty"`
	AddOn    string `json:"add_on,omitempty"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

func viewLine(l models.CartLine) lineView {
	v := lineView{
		ID:       l.ID,
		Name:     l.DisplayName(),
		Quantity: l.Quantity,
		Total:    checkout.FormatAmount(l.TotalPrice),
	}
	if l.Product.Sized && l.Size != nil {
		v.Size = l.Size.Label
	}
	if l.AddOn != nil {
		v.AddOn = l.AddOn.Name
	}
	return v
}

// Cart returns the lines in insertion order with the running totals.
func (h *Handler) Cart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	lines := s.Lines()
	views := make([]lineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, viewLine(l))
	}

	subtotal := s.Subtotal()
	c.JSON(http.StatusOK, gin.H{
		"step":         s.Step(),
		"lines":        views,
		"subtotal":     checkout.FormatAmount(subtotal),
		"delivery_fee": checkout.FormatAmount(catalog.DeliveryFee),
		"total":        checkout.FormatAmount(subtotal.Add(catalog.DeliveryFee)),
	})
}

// RemoveLine drops a cart line; removing an absent id succeeds unchanged.
func (h *Handler) RemoveLine(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.RemoveLine(c.Param("lineID")); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// OpenCartReview moves the session to the cart review step.
func (h *Handler) OpenCartReview(c *gin.Context) {
	h.transition(c, func(s *session.Session) error { return s.OpenCartReview() })
}

// CloseCartReview returns the session to browsing.
func (h *Handler) CloseCartReview(c *gin.Context) {
	h.transition(c, func(s *session.Session) error { return s.CloseCartReview() })
}

func (h *Handler) transition(c *gin.Context, op func(*session.Session) error) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := op(s); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": s.Step()})
}
