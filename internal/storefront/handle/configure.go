package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/configurator"
	"shekinah-storefront/internal/session"
)

type startConfiguringRequest struct {
	ProductID string `json:"product_id"`
}

// StartConfiguring enters the configurator for one product.
func (h *Handler) StartConfiguring(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req startConfiguringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	item, err := h.menu.ByID(req.ProductID)
	if err != nil {
		jsonError(c, err)
		return
	}
	if err := s.StartConfiguring(item.ID); err != nil {
		jsonError(c, err)
		return
	}

	resp := gin.H{"step": s.Step(), "item": h.itemView(item)}
	if item.Sized {
		resp["sizes"] = h.menu.Sizes()
		resp["add_ons"] = h.menu.AddOns()
		resp["second_half_choices"] = h.menu.SecondHalfChoices(item)
		resp["default_size"] = h.menu.DefaultSize().Label
	}
	c.JSON(http.StatusOK, resp)
}

// CancelConfiguring abandons the configurator.
func (h *Handler) CancelConfiguring(c *gin.Context) {
	h.transition(c, func(s *session.Session) error { return s.CancelConfiguring() })
}

// QuoteConfiguration prices the current options without adding a line. A
// split without a second flavor quotes fine — it prices as the base size —
// but is flagged so the client keeps the confirm action disabled.
func (h *Handler) QuoteConfiguration(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	itemID, err := s.ConfiguringItem()
	if err != nil {
		jsonError(c, err)
		return
	}
	item, err := h.menu.ByID(itemID)
	if err != nil {
		jsonError(c, err)
		return
	}

	var opts configurator.Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	confirmable := true
	line, err := h.config.Configure(item, opts)
	if errors.Is(err, configurator.ErrSplitIncomplete) {
		confirmable = false
		priced := opts
		priced.Split = false
		priced.SecondID = ""
		line, err = h.config.Configure(item, priced)
	}
	if err != nil {
		jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"line":        viewLine(line),
		"confirmable": confirmable,
	})
}

// ConfirmConfiguration prices the options, appends the resulting line and
// returns the session to browsing.
func (h *Handler) ConfirmConfiguration(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	itemID, err := s.ConfiguringItem()
	if err != nil {
		jsonError(c, err)
		return
	}
	item, err := h.menu.ByID(itemID)
	if err != nil {
		jsonError(c, err)
		return
	}

	var opts configurator.Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	line, err := h.config.Configure(item, opts)
	if err != nil {
		jsonError(c, err)
		return
	}
	if err := s.ConfirmLine(line); err != nil {
		jsonError(c, err)
		return
	}

	h.mylog.Info(s.ID, "line_added", "Cart line added: "+line.DisplayName())
	c.JSON(http.StatusCreated, gin.H{"step": s.Step(), "line": viewLine(line)})
}
