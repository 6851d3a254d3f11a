package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestLocation begins a device-location fetch for the session. While a
// request is pending a second one is refused, mirroring the single disabled
// control in the UI.
func (h *Handler) RequestLocation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	token, err := s.RequestLocation()
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"token": token})
}

type attachLocationRequest struct {
	Token     uint64  `json:"token"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AttachLocation reports a successful coordinate fix. Stale tokens are
// refused so a late success can never override a newer removal.
func (h *Handler) AttachLocation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req attachLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	link, err := s.AttachLocation(req.Token, req.Latitude, req.Longitude)
	if err != nil {
		jsonError(c, err)
		return
	}
	h.mylog.Debug(s.ID, "location_attached", "GPS location attached")
	c.JSON(http.StatusOK, gin.H{"location_link": link})
}

type failLocationRequest struct {
	Token  uint64 `json:"token"`
	Reason string `json:"reason"`
}

// FailLocation reports a denied, unavailable or timed-out fetch. The flow
// continues without GPS.
func (h *Handler) FailLocation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req failLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON"})
		return
	}

	if err := s.FailLocation(req.Token); err != nil {
		jsonError(c, err)
		return
	}
	h.mylog.Debug(s.ID, "location_failed", "Location fetch failed: "+req.Reason)
	c.Status(http.StatusNoContent)
}

// RemoveLocation detaches the GPS link from the form.
func (h *Handler) RemoveLocation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.RemoveLocation()
	c.Status(http.StatusNoContent)
}
