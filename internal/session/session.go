// Package session models one customer's storefront visit: the checkout flow
// state machine, the cart, the delivery form and the GPS location sub-state.
// State lives only in memory and dies with the process.
package session

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shekinah-storefront/internal/cart"
	"shekinah-storefront/internal/checkout"
	"shekinah-storefront/pkg/models"
)

// Step is the checkout flow position. Transitions:
// Browsing -> Configuring -> Browsing (confirm or cancel);
// Browsing -> CartReview -> CheckoutForm -> (submitted -> Browsing, or
// CheckoutForm again with field errors).
type Step string

const (
	StepBrowsing     Step = "browsing"
	StepConfiguring  Step = "configuring"
	StepCartReview   Step = "cart_review"
	StepCheckoutForm Step = "checkout_form"
)

// LocationTimeout bounds how long a location request may stay pending.
const LocationTimeout = 10 * time.Second

var (
	ErrNotFound        = errors.New("session not found")
	ErrBadTransition   = errors.New("operation not allowed in current step")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrLocationPending = errors.New("a location request is already pending")
	ErrStaleLocation   = errors.New("location result superseded")
	ErrLocationTimeout = errors.New("location request timed out")
)

type locationStatus int

const (
	locationNone locationStatus = iota
	locationPending
	locationAttached
)

// locationState tracks the one asynchronous operation in the system. The
// token is bumped on every new request and on explicit removal, so a result
// arriving after either is recognized as stale and dropped.
type locationState struct {
	status   locationStatus
	token    uint64
	deadline time.Time
	link     string
}

// Session is one customer's mutable state. Every public method takes the
// session lock, so no two mutations interleave — the same serial model the
// spec requires of user actions.
type Session struct {
	ID string

	mu       sync.Mutex
	step     Step
	itemID   string
	cart     *cart.Cart
	form     models.CheckoutForm
	loc      locationState
	lastSeen time.Time
	now      func() time.Time
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{
		ID:       id,
		step:     StepBrowsing,
		cart:     cart.New(),
		form:     models.CheckoutForm{Payment: models.PaymentPix},
		lastSeen: now(),
		now:      now,
	}
}

// Step returns the current flow position.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// StartConfiguring enters the configurator for one catalog item.
func (s *Session) StartConfiguring(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepBrowsing {
		return ErrBadTransition
	}
	s.step = StepConfiguring
	s.itemID = itemID
	return nil
}

// CancelConfiguring abandons the configurator without adding a line.
func (s *Session) CancelConfiguring() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepConfiguring {
		return ErrBadTransition
	}
	s.step = StepBrowsing
	s.itemID = ""
	return nil
}

// ConfiguringItem returns the id of the item currently being configured.
func (s *Session) ConfiguringItem() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepConfiguring {
		return "", ErrBadTransition
	}
	return s.itemID, nil
}

// ConfirmLine appends a configured line and returns to browsing.
func (s *Session) ConfirmLine(line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepConfiguring {
		return ErrBadTransition
	}
	s.cart.Append(line)
	s.step = StepBrowsing
	s.itemID = ""
	return nil
}

// RemoveLine drops a cart line by id; absent ids are a no-op. Allowed while
// browsing or reviewing the cart.
func (s *Session) RemoveLine(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepBrowsing && s.step != StepCartReview {
		return ErrBadTransition
	}
	s.cart.Remove(lineID)
	return nil
}

// Lines returns the cart lines in insertion order.
func (s *Session) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Subtotal returns the unrounded sum of line totals.
func (s *Session) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// OpenCartReview moves from browsing to the cart review step.
func (s *Session) OpenCartReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepBrowsing {
		return ErrBadTransition
	}
	s.step = StepCartReview
	return nil
}

// CloseCartReview returns from cart review to browsing.
func (s *Session) CloseCartReview() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCartReview {
		return ErrBadTransition
	}
	s.step = StepBrowsing
	return nil
}

// BeginCheckout moves from cart review to the delivery form. An empty cart
// has nothing to check out.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCartReview {
		return ErrBadTransition
	}
	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}
	s.step = StepCheckoutForm
	return nil
}

// BackToCart returns from the delivery form to cart review, keeping the
// form fields.
func (s *Session) BackToCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCheckoutForm {
		return ErrBadTransition
	}
	s.step = StepCartReview
	return nil
}

// UpdateForm stashes the editable form fields. The location link is managed
// by the location sub-state, never by form edits.
func (s *Session) UpdateForm(name, address string, payment models.Payment, changeFor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCheckoutForm {
		return ErrBadTransition
	}
	s.form.CustomerName = name
	s.form.Address = address
	if payment.Valid() {
		s.form.Payment = payment
	}
	s.form.ChangeFor = changeFor
	return nil
}

// Form returns a copy of the current checkout form.
func (s *Session) Form() models.CheckoutForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit validates the form and, when it passes, composes the hand-off and
// resets the session to browsing with an empty cart. On validation failure
// the session stays in the form step with the offending fields flagged.
// Composition and the cart reset are distinct steps under the same lock, so
// the returned hand-off is complete before any state is dropped.
func (s *Session) Submit(phone string, deliveryFee decimal.Decimal) (checkout.Handoff, checkout.FieldErrors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCheckoutForm {
		return checkout.Handoff{}, checkout.FieldErrors{}, ErrBadTransition
	}

	fieldErrs := checkout.Validate(s.form)
	if !fieldErrs.OK() {
		return checkout.Handoff{}, fieldErrs, nil
	}

	handoff := checkout.Compose(s.cart.Lines(), s.form, phone, deliveryFee)

	s.cart.Clear()
	s.form = models.CheckoutForm{Payment: models.PaymentPix}
	s.loc = locationState{token: s.loc.token + 1}
	s.step = StepBrowsing
	return handoff, fieldErrs, nil
}

// RequestLocation begins a device-location fetch. Only one request may be
// pending at a time; the returned token must accompany the eventual result.
func (s *Session) RequestLocation() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.step != StepCheckoutForm {
		return 0, ErrBadTransition
	}
	if s.loc.status == locationPending && s.now().Before(s.loc.deadline) {
		return 0, ErrLocationPending
	}
	s.loc.token++
	s.loc.status = locationPending
	s.loc.deadline = s.now().Add(LocationTimeout)
	s.loc.link = ""
	return s.loc.token, nil
}

// AttachLocation resolves a pending request with a coordinate pair. Stale
// tokens — an older request superseded by a newer one, or a result arriving
// after an explicit removal — are rejected without touching state. A result
// past the deadline counts as a timeout and clears the pending request.
func (s *Session) AttachLocation(token uint64, lat, lng float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.loc.status != locationPending || token != s.loc.token {
		return "", ErrStaleLocation
	}
	if s.now().After(s.loc.deadline) {
		s.loc.status = locationNone
		return "", ErrLocationTimeout
	}
	link := mapsLink(lat, lng)
	s.loc.status = locationAttached
	s.loc.link = link
	s.form.LocationLink = link
	return link, nil
}

// FailLocation resolves a pending request with a failure (permission denied,
// unavailable, timeout). Recoverable: checkout proceeds without GPS.
func (s *Session) FailLocation(token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.loc.status != locationPending || token != s.loc.token {
		return ErrStaleLocation
	}
	s.loc.status = locationNone
	return nil
}

// RemoveLocation explicitly detaches the GPS link. Bumping the token here
// guarantees that any still-in-flight result from before the removal lands
// stale.
func (s *Session) RemoveLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.loc = locationState{token: s.loc.token + 1}
	s.form.LocationLink = ""
}

// LocationLink returns the attached maps link, empty when none.
func (s *Session) LocationLink() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc.link
}

// LocationPending reports whether a request is awaiting its result.
func (s *Session) LocationPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc.status == locationPending && s.now().Before(s.loc.deadline)
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

func mapsLink(lat, lng float64) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64)
}
