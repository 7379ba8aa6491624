package payment

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go-checkout/models"
)

// OrderStore is the persistence contract the guard commits through. The
// implementation assigns the order identity and creation timestamp.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
}

// Guard timing. The release delay keeps the latch held briefly after a
// commit finishes so a rapid duplicate click still sees it; the safety
// timeout force-clears a latch whose commit never resolved.
const (
	DefaultReleaseDelay  = 3 * time.Second
	DefaultSafetyTimeout = 30 * time.Second
)

// Guard serializes order creation for one checkout session. It holds the
// session's only piece of mutable shared state, a single latch; at most
// one commit is in flight at a time.
type Guard struct {
	store         OrderStore
	releaseDelay  time.Duration
	safetyTimeout time.Duration

	mu   sync.Mutex
	held bool
	gen  uint64
}

// NewGuard creates a guard with the default timings.
func NewGuard(store OrderStore) *Guard {
	return NewGuardWithTimings(store, DefaultReleaseDelay, DefaultSafetyTimeout)
}

// NewGuardWithTimings creates a guard with explicit release and safety
// durations. Tests use short values here.
func NewGuardWithTimings(store OrderStore, releaseDelay, safetyTimeout time.Duration) *Guard {
	return &Guard{
		store:         store,
		releaseDelay:  releaseDelay,
		safetyTimeout: safetyTimeout,
	}
}

// Commit validates the customer and inserts exactly one order for this
// attempt. A second invocation while the latch is held fails fast with
// ErrProcessingInProgress; the caller surfaces it and must not retry
// automatically.
//
// The latch is released after a short fixed delay on both success and
// failure, and force-cleared by the safety timeout if the store call
// never returns.
func (g *Guard) Commit(ctx context.Context, customer models.Customer, product models.Product, outcome PaymentOutcome) (models.Order, error) {
	gen, ok := g.acquire()
	if !ok {
		return models.Order{}, ErrProcessingInProgress
	}
	defer g.scheduleRelease(gen)

	if errs := ValidateCustomer(customer); errs != nil {
		return models.Order{}, errs
	}

	order := buildOrder(customer, product, outcome)
	committed, err := g.store.Insert(ctx, order)
	if err != nil {
		log.Printf("order insert failed for payment %s: %v", outcome.PaymentID, err)
		return models.Order{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return committed, nil
}

// acquire takes the latch, arming the safety timeout. The generation
// counter keeps a stale timer from clearing a later hold.
func (g *Guard) acquire() (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held {
		return 0, false
	}
	g.held = true
	g.gen++
	gen := g.gen
	time.AfterFunc(g.safetyTimeout, func() { g.releaseIf(gen) })
	return gen, true
}

// scheduleRelease frees the latch after the release delay, not
// immediately, so a duplicate click arriving just after completion is
// still rejected.
func (g *Guard) scheduleRelease(gen uint64) {
	time.AfterFunc(g.releaseDelay, func() { g.releaseIf(gen) })
}

func (g *Guard) releaseIf(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held && g.gen == gen {
		g.held = false
	}
}

// Held reports whether a commit is currently latched. Exposed for the
// HTTP layer to pre-check and for tests.
func (g *Guard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}

// buildOrder assembles the order document from the attempt's parts. The
// persisted label comes from the status mapper; a failed outcome can never
// produce a paid label.
func buildOrder(customer models.Customer, product models.Product, outcome PaymentOutcome) models.Order {
	label := LabelForStatus(outcome.Status)
	if !outcome.Success && label == LabelPaid {
		label = LabelFailed
	}

	order := models.Order{
		Customer:      customer,
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductPrice:  product.Price,
		PaymentMethod: outcome.Method,
		PaymentID:     outcome.PaymentID,
		Status:        label,
	}
	if outcome.Card != nil {
		order.Card = &models.OrderCard{
			MaskedNumber: outcome.Card.MaskedNumber,
			Brand:        outcome.Card.Brand,
			Expiry:       outcome.Card.Expiry,
		}
	}
	if outcome.Alt != nil {
		order.Alt = &models.OrderAlt{
			Payload:   outcome.Alt.Payload,
			ImageURL:  outcome.Alt.ImageURL,
			ExpiresAt: outcome.Alt.ExpiresAt,
		}
	}
	return order
}
