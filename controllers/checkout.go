// controllers/checkout.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-checkout/models"
	"go-checkout/payment"
	"go-checkout/store"
	"go-checkout/utils"
)

// CheckoutController exposes the payment pipeline over HTTP
type CheckoutController struct {
	ProductCollection  *mongo.Collection
	SettingsCollection *mongo.Collection
	Orders             *store.OrderStore
	Guards             *payment.SessionGuards
	EmailService       *utils.EmailService
	Live               bool
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(client *mongo.Client, orders *store.OrderStore, emailService *utils.EmailService, live bool) *CheckoutController {
	return &CheckoutController{
		ProductCollection:  client.Database("checkout").Collection("products"),
		SettingsCollection: client.Database("checkout").Collection("settings"),
		Orders:             orders,
		Guards:             payment.NewSessionGuards(orders),
		EmailService:       emailService,
		Live:               live,
	}
}

// cardCheckoutRequest is the card submission payload.
type cardCheckoutRequest struct {
	SessionID string                 `json:"session_id"`
	ProductID string                 `json:"product_id"`
	Customer  models.Customer        `json:"customer"`
	Card      payment.CardInstrument `json:"card"`
}

// altCheckoutRequest is the alternate-payment submission payload.
type altCheckoutRequest struct {
	SessionID string          `json:"session_id"`
	ProductID string          `json:"product_id"`
	Customer  models.Customer `json:"customer"`
}

// checkoutResponse is returned by both checkout paths.
type checkoutResponse struct {
	Order   models.Order           `json:"order"`
	Outcome payment.PaymentOutcome `json:"outcome"`
	Route   payment.Route          `json:"route"`
}

// GetPaymentMethods tells the checkout form which methods are available
func (cc *CheckoutController) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := cc.loadConfig(ctx)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{
		"enabled":      cfg.Enabled,
		"card_enabled": cfg.CardEnabled,
		"alt_enabled":  cfg.AltEnabled,
	})
}

// CardCheckout runs the card path: validate the instrument, resolve the
// payment status under the active configuration, commit the order through
// the session guard and return the navigation decision.
func (cc *CheckoutController) CardCheckout(w http.ResponseWriter, r *http.Request) {
	var req cardCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cfg := cc.loadConfig(ctx)
	if !cfg.Enabled || !cfg.CardEnabled {
		http.Error(w, "Card payments are not available", http.StatusUnprocessableEntity)
		return
	}

	product, ok := cc.findProduct(ctx, w, req.ProductID)
	if !ok {
		return
	}

	card, fieldErrs := payment.ValidateCard(req.Card, time.Now())
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	outcome := payment.ResolveCardPayment(card, cfg, product.Override)

	order, err := cc.Guards.Get(req.SessionID).Commit(ctx, req.Customer, product, outcome)
	if err != nil {
		cc.writeCommitError(w, err)
		return
	}

	cc.notify(order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(checkoutResponse{
		Order:   order,
		Outcome: outcome,
		Route:   payment.RouteOutcome(outcome.Status),
	})
}

// AltCheckout runs the alternate-payment path: generate the scannable
// credential, commit a pending order and return the navigation decision.
// The order stays pending until a later confirmation step transitions it.
func (cc *CheckoutController) AltCheckout(w http.ResponseWriter, r *http.Request) {
	var req altCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cfg := cc.loadConfig(ctx)
	if !cfg.Enabled || !cfg.AltEnabled {
		http.Error(w, "Alternate payments are not available", http.StatusUnprocessableEntity)
		return
	}

	product, ok := cc.findProduct(ctx, w, req.ProductID)
	if !ok {
		return
	}

	outcome, fieldErrs := payment.GenerateAltCredential(req.Customer, product.Price, time.Now().UTC())
	if fieldErrs != nil {
		writeFieldErrors(w, fieldErrs)
		return
	}

	order, err := cc.Guards.Get(req.SessionID).Commit(ctx, req.Customer, product, outcome)
	if err != nil {
		cc.writeCommitError(w, err)
		return
	}

	cc.notify(order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(checkoutResponse{
		Order:   order,
		Outcome: outcome,
		Route:   payment.RouteOutcome(outcome.Status),
	})
}

// loadConfig snapshots the settings document and normalizes it. A missing
// document yields the normalized defaults.
func (cc *CheckoutController) loadConfig(ctx context.Context) payment.PaymentConfig {
	var settings models.PaymentSettings
	err := cc.SettingsCollection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("failed to load payment settings: %v", err)
	}
	return payment.NormalizeConfig(settings, cc.Live)
}

// findProduct loads an active product, writing the error response itself
// when the lookup fails.
func (cc *CheckoutController) findProduct(ctx context.Context, w http.ResponseWriter, idHex string) (models.Product, bool) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return models.Product{}, false
	}

	var product models.Product
	err = cc.ProductCollection.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return models.Product{}, false
	}
	return product, true
}

// writeCommitError maps guard failures onto HTTP responses. Storage
// details stay in the logs; the user gets a generic retry message.
func (cc *CheckoutController) writeCommitError(w http.ResponseWriter, err error) {
	var fieldErrs *payment.FieldErrors
	switch {
	case errors.Is(err, payment.ErrProcessingInProgress):
		http.Error(w, "Your order is already being processed. Please wait.", http.StatusConflict)
	case errors.As(err, &fieldErrs):
		writeFieldErrors(w, fieldErrs)
	default:
		http.Error(w, "Payment could not be completed. Please try again.", http.StatusInternalServerError)
	}
}

// writeFieldErrors returns the first blocking message plus the full map
// for form-level display.
func writeFieldErrors(w http.ResponseWriter, errs *payment.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      errs.First(),
		"field":        errs.FirstField(),
		"field_errors": errs.Map(),
	})
}

// notify emails the customer according to the committed status.
func (cc *CheckoutController) notify(order models.Order) {
	go func() {
		var err error
		switch payment.StatusForLabel(order.Status) {
		case payment.StatusConfirmed:
			err = cc.EmailService.SendOrderConfirmation(order)
		case payment.StatusDeclined, payment.StatusFailed:
			err = cc.EmailService.SendOrderDeclined(order)
		default:
			err = cc.EmailService.SendOrderUnderReview(order)
		}
		if err != nil {
			log.Printf("Failed to send email to %s: %v", order.Customer.Email, err)
		}
	}()
}
