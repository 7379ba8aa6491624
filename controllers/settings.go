// controllers/settings.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-checkout/models"
	"go-checkout/payment"
)

// SettingsController owns the payment settings document the pipeline
// snapshots. The pipeline only ever reads the normalized form.
type SettingsController struct {
	Collection *mongo.Collection
	Live       bool
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(client *mongo.Client, live bool) *SettingsController {
	collection := client.Database("checkout").Collection("settings")
	return &SettingsController{
		Collection: collection,
		Live:       live,
	}
}

// GetSettings returns the raw settings document plus its normalized form
// so the admin screen can show the effective values (Admin only)
func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.PaymentSettings
	err := sc.Collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"settings":  settings,
		"effective": payment.NormalizeConfig(settings, sc.Live),
	})
}

// UpdateSettings replaces the settings document (Admin only)
func (sc *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.PaymentSettings
	err := json.NewDecoder(r.Body).Decode(&settings)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if settings.Card != nil {
		switch settings.Card.ManualStatus {
		case "", payment.ManualApproved, payment.ManualDenied, payment.ManualAnalysis:
		default:
			http.Error(w, "Invalid manual status", http.StatusBadRequest)
			return
		}
	}
	switch settings.OverridePolicy {
	case "", string(payment.OverrideWins), string(payment.GlobalWins):
	default:
		http.Error(w, "Invalid override policy", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings.ID = primitive.NilObjectID
	opts := options.Replace().SetUpsert(true)
	_, err = sc.Collection.ReplaceOne(ctx, bson.M{}, settings, opts)
	if err != nil {
		http.Error(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Settings updated successfully"})
}
