// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-checkout/payment"
	"go-checkout/store"
	"go-checkout/utils"
)

// OrderController handles the admin order screens: listing orders and the
// explicit manual status transition. Order creation goes through the
// checkout pipeline only; this controller never inserts.
type OrderController struct {
	Orders       *store.OrderStore
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *store.OrderStore, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Orders:       orders,
		EmailService: emailService,
	}
}

// GetOrders retrieves all orders, newest first (Admin only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.List(ctx)
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetOrderByID retrieves a single order (Admin only)
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := oc.Orders.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// UpdateOrderStatus applies a manual status transition (Admin only). The
// body carries a persisted label, e.g. after reviewing an order left
// "In Analysis".
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var statusUpdate struct {
		Status string `json:"status"`
	}
	err = json.NewDecoder(r.Body).Decode(&statusUpdate)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !payment.KnownLabel(statusUpdate.Status) {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := oc.Orders.UpdateStatus(ctx, id, statusUpdate.Status); err != nil {
		http.Error(w, "Failed to update order status", http.StatusInternalServerError)
		return
	}

	order, err := oc.Orders.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Failed to retrieve updated order", http.StatusInternalServerError)
		return
	}

	// Notify the customer about the transition
	go func() {
		if err := oc.EmailService.SendStatusUpdate(order); err != nil {
			log.Printf("Failed to send email to %s: %v", order.Customer.Email, err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated successfully"})
}
