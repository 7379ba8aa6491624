// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"go-checkout/controllers"
	"go-checkout/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, checkoutController *controllers.CheckoutController, orderController *controllers.OrderController, settingsController *controllers.SettingsController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Checkout routes (anonymous)
	router.HandleFunc("/checkout/config", checkoutController.GetPaymentMethods).Methods("GET")
	router.HandleFunc("/checkout/card", checkoutController.CardCheckout).Methods("POST")
	router.HandleFunc("/checkout/alt", checkoutController.AltCheckout).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("", userController.GetProfile).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/settings", settingsController.GetSettings).Methods("GET")
	admin.HandleFunc("/settings", settingsController.UpdateSettings).Methods("PUT")
}
