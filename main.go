// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-checkout/controllers"
	"go-checkout/routes"
	"go-checkout/store"
	"go-checkout/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Load the JWT secret key; fatal when unset
	utils.LoadJwtKey()

	// Live mode enables real settlement semantics; anything else keeps the
	// deterministic test-number behavior.
	live := os.Getenv("APP_ENV") == "production"

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize controllers
	orders := store.NewOrderStore(client)
	userController := controllers.NewUserController(client)
	productController := controllers.NewProductController(client)
	checkoutController := controllers.NewCheckoutController(client, orders, emailService, live)
	orderController := controllers.NewOrderController(orders, emailService)
	settingsController := controllers.NewSettingsController(client, live)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, checkoutController, orderController, settingsController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
