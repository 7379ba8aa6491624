// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"go-checkout/models"
)

// EmailService is the notification collaborator. Sends are fire-and-forget
// from the pipeline's perspective; callers log failures and move on.
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		panic("POSTMARK_API_TOKEN is not set in environment variables")
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmation notifies the customer that payment was approved.
func (es *EmailService) SendOrderConfirmation(order models.Order) error {
	subject := "Order Confirmation - Checkout Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your payment for <strong>%s</strong> was approved.<br><br>Order ID: <strong>%s</strong><br>Amount: <strong>$%s</strong><br><br>Thank you for shopping with us!",
		order.Customer.Name,
		order.ProductName,
		order.ID.Hex(),
		order.ProductPrice.StringFixed(2),
	)
	return es.SendEmail(order.Customer.Email, subject, htmlContent)
}

// SendOrderUnderReview notifies the customer that the payment is being
// reviewed and the order will be confirmed later.
func (es *EmailService) SendOrderUnderReview(order models.Order) error {
	subject := "Order Received - Checkout Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>We received your order for <strong>%s</strong>. Your payment is under review; we will email you as soon as it is confirmed.<br><br>Order ID: <strong>%s</strong>",
		order.Customer.Name,
		order.ProductName,
		order.ID.Hex(),
	)
	return es.SendEmail(order.Customer.Email, subject, htmlContent)
}

// SendOrderDeclined notifies the customer that the payment was declined.
func (es *EmailService) SendOrderDeclined(order models.Order) error {
	subject := "Payment Declined - Checkout Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Unfortunately your payment for <strong>%s</strong> was declined. No charge was made. You can try again with a different payment method.",
		order.Customer.Name,
		order.ProductName,
	)
	return es.SendEmail(order.Customer.Email, subject, htmlContent)
}

// SendStatusUpdate notifies the customer after an admin status transition.
func (es *EmailService) SendStatusUpdate(order models.Order) error {
	subject := "Order Status Updated - Checkout Store"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order (ID: %s) status has been updated to '<strong>%s</strong>'.<br><br>Thank you for shopping with us!",
		order.Customer.Name,
		order.ID.Hex(),
		order.Status,
	)
	return es.SendEmail(order.Customer.Email, subject, htmlContent)
}
