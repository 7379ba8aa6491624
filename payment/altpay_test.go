package payment

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-checkout/models"
)

func TestGenerateAltCredential(t *testing.T) {
	now := testNow()
	amount := decimal.NewFromFloat(99.90)

	out, errs := GenerateAltCredential(testCustomer(), amount, now)
	require.Nil(t, errs)

	assert.True(t, out.Success)
	assert.Equal(t, "alt", out.Method)
	assert.Equal(t, StatusPending, out.Status)
	assert.NotEmpty(t, out.PaymentID)
	assert.Equal(t, now, out.Timestamp)

	require.NotNil(t, out.Alt)
	assert.Equal(t, now.Add(AltCredentialTTL), out.Alt.ExpiresAt)
	assert.True(t, out.Alt.ExpiresAt.After(now))
}

func TestGenerateAltCredential_PayloadTemplate(t *testing.T) {
	out, errs := GenerateAltCredential(testCustomer(), decimal.NewFromFloat(10), testNow())
	require.Nil(t, errs)

	payload := out.Alt.Payload
	assert.True(t, strings.HasPrefix(payload, "000201"), payload)
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, altRecipientKey)
	assert.Contains(t, payload, altMerchantName)
	assert.Contains(t, payload, "10.00") // amount placeholder filled
	assert.Contains(t, payload, out.PaymentID)

	// Payload closes with its checksum.
	require.Greater(t, len(payload), 8)
	body := payload[:len(payload)-4]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, fmt.Sprintf("%04X", crc16(body)), payload[len(payload)-4:])
}

func TestGenerateAltCredential_ImageDerivedFromPayload(t *testing.T) {
	out, errs := GenerateAltCredential(testCustomer(), decimal.NewFromFloat(10), testNow())
	require.Nil(t, errs)

	assert.True(t, strings.HasPrefix(out.Alt.ImageURL, qrImageEndpoint))
	assert.Contains(t, out.Alt.ImageURL, url.QueryEscape(out.Alt.Payload))
}

func TestGenerateAltCredential_UniquePerAttempt(t *testing.T) {
	a, errs := GenerateAltCredential(testCustomer(), decimal.NewFromFloat(10), testNow())
	require.Nil(t, errs)
	b, errs := GenerateAltCredential(testCustomer(), decimal.NewFromFloat(10), testNow())
	require.Nil(t, errs)

	assert.NotEqual(t, a.PaymentID, b.PaymentID)
	assert.NotEqual(t, a.Alt.Payload, b.Alt.Payload)
}

func TestGenerateAltCredential_InvalidCustomerShortCircuits(t *testing.T) {
	customer := testCustomer()
	customer.Name = ""
	customer.Phone = "123"

	out, errs := GenerateAltCredential(customer, decimal.NewFromFloat(10), testNow())
	require.NotNil(t, errs)
	assert.Equal(t, "name", errs.FirstField())
	assert.NotEmpty(t, errs.Field("phone"))
	assert.Empty(t, out.PaymentID)
	assert.Nil(t, out.Alt)
}

func TestValidateCustomer(t *testing.T) {
	assert.Nil(t, ValidateCustomer(testCustomer()))

	customer := testCustomer()
	customer.TaxID = "123.456.789-01" // separators stripped before length check
	assert.Nil(t, ValidateCustomer(customer))
}

func validAddress() *models.Address {
	return &models.Address{
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "Sao Paulo",
		State:        "SP",
		PostalCode:   "01310-100",
	}
}

func TestValidateCustomer_AddressRequiredFieldsWhenPresent(t *testing.T) {
	customer := testCustomer()
	customer.Address = validAddress()
	assert.Nil(t, ValidateCustomer(customer))

	customer.Address.Street = ""
	customer.Address.PostalCode = "123"
	errs := ValidateCustomer(customer)
	require.NotNil(t, errs)
	assert.Equal(t, "address.street", errs.FirstField())
	assert.NotEmpty(t, errs.Field("address.postal_code"))
}
