package payment

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-checkout/models"
)

// AltCredentialTTL is the validity window of a generated credential.
const AltCredentialTTL = 30 * time.Minute

// Merchant fields embedded in every payload. The recipient key identifies
// the store account on the receiving side.
const (
	altRecipientKey  = "checkout@store.example"
	altMerchantName  = "CHECKOUT STORE"
	altMerchantCity  = "SAO PAULO"
	qrImageEndpoint  = "https://api.qrserver.com/v1/create-qr-code/"
	qrImageDimension = "260x260"
)

// GenerateAltCredential produces a scannable payment credential with a
// bounded validity window. It always resolves to PENDING: confirmation is
// a later, separate step outside this pipeline.
//
// Customer data is validated with the same rules the commit guard applies;
// a validation failure short-circuits generation.
func GenerateAltCredential(customer models.Customer, amount decimal.Decimal, now time.Time) (PaymentOutcome, *FieldErrors) {
	if errs := ValidateCustomer(customer); errs != nil {
		return PaymentOutcome{}, errs
	}

	txid := strings.ReplaceAll(uuid.NewString(), "-", "")
	payload := buildAltPayload(txid, amount)

	return PaymentOutcome{
		Success:   true,
		Method:    "alt",
		Status:    StatusPending,
		PaymentID: txid,
		Timestamp: now,
		Alt: &AltDetail{
			Payload:   payload,
			ImageURL:  qrImageURL(payload),
			ExpiresAt: now.Add(AltCredentialTTL),
		},
	}, nil
}

// buildAltPayload assembles the fixed structural template: recipient and
// merchant metadata, the transaction id and the amount, closed by a
// CRC-16/CCITT checksum over everything before it.
func buildAltPayload(txid string, amount decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("000201")
	b.WriteString(emv(26, emv(0, "br.gov.bcb.pix")+emv(1, altRecipientKey)+emv(5, txid)))
	b.WriteString("52040000")
	b.WriteString("5303986")
	b.WriteString(emv(54, amount.StringFixed(2)))
	b.WriteString("5802BR")
	b.WriteString(emv(59, altMerchantName))
	b.WriteString(emv(60, altMerchantCity))
	b.WriteString("6304")
	return b.String() + fmt.Sprintf("%04X", crc16(b.String()))
}

// emv renders one id-length-value field of the payload template.
func emv(id int, value string) string {
	return fmt.Sprintf("%02d%02d%s", id, len(value), value)
}

// crc16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the
// checksum the payload template closes with.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// qrImageURL derives the renderable image reference from a payload.
func qrImageURL(payload string) string {
	return fmt.Sprintf("%s?size=%s&data=%s", qrImageEndpoint, qrImageDimension, url.QueryEscape(payload))
}
