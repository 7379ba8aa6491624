package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-checkout/models"
)

func autoConfig() PaymentConfig {
	return NormalizeConfig(models.PaymentSettings{}, false)
}

func manualConfig(status string) PaymentConfig {
	manual := true
	return NormalizeConfig(models.PaymentSettings{
		Card: &models.CardSettings{
			ManualProcessing: &manual,
			ManualStatus:     status,
		},
	}, false)
}

func mustCard(t *testing.T, number string) ValidCard {
	t.Helper()
	raw := validInstrument()
	raw.Number = number
	card, errs := ValidateCard(raw, testNow())
	require.Nil(t, errs)
	return card
}

func TestResolve_AutomaticApprovesByDefault(t *testing.T) {
	out := ResolveCardPayment(mustCard(t, "4111111111111111"), autoConfig(), nil)

	assert.True(t, out.Success)
	assert.Equal(t, StatusConfirmed, out.Status)
	assert.Equal(t, "card", out.Method)
	assert.NotEmpty(t, out.PaymentID)
	assert.False(t, out.Timestamp.IsZero())

	require.NotNil(t, out.Card)
	assert.Equal(t, "**** **** **** 1111", out.Card.MaskedNumber)
	assert.Equal(t, "visa", out.Card.Brand)
	assert.Equal(t, "12/28", out.Card.Expiry)
}

func TestResolve_AutomaticTestNumberDeclines(t *testing.T) {
	out := ResolveCardPayment(mustCard(t, "4000000000000002"), autoConfig(), nil)

	assert.False(t, out.Success)
	assert.Equal(t, StatusDeclined, out.Status)
}

func TestResolve_LiveIgnoresTestNumbers(t *testing.T) {
	cfg := autoConfig()
	cfg.Live = true
	out := ResolveCardPayment(mustCard(t, "4000000000000002"), cfg, nil)

	assert.Equal(t, StatusConfirmed, out.Status)
}

func TestResolve_ManualFixedOutcomes(t *testing.T) {
	tests := []struct {
		manual  string
		status  Status
		success bool
	}{
		{ManualApproved, StatusConfirmed, true},
		{ManualDenied, StatusDeclined, false},
		{ManualAnalysis, StatusPending, true},
	}
	for _, tc := range tests {
		out := ResolveCardPayment(mustCard(t, "4111111111111111"), manualConfig(tc.manual), nil)
		assert.Equal(t, tc.status, out.Status, "manual %s", tc.manual)
		assert.Equal(t, tc.success, out.Success, "manual %s", tc.manual)
	}
}

func TestResolve_ManualDeniedIndependentOfInstrument(t *testing.T) {
	cfg := manualConfig(ManualDenied)
	for _, number := range []string{"4111111111111111", "5555555555554444", "378282246310005"} {
		out := ResolveCardPayment(mustCard(t, number), cfg, nil)
		assert.Equal(t, StatusDeclined, out.Status, "number %s", number)
		assert.Equal(t, DestinationFailure, RouteOutcome(out.Status).Destination)
	}
}

func TestResolve_ManualDefaultsToAnalysis(t *testing.T) {
	out := ResolveCardPayment(mustCard(t, "4111111111111111"), manualConfig(""), nil)

	assert.Equal(t, StatusPending, out.Status)
	route := RouteOutcome(out.Status)
	assert.Equal(t, DestinationSuccess, route.Destination)
	assert.Equal(t, StatusPending, route.Status)
}

func TestResolve_OverridePrecedence(t *testing.T) {
	override := &models.PaymentOverride{
		CustomProcessing: true,
		CustomStatus:     ManualApproved,
	}

	cfg := manualConfig(ManualDenied)
	cfg.OverridePolicy = OverrideWins
	out := ResolveCardPayment(mustCard(t, "4111111111111111"), cfg, override)
	assert.Equal(t, StatusConfirmed, out.Status)

	cfg.OverridePolicy = GlobalWins
	out = ResolveCardPayment(mustCard(t, "4111111111111111"), cfg, override)
	assert.Equal(t, StatusDeclined, out.Status)
}

func TestResolve_OverrideWithoutCustomProcessingIgnored(t *testing.T) {
	override := &models.PaymentOverride{
		CustomProcessing: false,
		CustomStatus:     ManualApproved,
	}
	out := ResolveCardPayment(mustCard(t, "4111111111111111"), manualConfig(ManualDenied), override)

	assert.Equal(t, StatusDeclined, out.Status)
}

func TestResolve_OverrideIgnoredInAutomaticMode(t *testing.T) {
	override := &models.PaymentOverride{
		CustomProcessing: true,
		CustomStatus:     ManualDenied,
	}
	out := ResolveCardPayment(mustCard(t, "4111111111111111"), autoConfig(), override)

	assert.Equal(t, StatusConfirmed, out.Status)
}

// End-to-end scenario: validated visa card, automatic mode, non-live.
func TestResolve_EndToEndAutomaticConfirmed(t *testing.T) {
	raw := validInstrument() // Jane Doe, 4111...
	card, errs := ValidateCard(raw, testNow())
	require.Nil(t, errs)

	out := ResolveCardPayment(card, autoConfig(), nil)
	require.Equal(t, StatusConfirmed, out.Status)

	route := RouteOutcome(out.Status)
	assert.Equal(t, DestinationSuccess, route.Destination)
	assert.Equal(t, StatusConfirmed, route.Status)
}
