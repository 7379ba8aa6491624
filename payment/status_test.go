package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabelRoundTrip(t *testing.T) {
	statuses := []Status{StatusConfirmed, StatusPending, StatusDeclined, StatusFailed, StatusAnalysis}
	for _, s := range statuses {
		label := LabelForStatus(s)
		assert.True(t, KnownLabel(label), "label for %s", s)
		assert.Equal(t, s, StatusForLabel(label), "round trip %s", s)
	}
}

func TestStatusForLabel_UnknownIsSafeDefault(t *testing.T) {
	assert.Equal(t, StatusPending, StatusForLabel("Shipped"))
	assert.Equal(t, StatusPending, StatusForLabel(""))
	assert.Equal(t, StatusPending, StatusForLabel("paid")) // labels are case-sensitive
}

func TestLabelForStatus_UnknownNeverPaid(t *testing.T) {
	assert.Equal(t, LabelUnderReview, LabelForStatus(Status("BOGUS")))
}

func TestKnownLabel(t *testing.T) {
	for _, label := range []string{LabelPaid, LabelUnderReview, LabelInAnalysis, LabelDeclined, LabelFailed} {
		assert.True(t, KnownLabel(label), label)
	}
	assert.False(t, KnownLabel("Shipped"))
	assert.False(t, KnownLabel(""))
}

func TestRouteOutcome(t *testing.T) {
	tests := []struct {
		status      Status
		destination Destination
	}{
		{StatusConfirmed, DestinationSuccess},
		{StatusPending, DestinationSuccess},
		{StatusAnalysis, DestinationSuccess},
		{StatusDeclined, DestinationFailure},
		{StatusFailed, DestinationFailure},
	}
	for _, tc := range tests {
		route := RouteOutcome(tc.status)
		assert.Equal(t, tc.destination, route.Destination, "status %s", tc.status)
		// The destination carries the status so the screen can tell
		// "paid" from "under review".
		assert.Equal(t, tc.status, route.Status)
	}
}
