package payment

// Status is the pipeline's internal payment status vocabulary.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPending   Status = "PENDING"
	StatusDeclined  Status = "DECLINED"
	StatusFailed    Status = "FAILED"
	StatusAnalysis  Status = "ANALYSIS"
)

// Persisted order labels. Orders store these, never the internal names.
const (
	LabelPaid        = "Paid"
	LabelUnderReview = "Under Review"
	LabelInAnalysis  = "In Analysis"
	LabelDeclined    = "Declined"
	LabelFailed      = "Failed"
)

// Destination identifies the terminal screen the caller should navigate to.
type Destination string

const (
	DestinationSuccess Destination = "success"
	DestinationFailure Destination = "failure"
)

// Route is the navigation decision for a resolved payment. It carries the
// status so the receiving screen can distinguish "paid" from "under review".
type Route struct {
	Destination Destination `json:"destination"`
	Status      Status      `json:"status"`
}

// LabelForStatus maps an internal status to its persisted label.
// The mapping is total: unrecognized statuses fall back to the
// under-review label, the safe state for an order we cannot interpret.
func LabelForStatus(s Status) string {
	switch s {
	case StatusConfirmed:
		return LabelPaid
	case StatusPending:
		return LabelUnderReview
	case StatusAnalysis:
		return LabelInAnalysis
	case StatusDeclined:
		return LabelDeclined
	case StatusFailed:
		return LabelFailed
	default:
		return LabelUnderReview
	}
}

// StatusForLabel maps a persisted label back to the internal status.
// Unknown labels map to StatusPending rather than failing: an order whose
// stored label cannot be read is treated as under review, never as paid
// or declined.
func StatusForLabel(label string) Status {
	switch label {
	case LabelPaid:
		return StatusConfirmed
	case LabelUnderReview:
		return StatusPending
	case LabelInAnalysis:
		return StatusAnalysis
	case LabelDeclined:
		return StatusDeclined
	case LabelFailed:
		return StatusFailed
	default:
		return StatusPending
	}
}

// KnownLabel reports whether label belongs to the persisted vocabulary.
// Admin status transitions accept only known labels.
func KnownLabel(label string) bool {
	switch label {
	case LabelPaid, LabelUnderReview, LabelInAnalysis, LabelDeclined, LabelFailed:
		return true
	}
	return false
}

// RouteOutcome decides the post-payment navigation target. Declined and
// failed payments go to the failure screen; everything else, including
// payments still under review, goes to the acknowledgement screen.
func RouteOutcome(s Status) Route {
	switch s {
	case StatusDeclined, StatusFailed:
		return Route{Destination: DestinationFailure, Status: s}
	default:
		return Route{Destination: DestinationSuccess, Status: s}
	}
}
