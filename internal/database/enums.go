package database

import "strings"

// Enum values are stored UPPER_CASE and travel over the wire lower_case.
// Both the filter builder and the response formatters go through this
// single mapping so the two directions cannot drift apart.

// Delivery statuses as stored.
const (
	StatusPending        = "PENDING"
	StatusProcessing     = "PROCESSING"
	StatusInTransit      = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusDelayed        = "DELAYED"
	StatusFailed         = "FAILED"
	StatusReturned       = "RETURNED"
)

// Delivery priorities as stored.
const (
	PriorityEconomy  = "ECONOMY"
	PriorityStandard = "STANDARD"
	PriorityExpress  = "EXPRESS"
	PriorityPriority = "PRIORITY"
)

// Claim statuses as stored.
const (
	ClaimPending       = "PENDING"
	ClaimInvestigating = "INVESTIGATING"
	ClaimApproved      = "APPROVED"
	ClaimRejected      = "REJECTED"
	ClaimRefunded      = "REFUNDED"
)

// Claim types as stored.
const (
	ClaimTypeDamage = "DAMAGE"
	ClaimTypeLoss   = "LOSS"
	ClaimTypeDelay  = "DELAY"
	ClaimTypeOther  = "OTHER"
)

// Insurance policy statuses as stored.
const (
	InsuranceActive    = "ACTIVE"
	InsuranceExpired   = "EXPIRED"
	InsuranceCancelled = "CANCELLED"
)

// Delivery attempt outcomes as stored.
const (
	AttemptDelivered   = "DELIVERED"
	AttemptFailed      = "FAILED"
	AttemptRescheduled = "RESCHEDULED"
	AttemptNoAnswer    = "NO_ANSWER"
)

// PriorityOrder fixes the display order of priority buckets.
var PriorityOrder = []string{PriorityEconomy, PriorityStandard, PriorityExpress, PriorityPriority}

// StorageToken folds a wire-format enum token to storage case. Unrecognized
// tokens are folded anyway; they simply match no stored rows.
func StorageToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// WireToken folds a stored enum value to wire case.
func WireToken(s string) string {
	return strings.ToLower(s)
}
