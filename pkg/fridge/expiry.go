package fridge

import (
	"math"
	"time"
)

// Status buckets a fridge item by how close it is to its expiry date. The
// string values double as the wire values of the list endpoint's status
// filter.
type Status string

const (
	StatusFresh        Status = "ok"
	StatusExpiringSoon Status = "soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonDays is the classification window: an item expiring within
// this many days is ExpiringSoon.
const ExpiringSoonDays = 3

// DaysUntilExpiry returns the number of calendar days remaining before
// expiresAt, measured from now. Partial days round up, so an item keeps a
// full remaining day until the moment it actually expires.
func DaysUntilExpiry(expiresAt, now time.Time) int {
	return int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
}

// Classify buckets an item into exactly one of the three statuses. It is
// pure: "now" is an explicit parameter so callers re-evaluate on every read
// instead of trusting a stored classification.
func Classify(expiresAt, now time.Time) Status {
	days := DaysUntilExpiry(expiresAt, now)
	switch {
	case days <= 0:
		return StatusExpired
	case days <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}
