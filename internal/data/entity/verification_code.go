package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is a one-time code proving control of a phone number.
// Verified flips true on a successful code match; the row is deleted once a
// password reset consumes it.
type VerificationCode struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Verified  bool      `db:"verified"`
}

// Expired reports whether the code is past its expiry at the given instant.
// A code expiring exactly at now is still valid.
func (vc *VerificationCode) Expired(now time.Time) bool {
	return vc.ExpiresAt.Before(now)
}
