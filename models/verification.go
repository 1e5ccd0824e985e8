package models

import "time"

// VerificationCode is a short-lived numeric token proving control of the
// registered recovery email. One active code per address: issuing a new
// code replaces the previous one.
type VerificationCode struct {
	// Email is the recovery address the code was issued for (primary key).
	Email string `json:"email"`

	// Code is the 6-digit numeric token, stored as text to preserve
	// leading-zero-free formatting.
	Code string `json:"-"`

	// CreatedAt is the issue time; the code expires a fixed validity window
	// after this moment.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VerificationCode model.
func (v VerificationCode) TableName() string {
	return "verification_codes"
}
