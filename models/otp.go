package models

import "time"

// OtpAlphabet is the digit set codes are drawn from. The digits '5' and '6'
// are excluded to avoid transcription mistakes in the delivery channel.
const OtpAlphabet = "01234789"

// DefaultOtpLength is the code length used when none is configured.
// Deployments may shorten it to 4 digits.
const DefaultOtpLength = 6

// OtpRecord is a single one-time passcode issued to a user. A user may hold
// several unredeemed records at once; issuing a new code does not invalidate
// earlier ones. The redeemed flag transitions false→true exactly once.
type OtpRecord struct {
	// ID is the internal unique identifier of the record.
	ID int64 `json:"-"`

	// UserID references the owning user account.
	UserID int64 `json:"-"`

	// Code is the fixed-length passcode string. Never exposed via JSON;
	// it reaches the user only through the email side channel.
	Code string `json:"-"`

	// ExpiresAt bounds the validity window of the code.
	ExpiresAt time.Time `json:"expiresAt"`

	// Redeemed marks whether the code has been consumed.
	Redeemed bool `json:"redeemed"`

	// CreatedAt is the issuance timestamp, used to pick the latest record.
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the code is no longer valid at the given instant.
func (o OtpRecord) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the OtpRecord model.
func (o OtpRecord) TableName() string {
	return "user_otps"
}
