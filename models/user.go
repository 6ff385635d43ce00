package models

import "time"

// Roles assignable to a user account. The role is embedded into issued
// session tokens and checked by the authorization middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// DisplayName is the human-readable name of the user.
	// It is non-sensitive and may be shown in UI.
	DisplayName string `json:"displayName"`

	// Email is the unique address the account is registered under.
	// Uniqueness is enforced by a database constraint; the stored value is
	// compared case-sensitively.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and never logged.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account ("user" or "admin").
	Role string `json:"role"`

	// Language is the preferred locale of the user (e.g. "en").
	Language string `json:"language,omitempty"`

	// CountryIso is the ISO 3166-1 alpha-2 country code (e.g. "US").
	CountryIso string `json:"countryIso,omitempty"`

	// CountryName is the display name of the user's country.
	CountryName string `json:"countryName,omitempty"`

	// IsVerified reports whether the account has redeemed at least one OTP.
	// Derived from the OTP ledger, not stored on the user row.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// ModifiedAt is the timestamp of the last profile mutation.
	ModifiedAt time.Time `json:"modifiedAt"`
}

// UserUpdate carries a partial profile mutation. Nil fields are left
// untouched by the update; only non-nil fields enter the SET clause.
type UserUpdate struct {
	DisplayName *string `json:"displayName"`
	Language    *string `json:"language"`
	CountryIso  *string `json:"countryIso"`
	CountryName *string `json:"countryName"`
}

// Empty reports whether the update carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.DisplayName == nil && u.Language == nil && u.CountryIso == nil && u.CountryName == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
