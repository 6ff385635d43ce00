package models

import (
	"strings"
	"time"
)

// PlateAssignment binds a normalized license plate number to exactly one
// owner. Both the plate number and the owning user are unique across active
// assignments; the database constraints are the authoritative guard.
type PlateAssignment struct {
	// ID is the internal unique identifier of the assignment.
	ID int64 `json:"id"`

	// UserID references the owning user account.
	UserID int64 `json:"userId"`

	// PlateNumber is the normalized (trimmed, upper-cased) plate string.
	PlateNumber string `json:"plateNumber"`

	// CreatedAt is the timestamp the plate was claimed.
	CreatedAt time.Time `json:"createdAt"`
}

// PlateOwner is the admin listing row: an assignment joined with the
// public fields of its owner.
type PlateOwner struct {
	PlateAssignment
	OwnerName     string `json:"ownerName"`
	OwnerEmail    string `json:"ownerEmail"`
	OwnerVerified bool   `json:"ownerVerified"`
}

// NormalizePlate canonicalizes a plate string for comparison and storage:
// surrounding whitespace is stripped and letters are upper-cased.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// TableName returns the name of the database table
// associated with the PlateAssignment model.
func (p PlateAssignment) TableName() string {
	return "license_plates"
}
