package user

import (
	"time"

	gallery "github.com/aguasmedia/gallery"
)

// A Status marks whether a User may use the system at all.
type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() error {
	switch s {
	case StatusActive, StatusRevoked:
		return nil
	default:
		return gallery.ErrNotValid
	}
}

// A User is an identity authorized to use the gallery.
//
// Rows are the source of truth for "is this identity allowed in": login
// refuses to issue a session credential for an email with no row here.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name   string `json:"name" validate:"required"`
	Email  string `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	Role   string `json:"role"`
	Status Status `json:"status" validate:"enum"`
}

// HasAccess asserts whether the User's status gives it general access to
// the gallery.
func (u User) HasAccess() bool { return u.Status == StatusActive }

// GetID implements logger.LogUser.
func (u User) GetID() uint { return u.ID }

// GetEmail implements logger.LogUser.
func (u User) GetEmail() string { return u.Email }
