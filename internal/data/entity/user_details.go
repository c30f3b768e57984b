package entity

import "github.com/google/uuid"

// UserDetails holds the optional contact fields for a user. At most one row
// exists per user (unique index on user_id); it is created lazily on first
// login rather than at signup.
type UserDetails struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	Email   *string   `db:"email"`
	Mobile  *string   `db:"mobile"`
	Pincode *string   `db:"pincode"`
	Address *string   `db:"address"`
}

// UserWithDetails is one row of the users ⟕ user_details listing.
type UserWithDetails struct {
	Email   string  `db:"email"`
	Mobile  *string `db:"mobile"`
	Pincode *string `db:"pincode"`
	Address *string `db:"address"`
}
