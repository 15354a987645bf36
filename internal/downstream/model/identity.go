// Package model holds the wire DTOs the saga engine exchanges with
// downstream microservices. The engine treats most of these fields as
// opaque payload it serializes verbatim; only the few fields the engine
// itself branches on are called out in comments.
package model

import "encoding/json"

// NewIdentity is the credential half of account creation.
type NewIdentity struct {
	Email    string  `json:"email" validate:"required,email" label:"Email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Provider string  `json:"provider" validate:"required"`
	SagaID   string  `json:"saga_id"`
}

// NewUser is the profile half of account creation; optional because a
// bare identity (e.g. a social login with no profile yet) is valid.
type NewUser struct {
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	MiddleName  *string `json:"middle_name,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Birthdate   *string `json:"birthdate,omitempty"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	SagaID      string  `json:"saga_id"`
}

// SagaCreateProfile is the CreateAccount workflow's input body. Device is
// kept as a raw blob: the engine never reads it, only forwards it.
type SagaCreateProfile struct {
	User     *NewUser        `json:"user,omitempty"`
	Identity NewIdentity     `json:"identity" validate:"required"`
	Device   json.RawMessage `json:"device,omitempty"`
}

// User is the identity service's response to account creation.
type User struct {
	ID            int     `json:"id"`
	Email         string  `json:"email"`
	EmailVerified bool    `json:"email_verified"`
	Phone         *string `json:"phone,omitempty"`
	PhoneVerified bool    `json:"phone_verified"`
	IsActive      bool    `json:"is_active"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	Birthdate     *string `json:"birthdate,omitempty"`
	LastLoginAt   string  `json:"last_login_at"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	SagaID        string  `json:"saga_id"`
	IsBlocked     bool    `json:"is_blocked"`
}

// newAccountPayload is the POST /users body: identity plus an optional
// profile, both already carrying the saga id.
type newAccountPayload struct {
	Identity NewIdentity `json:"identity"`
	User     *NewUser    `json:"user,omitempty"`
}

// NewAccountPayload builds the POST /users body for the account-creation
// stage.
func NewAccountPayload(identity NewIdentity, user *NewUser) any {
	return newAccountPayload{Identity: identity, User: user}
}
