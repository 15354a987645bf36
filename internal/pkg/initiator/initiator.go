// Package initiator models the authorization identity attached to every
// downstream call the saga engine makes: either the superadmin or a
// specific user, rendered to the Authorization header downstream
// services expect.
package initiator

import "strconv"

type kind int

const (
	kindSuperadmin kind = iota
	kindUser
)

// Initiator is a closed tagged variant: Superadmin or User(id). The zero
// value is not a valid Initiator; always construct via Superadmin() or
// User().
type Initiator struct {
	kind   kind
	userID int
}

// Superadmin returns the Initiator used for internal/compensation calls.
func Superadmin() Initiator {
	return Initiator{kind: kindSuperadmin}
}

// User returns the Initiator representing a specific authenticated user.
func User(id int) Initiator {
	return Initiator{kind: kindUser, userID: id}
}

// IsSuperadmin reports whether this Initiator is the superadmin variant.
func (i Initiator) IsSuperadmin() bool {
	return i.kind == kindSuperadmin
}

// UserID returns the user id and true if this Initiator is a User, or
// (0, false) if it is Superadmin.
func (i Initiator) UserID() (int, bool) {
	if i.kind == kindUser {
		return i.userID, true
	}
	return 0, false
}

// Header renders the Authorization header value for this Initiator:
// "1" for Superadmin, the decimal user id otherwise.
func (i Initiator) Header() string {
	if i.kind == kindSuperadmin {
		return "1"
	}
	return strconv.Itoa(i.userID)
}

// Parse reconstructs an Initiator from an inbound Authorization header
// value. "1" maps to Superadmin; any other integer maps to that user id.
// A non-numeric value returns ok=false.
func Parse(header string) (Initiator, bool) {
	if header == "" {
		return Initiator{}, false
	}
	if header == "1" {
		return Superadmin(), true
	}
	id, err := strconv.Atoi(header)
	if err != nil {
		return Initiator{}, false
	}
	return User(id), true
}
