package domain

import "github.com/google/uuid"

// AccessMode enumerates what a caller wants to do with a vehicle.
type AccessMode int

const (
	// AccessRead covers viewing the vehicle and its maintenance history.
	AccessRead AccessMode = iota
	// AccessWrite covers adding maintenance records. Shared viewers hold
	// it too: a friend who borrows the car logs the oil change.
	AccessWrite
	// AccessShare and AccessDelete (and update, which rides the same
	// tier) are owner-only.
	AccessShare
	AccessDelete
)

// CanAccess is the authorization gate. It is evaluated after the vehicle
// is known to exist and before any of its data is returned, so a denial
// never leaks more than a generic not-found/forbidden. The vehicle's
// SharedWith association must be loaded.
func CanAccess(v *Vehicle, userID uuid.UUID, mode AccessMode) bool {
	switch mode {
	case AccessRead, AccessWrite:
		return v.OwnerID == userID || v.IsSharedWith(userID)
	case AccessShare, AccessDelete:
		return v.OwnerID == userID
	default:
		return false
	}
}
