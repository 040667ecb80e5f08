package fixture

import "errors"

// Domain errors for the fixture package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, fixture.ErrAddressRange) {
//	    // handle invalid patch
//	}
var (
	// ErrInvalidUniverse is returned when a universe number is less than 1.
	ErrInvalidUniverse = errors.New("fixture: invalid universe")

	// ErrAddressRange is returned when a fixture's address is outside
	// [1,512] or its channel footprint would extend past channel 512.
	ErrAddressRange = errors.New("fixture: address out of range")

	// ErrOverlap is returned when a fixture's channel range overlaps an
	// existing fixture in the same universe.
	ErrOverlap = errors.New("fixture: channel overlap")

	// ErrSegmentMismatch is returned when attributes of a fixture type
	// declare inconsistent segment counts.
	ErrSegmentMismatch = errors.New("fixture: segment count mismatch")

	// ErrNoAttributes is returned when a fixture type is built without
	// any attributes.
	ErrNoAttributes = errors.New("fixture: no attributes")

	// ErrNoRigBound is returned when a selector operation that needs a rig
	// (membership, emptiness) is evaluated without one.
	ErrNoRigBound = errors.New("fixture: no rig bound")
)
