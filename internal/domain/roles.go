package domain

// RoleAssignment tracks the Emperor, the secret ally designation, and the
// one-way reveal. AllySeat is known to the engine the moment the designated
// card is played; whether other seats get to see it before AllyRevealed is a
// presentation concern.
type RoleAssignment struct {
	EmperorSeat  int
	AllySpec     AllySpec
	AllySeat     int // -1 until the designated card is played
	AllyRevealed bool

	designated bool
}

// NewRoleAssignment fixes the Emperor seat after the auction.
func NewRoleAssignment(emperorSeat int) RoleAssignment {
	return RoleAssignment{EmperorSeat: emperorSeat, AllySeat: -1}
}

// Designate records the ally spec. It may name any card of the deck,
// including one the Emperor holds, and is immutable once set.
func (ra *RoleAssignment) Designate(spec AllySpec) error {
	if ra.designated {
		return ErrAllyFixed
	}
	if !spec.Valid() {
		return ErrAllySpec
	}
	ra.AllySpec = spec
	ra.designated = true
	return nil
}

// Designated reports whether the ally spec has been fixed.
func (ra *RoleAssignment) Designated() bool { return ra.designated }

// NotePlay checks a single play against the ally spec. The first matching
// play fixes the ally seat and trips the irreversible reveal; the return
// value is true only for that play.
func (ra *RoleAssignment) NotePlay(seat int, card Card) bool {
	if !ra.designated || ra.AllyRevealed {
		return false
	}
	if !ra.AllySpec.Matches(card) {
		return false
	}
	ra.AllySeat = seat
	ra.AllyRevealed = true
	return true
}
