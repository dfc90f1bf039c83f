package domain

import "sort"

// Archetype identifies one of the five fixed characters. Seat order in a
// default round follows the declaration order below.
type Archetype int

const (
	Maria Archetype = iota
	Jeanne
	Victoria
	Louise
	Katyusha
)

var archetypeKeys = [NumSeats]string{"maria", "jeanne", "victoria", "louise", "katyusha"}

// Key returns the stable storage/config key for the archetype.
func (a Archetype) Key() string {
	if a < 0 || int(a) >= NumSeats {
		return "unknown"
	}
	return archetypeKeys[a]
}

func (a Archetype) String() string { return a.Key() }

// Profile is an archetype's exact-composition special-victory condition:
// the captured point pile must consist of exactly TargetCount cards of
// TargetRank and nothing else.
type Profile struct {
	TargetRank  int
	TargetCount int
	Trophy      string
}

var profiles = [NumSeats]Profile{
	Maria:    {TargetRank: RankKing, TargetCount: 2, Trophy: "Königin Kaiserin"},
	Jeanne:   {TargetRank: 10, TargetCount: 3, Trophy: "Three Musketeers"},
	Victoria: {TargetRank: RankJack, TargetCount: 4, Trophy: "Union Jack"},
	Louise:   {TargetRank: RankAce, TargetCount: 1, Trophy: "Single-Headed Eagle"},
	Katyusha: {TargetRank: RankQueen, TargetCount: 4, Trophy: "Romanov Empresses"},
}

// Profile returns the archetype's special-victory profile.
func (a Archetype) Profile() Profile {
	if a < 0 || int(a) >= NumSeats {
		return Profile{}
	}
	return profiles[a]
}

// DefaultSeating maps seats to archetypes in the canonical order.
var DefaultSeating = [NumSeats]Archetype{Maria, Jeanne, Victoria, Louise, Katyusha}

// MeetsProfile reports whether a captured point pile satisfies the profile
// exactly: TargetCount cards of TargetRank and no other point card. The
// check is pure and repeatable.
func MeetsProfile(p Profile, pointPile []Card) bool {
	if p.TargetCount == 0 {
		return false
	}
	matched := 0
	for _, c := range pointPile {
		if !c.IsPoint() {
			continue
		}
		if c.Rank != p.TargetRank {
			return false
		}
		matched++
	}
	return matched == p.TargetCount && matched == len(pointPile)
}

// StealCandidate picks the card a losing joker-player takes from the trick
// winner's point pile: one card of the thief's own target rank, lowest suit
// power first. Returns false when the winner holds no such card.
func StealCandidate(needRank int, winnerPoints []Card) (Card, bool) {
	var candidates []Card
	for _, c := range winnerPoints {
		if c.Rank == needRank {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Card{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Suit.Power() < candidates[j].Suit.Power()
	})
	return candidates[0], true
}
