package internal

import (
	"sort"

	"napoleon/internal/domain"
)

const (
	keepAlmighty  = 100.0
	keepWobble    = 80.0
	keepJoker     = 75.0
	keepRightJack = 70.0
	keepLeftJack  = 60.0
	keepTrumpBase = 30.0
	keepPointBase = 15.0
)

// KeepValue scores how much a hand wants to hold on to a card. Higher means
// keep; the discard picker drops the lowest-valued cards first. targetRank
// boosts point cards the archetype collects for its special victory.
func KeepValue(c domain.Card, trump domain.Suit, targetRank int, w Weights) float64 {
	if c.IsJoker() {
		return keepJoker * w.JokerCaution
	}
	switch c {
	case domain.Almighty:
		return keepAlmighty
	case domain.Wobble:
		return keepWobble
	case domain.RightJack(trump):
		return keepRightJack
	case domain.LeftJack(trump):
		return keepLeftJack
	}
	v := float64(c.Rank)
	if c.Suit == trump {
		v += keepTrumpBase
	}
	if c.IsPoint() {
		v += keepPointBase
		if c.Rank == targetRank {
			v += w.TargetRankBonus
		}
	}
	return v
}

// SuitCounts tallies non-joker cards per suit.
func SuitCounts(hand []domain.Card) map[domain.Suit]int {
	counts := make(map[domain.Suit]int, 4)
	for _, c := range hand {
		if !c.IsJoker() {
			counts[c.Suit]++
		}
	}
	return counts
}

// BestBidSuit picks the suit a hand would name as trump: the longest suit,
// higher suit power breaking ties.
func BestBidSuit(hand []domain.Card) domain.Suit {
	counts := SuitCounts(hand)
	best := domain.Clubs
	for _, s := range domain.Suits {
		if counts[s] > counts[best] ||
			(counts[s] == counts[best] && s.Power() > best.Power()) {
			best = s
		}
	}
	return best
}

// EstimateTricks counts the near-certain trick winners a hand holds with the
// given trump: the Almighty, the Wobble, both jacks, jokers and high trump.
func EstimateTricks(hand []domain.Card, trump domain.Suit) int {
	est := 0
	for _, c := range hand {
		switch {
		case c == domain.Almighty, c == domain.Wobble:
			est++
		case c == domain.RightJack(trump), c == domain.LeftJack(trump):
			est++
		case c.IsJoker():
			est++
		case c.Suit == trump && c.Rank >= domain.RankQueen:
			est++
		case c.Rank == domain.RankAce:
			est++
		}
	}
	return est
}

// LongestSuit returns the suit the hand holds most of, higher power breaking
// ties. Falls back to clubs for a joker-only hand.
func LongestSuit(hand []domain.Card) domain.Suit {
	return BestBidSuit(hand)
}

// SortByKeepValue orders a copy of the hand by ascending keep value, so the
// front of the slice is the most expendable card.
func SortByKeepValue(hand []domain.Card, trump domain.Suit, targetRank int, w Weights) []domain.Card {
	out := append([]domain.Card{}, hand...)
	sort.SliceStable(out, func(i, j int) bool {
		return KeepValue(out[i], trump, targetRank, w) < KeepValue(out[j], trump, targetRank, w)
	})
	return out
}
