// Package analysis provides the small scoring helpers layered on top of
// reconstructed deals: hand strength estimation and completeness
// checks.
package analysis

import "bridge-deals-service/internal/domain"

// hcpByRank maps Jack through Ace onto the 4-3-2-1 scale.
var hcpByRank = map[domain.Rank]int{
	domain.Jack:  1,
	domain.Queen: 2,
	domain.King:  3,
	domain.Ace:   4,
}

// HCP counts a hand's high-card points: four for an ace, three for a
// king, two for a queen, one for a jack.
func HCP(hand domain.Hand) int {
	points := 0
	for _, card := range hand {
		points += hcpByRank[card.Rank]
	}
	return points
}

// shortnessPoints values a suit holding by its length: three for a
// void, two for a singleton, one for a doubleton.
var shortnessPoints = [3]int{3, 2, 1}

// HCPWithShortness counts high-card points plus distribution points
// for every short suit.
func HCPWithShortness(hand domain.Hand) int {
	var lengths [domain.NumSuits]int
	for _, card := range hand {
		lengths[card.Suit]++
	}

	points := HCP(hand)
	for _, n := range lengths {
		if n < len(shortnessPoints) {
			points += shortnessPoints[n]
		}
	}
	return points
}

// Incomplete reports whether a record is unusable for analysis: either
// it never parsed, or its play stops short of thirteen tricks with no
// claim to account for the rest. A non-trivial share of the archive's
// records are cut off this way.
func Incomplete(deal *domain.Deal) bool {
	if deal == nil {
		return true
	}
	if deal.Contract.PassedOut {
		return false
	}
	return len(deal.Play) < domain.MaxTricks && !deal.Claimed
}
