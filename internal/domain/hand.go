package domain

import "sort"

// Hand is an ordered collection of unique cards.
type Hand []Card

// Has reports whether the hand contains card.
func (h Hand) Has(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}
	return false
}

// Add appends a card and returns the extended hand.
func (h Hand) Add(card Card) Hand {
	return append(h, card)
}

// Remove deletes the first occurrence of card, reporting whether it was
// present.
func (h *Hand) Remove(card Card) bool {
	for i, c := range *h {
		if c == card {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}
	return false
}

// Pop removes and returns the last card. It reports false on an empty
// hand.
func (h *Hand) Pop() (Card, bool) {
	if len(*h) == 0 {
		return Card{}, false
	}
	last := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return last, true
}

// Sort orders the hand by the caller-supplied comparison.
func (h Hand) Sort(less func(a, b Card) bool) {
	sort.Slice(h, func(i, j int) bool { return less(h[i], h[j]) })
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// SuitOrder assigns each suit a display/sort precedence, lowest first.
// Card ordering is contextual in bridge, so callers pick the order that
// suits them rather than Card carrying one.
type SuitOrder [NumSuits]Suit

// DefaultSuitOrder sorts clubs low to spades high, the canonical
// internal order.
var DefaultSuitOrder = SuitOrder{Clubs, Diamonds, Hearts, Spades}

// Less compares two cards by suit precedence, then ascending rank.
func (o SuitOrder) Less(a, b Card) bool {
	ai, bi := o.index(a.Suit), o.index(b.Suit)
	if ai != bi {
		return ai < bi
	}
	return a.Rank < b.Rank
}

func (o SuitOrder) index(s Suit) int {
	for i, suit := range o {
		if suit == s {
			return i
		}
	}
	return len(o)
}

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// FullDeck returns all 52 cards in canonical order.
func FullDeck() Hand {
	deck := make(Hand, 0, DeckSize)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}
