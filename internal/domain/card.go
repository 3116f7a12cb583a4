package domain

import "fmt"

// Suit identifies one of the four card suits. The numeric order
// (clubs lowest, spades highest) is the canonical internal order used
// when decoding dealt-hand blobs; it carries no play-time meaning.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

var suitLetters = [NumSuits]byte{'C', 'D', 'H', 'S'}

func (s Suit) String() string {
	if int(s) >= NumSuits {
		return "?"
	}
	return string(suitLetters[s])
}

// ParseSuit maps a suit letter to its Suit. It accepts the upper-case
// letters used by the record encoding.
func ParseSuit(b byte) (Suit, bool) {
	switch b {
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	case 'H':
		return Hearts, true
	case 'S':
		return Spades, true
	}
	return 0, false
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string('0' + byte(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	}
	return "?"
}

// ParseRank maps a rank character ('2'-'9', 'T', 'J', 'Q', 'K', 'A') to
// its Rank.
func ParseRank(b byte) (Rank, bool) {
	switch {
	case b >= '2' && b <= '9':
		return Rank(b - '0'), true
	case b == 'T':
		return Ten, true
	case b == 'J':
		return Jack, true
	case b == 'Q':
		return Queen, true
	case b == 'K':
		return King, true
	case b == 'A':
		return Ace, true
	}
	return 0, false
}

// Card is an immutable playing-card value. Cards compare by (suit, rank)
// equality only; there is no intrinsic total order because bridge suit
// ranking depends on the deal's trump context. Ordering is supplied by
// the caller (see SuitOrder).
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String renders the card in record notation: suit letter then rank
// character, e.g. "SA" for the ace of spades.
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// ParseCard decodes a two-character record token (suit letter + rank
// character) into a Card.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("card token %q: want 2 characters", token)
	}
	suit, ok := ParseSuit(token[0])
	if !ok {
		return Card{}, fmt.Errorf("card token %q: unknown suit %q", token, token[0])
	}
	rank, ok := ParseRank(token[1])
	if !ok {
		return Card{}, fmt.Errorf("card token %q: unknown rank %q", token, token[1])
	}
	return Card{Suit: suit, Rank: rank}, nil
}
