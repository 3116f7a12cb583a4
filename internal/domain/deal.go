package domain

import (
	"fmt"
	"strings"
)

// Strain is what a bid names: one of the four suits or no-trump. Suit
// strains share numeric values with Suit.
type Strain uint8

const (
	StrainClubs    = Strain(Clubs)
	StrainDiamonds = Strain(Diamonds)
	StrainHearts   = Strain(Hearts)
	StrainSpades   = Strain(Spades)
	StrainNoTrump  Strain = NumSuits
)

func (s Strain) String() string {
	if s == StrainNoTrump {
		return "N"
	}
	return Suit(s).String()
}

// ParseStrain maps a strain letter (C, D, H, S, N) to its Strain.
func ParseStrain(b byte) (Strain, bool) {
	if b == 'N' {
		return StrainNoTrump, true
	}
	suit, ok := ParseSuit(b)
	return Strain(suit), ok
}

// TrumpSuit returns the trump suit implied by the strain. It reports
// false for no-trump.
func (s Strain) TrumpSuit() (Suit, bool) {
	if s == StrainNoTrump {
		return 0, false
	}
	return Suit(s), true
}

// Contract is the outcome of the auction: either passed out, or a
// level/strain pair with a doubling state (0 undoubled, 1 doubled,
// 2 redoubled).
type Contract struct {
	PassedOut bool   `json:"passedOut,omitempty"`
	Level     int    `json:"level"`
	Strain    Strain `json:"strain"`
	Doubled   int    `json:"doubled"`
}

func (c Contract) String() string {
	if c.PassedOut {
		return "PO"
	}
	return fmt.Sprintf("%d%s%s", c.Level, c.Strain, strings.Repeat("x", c.Doubled))
}

// Vulnerability is the per-deal scoring state.
type Vulnerability uint8

const (
	VulnNone Vulnerability = iota
	VulnNS
	VulnEW
	VulnBoth
)

func (v Vulnerability) String() string {
	switch v {
	case VulnNS:
		return "NS"
	case VulnEW:
		return "EW"
	case VulnBoth:
		return "Both"
	}
	return "None"
}

// ParseVulnerability maps the record's single-character marker: N or S
// mean north-south, E or W east-west, O or 0 none, B both.
func ParseVulnerability(b byte) (Vulnerability, bool) {
	switch b {
	case 'N', 'S':
		return VulnNS, true
	case 'E', 'W':
		return VulnEW, true
	case 'O', '0':
		return VulnNone, true
	case 'B':
		return VulnBoth, true
	}
	return 0, false
}

// Trick records one round of play: who led and which card each seat
// contributed. A truncated final trick (play ended by a claim) has
// Complete false and no winner.
type Trick struct {
	Leader   Seat           `json:"leader"`
	Cards    [NumSeats]Card `json:"cards"`
	Played   [NumSeats]bool `json:"played"`
	Winner   Seat           `json:"winner"`
	Complete bool           `json:"complete"`
}

// Size returns how many cards were played to the trick.
func (t Trick) Size() int {
	n := 0
	for _, p := range t.Played {
		if p {
			n++
		}
	}
	return n
}

// Deal is the fully reconstructed record of one board. It is assembled
// once by the parser and not mutated afterwards.
type Deal struct {
	Players       [NumSeats]string `json:"players"`
	Dealer        Seat             `json:"dealer"`
	Hands         [NumSeats]Hand   `json:"hands"`
	Bids          []string         `json:"bids"`
	Contract      Contract         `json:"contract"`
	Declarer      Seat             `json:"declarer"`
	Vulnerability Vulnerability    `json:"vulnerability"`
	Play          []Trick          `json:"play"`
	TricksMade    int              `json:"tricksMade"`
	Claimed       bool             `json:"claimed"`
}

// MaxTricks is the number of tricks in a complete play.
const MaxTricks = 13

// Dummy returns the declarer's partner. Meaningless on a passed-out
// deal.
func (d *Deal) Dummy() Seat {
	return d.Declarer.Partner()
}
