package lin

import (
	"fmt"
	"strings"

	"bridge-deals-service/internal/domain"
)

type bidKind uint8

const (
	bidPass bidKind = iota
	bidDouble
	bidRedouble
	bidSuit
)

type bid struct {
	kind   bidKind
	level  int
	strain domain.Strain
}

// parseBid decodes one auction token: "p" (pass), "d" (double),
// "r" (redouble), or a suit bid of the form <level 1-7><strain>.
func parseBid(token string) (bid, error) {
	switch strings.ToLower(token) {
	case "p", "pass":
		return bid{kind: bidPass}, nil
	case "d", "dbl":
		return bid{kind: bidDouble}, nil
	case "r", "rdbl":
		return bid{kind: bidRedouble}, nil
	}

	if len(token) != 2 {
		return bid{}, &MalformedAuctionError{Reason: fmt.Sprintf("unrecognized bid token %q", token)}
	}
	level := int(token[0] - '0')
	if level < 1 || level > 7 {
		return bid{}, &MalformedAuctionError{Reason: fmt.Sprintf("bid level out of range in %q", token)}
	}
	strain, ok := domain.ParseStrain(upperByte(token[1]))
	if !ok {
		return bid{}, &MalformedAuctionError{Reason: fmt.Sprintf("unknown strain in bid %q", token)}
	}
	return bid{kind: bidSuit, level: level, strain: strain}, nil
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// AnalyzeAuction resolves the final contract and the declarer from the
// chronological bid tokens. The first token is the dealer's call.
//
// The contract-setting bid is found by scanning backward over the
// trailing run of passes, doubles, and redoubles; the doubles in that
// run set the doubling state. The declarer is not necessarily whoever
// made the contract-setting bid: the partnership member who first named
// the contract strain established it, and plays the hand.
func AnalyzeAuction(tokens []string, dealer domain.Seat) (domain.Seat, domain.Contract, error) {
	if len(tokens) == 0 {
		return 0, domain.Contract{}, &MalformedAuctionError{Reason: "empty auction"}
	}

	bids := make([]bid, len(tokens))
	for i, token := range tokens {
		b, err := parseBid(token)
		if err != nil {
			return 0, domain.Contract{}, err
		}
		bids[i] = b
	}

	if isPassOut(bids) {
		return 0, domain.Contract{PassedOut: true}, nil
	}

	// Peel the trailing passes/doubles/redoubles to locate the
	// contract-setting bid.
	doubled := 0
	i := len(bids) - 1
	for i >= 0 && bids[i].kind != bidSuit {
		if bids[i].kind == bidDouble || bids[i].kind == bidRedouble {
			doubled++
		}
		i--
	}
	if i < 0 {
		return 0, domain.Contract{}, &MalformedAuctionError{Reason: "no contract bid in auction"}
	}
	if doubled > 2 {
		return 0, domain.Contract{}, &MalformedAuctionError{Reason: "more than two doubles after the contract bid"}
	}

	contract := domain.Contract{
		Level:   bids[i].level,
		Strain:  bids[i].strain,
		Doubled: doubled,
	}

	// Walk the contract-setting partnership's bids from the earliest;
	// whoever first named the contract strain is the declarer.
	declarerIdx := i
	for j := i % 2; j <= i; j += 2 {
		if bids[j].kind == bidSuit && bids[j].strain == contract.Strain {
			declarerIdx = j
			break
		}
	}

	return seatAt(dealer, declarerIdx), contract, nil
}

// isPassOut reports whether the auction is exactly four passes.
func isPassOut(bids []bid) bool {
	if len(bids) != domain.NumSeats {
		return false
	}
	for _, b := range bids {
		if b.kind != bidPass {
			return false
		}
	}
	return true
}

// seatAt returns the seat that made the i-th call of an auction dealt
// by dealer.
func seatAt(dealer domain.Seat, i int) domain.Seat {
	return domain.Seat((int(dealer) + i) % domain.NumSeats)
}
