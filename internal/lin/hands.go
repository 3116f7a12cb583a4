package lin

import (
	"fmt"
	"strings"

	"bridge-deals-service/internal/domain"
)

// The deal blob carries the dealer digit followed by three dealt-hand
// blobs for South, West, and North. East's hand is never encoded; it is
// recovered as the complement against the full deck.
var dealtSeats = [3]domain.Seat{domain.South, domain.West, domain.North}

const derivedSeat = domain.East

// dealerByDigit maps the deal blob's leading digit to the dealer seat:
// 1=South, 2=West, 3=North, 4=East, mod 4.
var dealerByDigit = [domain.NumSeats]domain.Seat{
	domain.South, domain.West, domain.North, domain.East,
}

// Suit sentinels appear in each dealt-hand blob in this fixed on-wire
// order. The internal suit order (clubs low) is applied when the
// sentinel is mapped through ParseSuit, so the wire order never leaks
// past this boundary.
var blobSuitOrder = [domain.NumSuits]byte{'S', 'H', 'D', 'C'}

// ReconstructHands decodes the deal blob into the dealer seat and all
// four hands. Any duplicate or unrecognized card is a
// CorruptEncodingError: the record cannot be trusted.
func ReconstructHands(dealBlob string) (domain.Seat, [domain.NumSeats]domain.Hand, error) {
	var hands [domain.NumSeats]domain.Hand

	if dealBlob == "" {
		return 0, hands, &CorruptEncodingError{Reason: "empty deal blob"}
	}

	digit := dealBlob[0]
	if digit < '1' || digit > '4' {
		return 0, hands, &CorruptEncodingError{
			Reason: fmt.Sprintf("bad dealer digit %q", digit),
		}
	}
	dealer := dealerByDigit[(digit-'1')%domain.NumSeats]

	blobs := strings.Split(dealBlob[1:], ",")
	if len(blobs) < len(dealtSeats) {
		return 0, hands, &CorruptEncodingError{
			Reason: fmt.Sprintf("want %d dealt hands, got %d", len(dealtSeats), len(blobs)),
		}
	}

	// Remove each dealt card from a full deck. A card that is no longer
	// in the deck was dealt twice; whatever is left is East's hand.
	deck := domain.FullDeck()
	for i, seat := range dealtSeats {
		hand, err := decodeHandBlob(blobs[i])
		if err != nil {
			return 0, hands, err
		}
		for _, card := range hand {
			if !deck.Remove(card) {
				return 0, hands, &CorruptEncodingError{
					Card:   card.String(),
					Reason: "dealt more than once",
				}
			}
		}
		hands[seat] = hand
	}
	hands[derivedSeat] = deck

	return dealer, hands, nil
}

// decodeHandBlob walks one dealt-hand blob, switching suits at each
// sentinel and mapping rank characters through the fixed rank table.
func decodeHandBlob(blob string) (domain.Hand, error) {
	hand := make(domain.Hand, 0, domain.DeckSize/domain.NumSeats)

	next := 0 // next expected sentinel in blobSuitOrder
	var suit domain.Suit
	haveSuit := false

	for i := 0; i < len(blob); i++ {
		ch := blob[i]
		if next < len(blobSuitOrder) && ch == blobSuitOrder[next] {
			suit, _ = domain.ParseSuit(ch)
			haveSuit = true
			next++
			continue
		}

		rank, ok := domain.ParseRank(ch)
		if !ok || !haveSuit {
			return nil, &CorruptEncodingError{
				Reason: fmt.Sprintf("unexpected character %q in hand blob %q", ch, blob),
			}
		}
		hand = hand.Add(domain.Card{Suit: suit, Rank: rank})
	}

	return hand, nil
}
