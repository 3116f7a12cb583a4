// Package lin reconstructs complete bridge deal records from the lossy
// pipe-delimited linfile encoding. The encoding omits whatever the
// rules of the game can re-derive (the fourth hand, the declarer, the
// trick winners, the tricks made), so parsing a record is equal parts
// extraction and reconstruction.
package lin

import "bridge-deals-service/internal/domain"

// The player-list field names the seats in wire order South, West,
// North, East.
var playerWireSeats = [domain.NumSeats]domain.Seat{
	domain.South, domain.West, domain.North, domain.East,
}

// Parse reconstructs the Deal encoded in one raw record.
//
// Players, hands, and a resolvable auction are mandatory; without them
// no partial aggregate is exposed, only the typed error, so batch
// callers can skip the record and continue. Everything the encoding
// omits (East's hand, declarer, trick winners, tricks made) is
// recomputed from domain rules. Parsing is pure: the same input always
// yields a structurally equal Deal.
func Parse(raw string) (*domain.Deal, error) {
	fields := Extract(raw)

	names, err := fields.Players()
	if err != nil {
		return nil, err
	}

	dealBlob, err := fields.Deal()
	if err != nil {
		return nil, err
	}
	dealer, hands, err := ReconstructHands(dealBlob)
	if err != nil {
		return nil, err
	}

	bids, err := fields.Bids()
	if err != nil {
		return nil, err
	}
	declarer, contract, err := AnalyzeAuction(bids, dealer)
	if err != nil {
		return nil, err
	}

	deal := &domain.Deal{
		Dealer:   dealer,
		Hands:    hands,
		Bids:     bids,
		Contract: contract,
		Declarer: declarer,
	}
	for i, seat := range playerWireSeats {
		deal.Players[seat] = names[i]
	}

	if marker, ok := fields.Vulnerability(); ok {
		if vuln, ok := domain.ParseVulnerability(upperByte(marker[0])); ok {
			deal.Vulnerability = vuln
		}
	}

	// A passed-out board has no declarer and nothing to replay.
	if contract.PassedOut {
		return deal, nil
	}

	tokens, _ := fields.PlayTokens()
	claim, hasClaim := fields.ClaimCount()
	result, err := ReplayPlay(tokens, declarer, contract.Strain, claim, hasClaim)
	if err != nil {
		return nil, err
	}
	deal.Play = result.Tricks
	deal.TricksMade = result.TricksMade
	deal.Claimed = result.Claimed

	return deal, nil
}
