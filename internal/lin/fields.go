package lin

import "strings"

// Record tags. A record is a flat sequence of pipe-delimited tag/value
// pairs: tag|value|tag|value|...
const (
	tagPlayers    = "pn" // four comma-separated names: South, West, North, East
	tagDeal       = "md" // dealer digit + three dealt-hand blobs
	tagBid        = "mb" // one auction token
	tagAnnotation = "an" // free-text comment attached to the preceding bid
	tagPlayCard   = "pc" // one played card
	tagTrickEnd   = "pg" // trick separator / end-of-auction marker
	tagVuln       = "sv" // vulnerability marker
	tagClaim      = "mc" // claimed trick count
)

// alertMarker trails a bid token when the bid was alerted at the table.
const alertMarker = "!"

// WellFormedPrefix is the one-line sniff test for a record file: every
// well-formed record's first line starts with the player-list tag.
// Crawled files that fail it are HTTP error pages, not records.
const WellFormedPrefix = tagPlayers + "|"

// Field names used in MissingFieldError, matching the record grammar.
const (
	FieldPlayers       = "player list"
	FieldDeal          = "deal"
	FieldAuction       = "auction"
	FieldVulnerability = "vulnerability"
)

// Fields is the typed field set extracted from one raw record. Each
// accessor is independent: a record may carry some fields and not
// others, and absence surfaces as a MissingFieldError (or a bool for
// the genuinely optional fields) only when the field is asked for.
type Fields struct {
	players []string
	deal    string
	hasDeal bool
	bids    []string
	hasBids bool
	play    []string
	hasPlay bool
	vuln    string
	claim   string
}

// Extract tokenizes raw record text into its typed field set. It is
// purely functional over the input and never fails: missing fields are
// reported by the Fields accessors.
func Extract(raw string) Fields {
	var f Fields

	parts := strings.Split(raw, "|")
	// The final tag of a well-formed record has a trailing delimiter,
	// so iterate whole pairs only.
	for i := 0; i+1 < len(parts); i += 2 {
		tag := strings.TrimSpace(parts[i])
		value := parts[i+1]

		switch tag {
		case tagPlayers:
			if f.players == nil {
				f.players = strings.Split(value, ",")
			}
		case tagDeal:
			if !f.hasDeal {
				f.deal = value
				f.hasDeal = true
			}
		case tagBid:
			f.bids = append(f.bids, stripAlert(value))
			f.hasBids = true
		case tagAnnotation:
			// Out-of-band commentary on the previous bid; not a bid.
		case tagPlayCard:
			f.play = append(f.play, strings.TrimSpace(value))
			f.hasPlay = true
		case tagVuln:
			if f.vuln == "" {
				f.vuln = strings.TrimSpace(value)
			}
		case tagClaim:
			if f.claim == "" {
				f.claim = strings.TrimSpace(value)
			}
		}
	}

	return f
}

func stripAlert(bid string) string {
	return strings.TrimSuffix(strings.TrimSpace(bid), alertMarker)
}

// Players returns the four player names in seat order South, West,
// North, East as they appear on the wire.
func (f Fields) Players() ([]string, error) {
	if len(f.players) != 4 {
		return nil, &MissingFieldError{Field: FieldPlayers}
	}
	return f.players, nil
}

// Deal returns the raw dealt-hands blob, dealer digit included.
func (f Fields) Deal() (string, error) {
	if !f.hasDeal {
		return "", &MissingFieldError{Field: FieldDeal}
	}
	return f.deal, nil
}

// Bids returns the auction tokens in chronological order, annotation
// and alert markers already stripped.
func (f Fields) Bids() ([]string, error) {
	if !f.hasBids {
		return nil, &MissingFieldError{Field: FieldAuction}
	}
	return f.bids, nil
}

// PlayTokens returns the played card tokens in play order. Absence is
// not an error: truncated records simply have no play to replay.
func (f Fields) PlayTokens() ([]string, bool) {
	return f.play, f.hasPlay
}

// Vulnerability returns the raw vulnerability marker.
func (f Fields) Vulnerability() (string, bool) {
	return f.vuln, f.vuln != ""
}

// ClaimCount returns the raw claimed-trick marker. Present only when
// play ended with a claim.
func (f Fields) ClaimCount() (string, bool) {
	return f.claim, f.claim != ""
}
