package lin

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bridge-deals-service/internal/domain"
)

// buildRecord assembles a raw record around the one-suit deal with a
// 2H auction declared by South. The play tokens and terminator are
// caller-controlled so tests can exercise complete, truncated, and
// claimed endings.
func buildRecord(auction []string, play []string, terminator string) string {
	var b strings.Builder
	b.WriteString("pn|souplayer,wesplayer,norplayer,easplayer|st||md|")
	b.WriteString(oneSuitDeal)
	b.WriteString("|sv|o|")
	for _, bid := range auction {
		b.WriteString("mb|")
		b.WriteString(bid)
		b.WriteString("|")
	}
	b.WriteString("pg||")
	for i, token := range play {
		b.WriteString("pc|")
		b.WriteString(token)
		b.WriteString("|")
		if i%domain.NumSeats == domain.NumSeats-1 {
			b.WriteString("pg||")
		}
	}
	b.WriteString(terminator)
	return b.String()
}

var heartsAuction = []string{"1H", "p", "2H", "p", "p", "p"}

func TestParseFullRecord(t *testing.T) {
	raw := buildRecord(heartsAuction, oneSuitPlayTokens(13), "pg||")

	deal, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if deal.Players[domain.South] != "souplayer" ||
		deal.Players[domain.West] != "wesplayer" ||
		deal.Players[domain.North] != "norplayer" ||
		deal.Players[domain.East] != "easplayer" {
		t.Fatalf("players = %v", deal.Players)
	}
	if deal.Dealer != domain.South {
		t.Fatalf("dealer = %v, want South", deal.Dealer)
	}
	for seat, hand := range deal.Hands {
		if len(hand) != 13 {
			t.Fatalf("seat %d holds %d cards", seat, len(hand))
		}
	}
	if got := deal.Contract.String(); got != "2H" {
		t.Fatalf("contract = %q, want 2H", got)
	}
	if deal.Declarer != domain.South {
		t.Fatalf("declarer = %v, want South", deal.Declarer)
	}
	if deal.Vulnerability != domain.VulnNone {
		t.Fatalf("vulnerability = %v, want None", deal.Vulnerability)
	}
	if len(deal.Play) != domain.MaxTricks {
		t.Fatalf("play has %d tricks, want %d", len(deal.Play), domain.MaxTricks)
	}
	if deal.TricksMade != 0 {
		t.Fatalf("tricksMade = %d, want 0", deal.TricksMade)
	}
	if deal.Claimed {
		t.Fatal("claimed should be false")
	}
}

func TestParseIsIdempotent(t *testing.T) {
	raw := buildRecord(heartsAuction, oneSuitPlayTokens(13), "pg||")

	first, err := Parse(raw)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := Parse(raw)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("parses differ (-first +second):\n%s", diff)
	}
}

func TestParseClaimedRecord(t *testing.T) {
	play := append(oneSuitPlayTokens(10), "HJ", "DJ")
	raw := buildRecord(heartsAuction, play, "mc|3|")

	deal, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !deal.Claimed {
		t.Fatal("expected claimed deal")
	}
	if deal.TricksMade != 3 {
		t.Fatalf("tricksMade = %d, want the claimed 3", deal.TricksMade)
	}
	if len(deal.Play) != 11 {
		t.Fatalf("play has %d tricks, want 11", len(deal.Play))
	}
	if deal.Play[10].Complete {
		t.Fatal("final trick should be truncated")
	}
}

func TestParsePassedOutRecord(t *testing.T) {
	raw := buildRecord([]string{"p", "p", "p", "p"}, nil, "pg||")

	deal, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !deal.Contract.PassedOut {
		t.Fatal("expected passed-out contract")
	}
	if len(deal.Play) != 0 || deal.TricksMade != 0 || deal.Claimed {
		t.Fatalf("passed-out deal should have no play, got %+v", deal)
	}
}

func TestParseRecordWithoutPlay(t *testing.T) {
	raw := buildRecord(heartsAuction, nil, "")

	deal, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(deal.Play) != 0 {
		t.Fatalf("expected no tricks, got %d", len(deal.Play))
	}
	if deal.Claimed {
		t.Fatal("claimed should be false without a claim marker")
	}
}

func TestParseMissingMandatoryFields(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"no players", "md|" + oneSuitDeal + "|mb|1H|mb|p|mb|p|mb|p|", FieldPlayers},
		{"no deal", "pn|a,b,c,d|mb|1H|mb|p|mb|p|mb|p|", FieldDeal},
		{"no auction", "pn|a,b,c,d|md|" + oneSuitDeal + "|", FieldAuction},
	}
	for _, tc := range cases {
		deal, err := Parse(tc.raw)
		if deal != nil {
			t.Fatalf("%s: expected no partial aggregate", tc.name)
		}
		mf, ok := AsMissingFieldError(err)
		if !ok {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if mf.Field != tc.field {
			t.Fatalf("%s: field = %q, want %q", tc.name, mf.Field, tc.field)
		}
	}
}

func TestParseVulnerabilityMarkers(t *testing.T) {
	cases := map[string]domain.Vulnerability{
		"o": domain.VulnNone,
		"n": domain.VulnNS,
		"e": domain.VulnEW,
		"b": domain.VulnBoth,
	}
	for marker, want := range cases {
		raw := strings.Replace(
			buildRecord(heartsAuction, nil, ""), "|sv|o|", "|sv|"+marker+"|", 1)
		deal, err := Parse(raw)
		if err != nil {
			t.Fatalf("marker %q: %v", marker, err)
		}
		if deal.Vulnerability != want {
			t.Fatalf("marker %q: vulnerability = %v, want %v", marker, deal.Vulnerability, want)
		}
	}
}

func TestParsePropagatesRecordErrors(t *testing.T) {
	corrupt := "pn|a,b,c,d|md|1S2,S2,S3|mb|1H|mb|p|mb|p|mb|p|"
	if _, err := Parse(corrupt); err == nil || ClassifyError(err) != KindCorruptEncoding {
		t.Fatalf("expected corrupt encoding, got %v", err)
	}

	badPlay := buildRecord(heartsAuction, []string{"XX"}, "")
	if _, err := Parse(badPlay); err == nil || ClassifyError(err) != KindMalformedPlay {
		t.Fatalf("expected malformed play, got %v", err)
	}

	badAuction := buildRecord([]string{"p", "p", "p"}, nil, "")
	if _, err := Parse(badAuction); err == nil || ClassifyError(err) != KindMalformedAuction {
		t.Fatalf("expected malformed auction, got %v", err)
	}
}
