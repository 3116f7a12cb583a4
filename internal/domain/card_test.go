package domain

import "testing"

func TestParseCard(t *testing.T) {
	cases := []struct {
		token string
		want  Card
	}{
		{"C2", Card{Clubs, Two}},
		{"DT", Card{Diamonds, Ten}},
		{"HJ", Card{Hearts, Jack}},
		{"SA", Card{Spades, Ace}},
		{"SQ", Card{Spades, Queen}},
		{"HK", Card{Hearts, King}},
	}
	for _, tc := range cases {
		got, err := ParseCard(tc.token)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCard(%q) = %v, want %v", tc.token, got, tc.want)
		}
		if got.String() != tc.token {
			t.Fatalf("String() = %q, want %q", got.String(), tc.token)
		}
	}
}

func TestParseCardRejectsBadTokens(t *testing.T) {
	for _, token := range []string{"", "S", "X2", "S1", "SAA", "s2"} {
		if _, err := ParseCard(token); err == nil {
			t.Fatalf("ParseCard(%q): expected error", token)
		}
	}
}

func TestCardEqualityBySuitAndRank(t *testing.T) {
	a := Card{Hearts, Queen}
	b := Card{Hearts, Queen}
	c := Card{Spades, Queen}
	if a != b {
		t.Fatal("identical cards should be equal")
	}
	if a == c {
		t.Fatal("cards of different suits should differ")
	}
}
