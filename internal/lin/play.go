package lin

import (
	"fmt"
	"strconv"

	"bridge-deals-service/internal/domain"
)

// PlayResult is the outcome of replaying the play blob. Completed is
// true only when all thirteen tricks were replayed in full; a replay
// cut short by a claim leaves it false.
type PlayResult struct {
	Tricks     []domain.Trick
	TricksMade int
	Claimed    bool
	Completed  bool
}

// replay terminal states. A replay either runs through all thirteen
// tricks or stops early on a truncated trick left behind by a claim.
type replayState uint8

const (
	replayRunning replayState = iota
	replayCompleted
	replayTruncated
)

// ReplayPlay replays the card tokens trick by trick, starting with the
// declarer's left-hand opponent on lead. Each completed trick's winner
// leads the next, and tricks won by the declaring side are tallied.
//
// A claim marker, when present, is authoritative: the asserted count
// replaces the replayed tally and the result is flagged claimed.
func ReplayPlay(tokens []string, declarer domain.Seat, strain domain.Strain, claim string, hasClaim bool) (PlayResult, error) {
	var result PlayResult

	trump, hasTrump := strain.TrumpSuit()
	leader := declarer.Next()

	state := replayRunning
	for pos := 0; pos < len(tokens); {
		if len(result.Tricks) == domain.MaxTricks {
			return PlayResult{}, &MalformedPlayError{
				Reason: fmt.Sprintf("more than %d tricks in play", domain.MaxTricks),
			}
		}

		trick := domain.Trick{Leader: leader}
		seat := leader
		n := 0
		for ; n < domain.NumSeats && pos < len(tokens); n++ {
			card, err := domain.ParseCard(tokens[pos])
			if err != nil {
				return PlayResult{}, &MalformedPlayError{Reason: err.Error()}
			}
			trick.Cards[seat] = card
			trick.Played[seat] = true
			seat = seat.Next()
			pos++
		}

		if n < domain.NumSeats {
			// The encoding ran out mid-trick: an early claim cut the
			// play short. Record what was played, but no winner.
			result.Tricks = append(result.Tricks, trick)
			state = replayTruncated
			break
		}

		trick.Winner = trickWinner(&trick, trump, hasTrump)
		trick.Complete = true
		leader = trick.Winner
		if trick.Winner.SameSide(declarer) {
			result.TricksMade++
		}
		result.Tricks = append(result.Tricks, trick)
	}
	if state == replayRunning && len(result.Tricks) == domain.MaxTricks {
		state = replayCompleted
	}
	result.Completed = state == replayCompleted

	if hasClaim {
		count, err := strconv.Atoi(claim)
		if err != nil || count < 0 || count > domain.MaxTricks {
			return PlayResult{}, &MalformedPlayError{
				Reason: fmt.Sprintf("bad claim marker %q", claim),
			}
		}
		result.TricksMade = count
		result.Claimed = true
	}

	return result, nil
}

// trickWinner applies the follow-suit and trump rules: within a suit
// the higher rank wins, and any trump beats any non-trump.
func trickWinner(trick *domain.Trick, trump domain.Suit, hasTrump bool) domain.Seat {
	winner := trick.Leader
	best := trick.Cards[winner]

	seat := trick.Leader
	for i := 0; i < domain.NumSeats-1; i++ {
		seat = seat.Next()
		card := trick.Cards[seat]
		switch {
		case card.Suit == best.Suit && card.Rank > best.Rank:
			winner, best = seat, card
		case hasTrump && card.Suit == trump && best.Suit != trump:
			winner, best = seat, card
		}
	}
	return winner
}
