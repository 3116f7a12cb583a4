package domain

// Seat is one of the four compass positions at the table. The numeric
// order East, South, West, North is the clockwise rotation order used
// for dealing, bidding, and play.
type Seat uint8

const (
	East Seat = iota
	South
	West
	North
)

// NumSeats is the number of positions at the table.
const NumSeats = 4

var seatLetters = [NumSeats]byte{'E', 'S', 'W', 'N'}

func (s Seat) String() string {
	if int(s) >= NumSeats {
		return "?"
	}
	return string(seatLetters[s])
}

// ParseSeat maps a compass letter to its Seat.
func ParseSeat(b byte) (Seat, bool) {
	switch b {
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	case 'N':
		return North, true
	}
	return 0, false
}

// Next returns the seat to the left, i.e. the next player in rotation.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// SameSide reports whether two seats belong to the same partnership.
func (s Seat) SameSide(other Seat) bool {
	return s == other || s.Partner() == other
}

// Seats returns the rotation starting at from: from, from's left-hand
// opponent, and so on around the table.
func Seats(from Seat) [NumSeats]Seat {
	var order [NumSeats]Seat
	for i := range order {
		order[i] = from
		from = from.Next()
	}
	return order
}
