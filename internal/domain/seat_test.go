package domain

import "testing"

func TestSeatRotation(t *testing.T) {
	cases := []struct {
		seat Seat
		next Seat
	}{
		{East, South},
		{South, West},
		{West, North},
		{North, East},
	}
	for _, tc := range cases {
		if got := tc.seat.Next(); got != tc.next {
			t.Fatalf("%v.Next() = %v, want %v", tc.seat, got, tc.next)
		}
	}
}

func TestSeatPartner(t *testing.T) {
	if North.Partner() != South || South.Partner() != North {
		t.Fatal("north and south should be partners")
	}
	if East.Partner() != West || West.Partner() != East {
		t.Fatal("east and west should be partners")
	}
}

func TestSeatSameSide(t *testing.T) {
	if !North.SameSide(South) || !North.SameSide(North) {
		t.Fatal("expected north-south to share a side")
	}
	if North.SameSide(East) {
		t.Fatal("north and east are opponents")
	}
}

func TestSeatsStartsAtGivenSeat(t *testing.T) {
	got := Seats(West)
	want := [NumSeats]Seat{West, North, East, South}
	if got != want {
		t.Fatalf("Seats(West) = %v, want %v", got, want)
	}
}
