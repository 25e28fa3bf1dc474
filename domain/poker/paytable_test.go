package poker

import "testing"

func TestPayout(t *testing.T) {
	tests := []struct {
		category Category
		bet      uint
		want     uint
	}{
		{RoyalFlush, 5, 4000},
		{StraightFlush, 3, 150},
		{FourOfAKind, 2, 50},
		{FullHouse, 4, 36},
		{Flush, 1, 6},
		{Straight, 2, 8},
		{ThreeOfAKind, 5, 15},
		{TwoPair, 3, 6},
		{JacksOrBetter, 1, 1},
		{Nothing, 5, 0},
	}
	for _, tt := range tests {
		if got := Payout(tt.category, tt.bet); got != tt.want {
			t.Errorf("Payout(%s, %d) = %d, want %d", tt.category, tt.bet, got, tt.want)
		}
	}
}

func TestPayoutIsLinearInBet(t *testing.T) {
	for _, c := range Categories() {
		for bet := uint(1); bet <= 50; bet++ {
			if Payout(c, 2*bet) != 2*Payout(c, bet) {
				t.Fatalf("Payout(%s, %d) is not twice Payout(%s, %d)", c, 2*bet, c, bet)
			}
		}
	}
}

func TestPayTableRows(t *testing.T) {
	rows := PayTableRows()
	if len(rows) != 9 {
		t.Fatalf("expected 9 paying rows, got %d", len(rows))
	}
	if rows[0].Category != RoyalFlush || rows[0].PerUnit != 800 {
		t.Errorf("expected Royal Flush first, got %+v", rows[0])
	}
	if rows[len(rows)-1].Category != JacksOrBetter {
		t.Errorf("expected Jacks or Better last, got %s", rows[len(rows)-1].Category)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].PerUnit > rows[i-1].PerUnit {
			t.Errorf("%s pays more than %s", rows[i].Category, rows[i-1].Category)
		}
	}
}
