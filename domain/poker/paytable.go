package poker

// PayTable holds the credits paid per unit bet for each category.
var PayTable = [numCategories]uint{
	Nothing:       0,
	JacksOrBetter: 1,
	TwoPair:       2,
	ThreeOfAKind:  3,
	Straight:      4,
	Flush:         6,
	FullHouse:     9,
	FourOfAKind:   25,
	StraightFlush: 50,
	RoyalFlush:    800,
}

// Payout returns the credits won by a hand of category c at the given bet.
func Payout(c Category, bet uint) uint {
	return PayTable[c] * bet
}

// PayTableRow is one line of the pay table as shown to the player.
type PayTableRow struct {
	Category Category
	PerUnit  uint
}

// PayTableRows lists the paying categories from the best hand down.
func PayTableRows() []PayTableRow {
	rows := make([]PayTableRow, 0, numCategories-1)
	for c := RoyalFlush; c > Nothing; c-- {
		rows = append(rows, PayTableRow{Category: c, PerUnit: PayTable[c]})
	}
	return rows
}
