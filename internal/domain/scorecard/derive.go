package scorecard

// DeriveStats fills the two derived team statistics from the player list.
// It runs once per team after flattening and touches nothing but the two
// derived fields.
//
// DropGoalsConverted is the sum of each player's drop-goal count.
// BookingPoints scores discipline as 10 points per yellow card and 25 per
// red, except that a player's yellows count at most once when they also saw
// red: a second yellow that escalated to a red must not double-count.
//
// An empty player list means no lineup was published, so both values stay
// NA rather than zero.
func (t *Team) DeriveStats() {
	if len(t.Players) == 0 {
		t.DropGoalsConverted = OptionalInt{}
		t.BookingPoints = OptionalInt{}
		return
	}

	dropGoals := 0
	bookingPoints := 0
	for _, p := range t.Players {
		dropGoals += int(p.DropGoals)

		yellow := int(p.YellowCards)
		if p.RedCards > 0 && yellow > 1 {
			yellow = 1
		}
		bookingPoints += 10*yellow + 25*int(p.RedCards)
	}

	t.DropGoalsConverted = SomeInt(dropGoals)
	t.BookingPoints = SomeInt(bookingPoints)
}
