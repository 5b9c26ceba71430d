package scorecard

import "strconv"

// NA marks data that does not exist upstream, as opposed to a zero that was
// actually measured.
const NA = "NA"

// PlayerSlots is the number of player columns emitted per side regardless of
// how many players the roster actually lists.
const PlayerSlots = 23

// OptionalInt is an integer that may be absent. Absent values render as the
// NA sentinel.
type OptionalInt struct {
	Value int
	Valid bool
}

func SomeInt(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

func (o OptionalInt) String() string {
	if !o.Valid {
		return NA
	}
	return strconv.Itoa(o.Value)
}

// Player holds one roster entry's match statistics. All stats default to zero
// when the provider sends no stat array for the player.
type Player struct {
	Name            string
	MetresRun       float64
	CleanBreaks     float64
	DefendersBeaten float64
	Tries           float64
	MinutesPlayed   float64
	YellowCards     float64
	RedCards        float64
	DropGoals       float64
}

// Team is one side's flattened view of a match. Stat values are kept as the
// provider's display strings; only the two derived fields and the four
// "lost" differences involve arithmetic. Players keeps roster order.
type Team struct {
	Name  string
	Score string

	Tries              string
	ConversionGoals    string
	PenaltyGoals       string
	DropGoalsConverted OptionalInt
	BookingPoints      OptionalInt
	YellowCards        string
	RedCards           string

	MetresRun              string
	KicksFromHand          string
	Passes                 string
	Runs                   string
	Possession1H           string
	Possession2H           string
	Territory1H            string
	Territory2H            string
	CleanBreaks            string
	DefendersBeaten        string
	Offload                string
	RucksWon               string
	RucksLost              string
	MaulsWon               string
	MaulsLost              string
	TurnoversConceded      string
	ScrumsWon              string
	ScrumsLost             string
	LineoutsWon            string
	LineoutsLost           string
	TotalFreeKicksConceded string
	PenaltiesConceeded     string

	Players []Player
}

// Match is one output row: identity columns plus both sides.
type Match struct {
	GameID       string
	LeagueSlug   string
	LeagueAbbrev string
	Year         string
	Month        string
	Day          string

	Home Team
	Away Team
}
