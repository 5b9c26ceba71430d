package espn

import (
	"errors"
	"testing"
	"time"

	"github.com/ruckdata/rugby-crawler/internal/domain/scorecard"
	"github.com/ruckdata/rugby-crawler/internal/usecase"
)

func statArray(overrides map[int]string) []Statistic {
	out := make([]Statistic, maxTeamStatIndex+1)
	for i := range out {
		out[i] = Statistic{Name: "stat", DisplayValue: "0"}
	}
	for idx, v := range overrides {
		out[idx].DisplayValue = v
	}
	return out
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("20060102", "20230204")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func testLeague() usecase.League {
	return usecase.League{Slug: "267979", Abbreviation: "PREM", Name: "English Premiership"}
}

func TestExtractMatch_MapsTeamsAndDate(t *testing.T) {
	sum := Summary{
		Competitions: []Competition{{Competitors: []Competitor{
			{
				Team:  CompetitorTeam{Name: "Bath"},
				Score: "27",
				Statistics: statArray(map[int]string{
					idxTries:              "3",
					idxConversionGoals:    "2",
					idxPenaltyGoals:       "1",
					idxMetresRun:          "412",
					idxPossession1H:       "54%",
					idxRucksWon:           "71",
					idxRucksAttempted:     "75",
					idxMaulsWon:           "4",
					idxMaulsAttempted:     "5",
					idxScrumsWon:          "6",
					idxScrumsAttempted:    "7",
					idxLineoutsWon:        "11",
					idxLineoutsTotal:      "13",
					idxPenaltiesConceeded: "9",
				}),
			},
			{
				Team:       CompetitorTeam{Name: "Exeter"},
				Score:      "20",
				Statistics: statArray(map[int]string{idxTries: "2"}),
			},
		}}},
	}

	m, err := ExtractMatch(sum, testDate(t), testLeague(), usecase.EventStub{ID: "600123", Name: "Bath v Exeter"})
	if err != nil {
		t.Fatalf("ExtractMatch: %v", err)
	}

	if m.GameID != "600123" || m.LeagueSlug != "267979" || m.LeagueAbbrev != "PREM" {
		t.Fatalf("identity mismatch: %+v", m)
	}
	if m.Year != "2023" || m.Month != "02" || m.Day != "04" {
		t.Fatalf("date mismatch: year=%s month=%s day=%s", m.Year, m.Month, m.Day)
	}
	if m.Home.Name != "Bath" || m.Away.Name != "Exeter" {
		t.Fatalf("side order mismatch: home=%s away=%s", m.Home.Name, m.Away.Name)
	}
	if m.Home.Score != "27" || m.Away.Score != "20" {
		t.Fatalf("score mismatch: home=%s away=%s", m.Home.Score, m.Away.Score)
	}
	if m.Home.Tries != "3" || m.Away.Tries != "2" {
		t.Fatalf("tries mismatch: home=%s away=%s", m.Home.Tries, m.Away.Tries)
	}
	if m.Home.Possession1H != "54%" {
		t.Fatalf("possession: got=%q", m.Home.Possession1H)
	}

	// Lost counts are attempted minus won.
	if m.Home.RucksLost != "4" {
		t.Fatalf("rucks lost: got=%q want=4", m.Home.RucksLost)
	}
	if m.Home.MaulsLost != "1" {
		t.Fatalf("mauls lost: got=%q want=1", m.Home.MaulsLost)
	}
	if m.Home.ScrumsLost != "1" {
		t.Fatalf("scrums lost: got=%q want=1", m.Home.ScrumsLost)
	}
	if m.Home.LineoutsLost != "2" {
		t.Fatalf("lineouts lost: got=%q want=2", m.Home.LineoutsLost)
	}
}

func TestExtractMatch_RosterTagsPickSides(t *testing.T) {
	sum := Summary{
		Competitions: []Competition{{Competitors: []Competitor{
			{Team: CompetitorTeam{Name: "Home"}, Statistics: statArray(nil)},
			{Team: CompetitorTeam{Name: "Away"}, Statistics: statArray(nil)},
		}}},
		// Away listed first: tag wins over position.
		Rosters: []Roster{
			{HomeAway: "AWAY", Roster: []RosterEntry{{Athlete: Athlete{DisplayName: "Away Flanker"}}}},
			{HomeAway: " home ", Roster: []RosterEntry{
				{
					Athlete: Athlete{DisplayName: "Home Hooker"},
					Stats:   playerStats(map[int]float64{idxPlayerTries: 1, idxPlayerMetresRun: 34, idxPlayerYellowCards: 1}),
				},
			}},
		},
	}

	m, err := ExtractMatch(sum, testDate(t), testLeague(), usecase.EventStub{ID: "1"})
	if err != nil {
		t.Fatalf("ExtractMatch: %v", err)
	}
	if len(m.Home.Players) != 1 || m.Home.Players[0].Name != "Home Hooker" {
		t.Fatalf("home roster: %+v", m.Home.Players)
	}
	if len(m.Away.Players) != 1 || m.Away.Players[0].Name != "Away Flanker" {
		t.Fatalf("away roster: %+v", m.Away.Players)
	}
	if m.Home.Players[0].Tries != 1 || m.Home.Players[0].MetresRun != 34 {
		t.Fatalf("home player stats: %+v", m.Home.Players[0])
	}
	// The away entry carried no stats array at all; values degrade to zero.
	if m.Away.Players[0].MetresRun != 0 {
		t.Fatalf("away player stats: %+v", m.Away.Players[0])
	}
}

func TestExtractMatch_MissingRostersLeaveTeamsPlayerless(t *testing.T) {
	sum := Summary{
		Competitions: []Competition{{Competitors: []Competitor{
			{Team: CompetitorTeam{Name: "A"}, Statistics: statArray(map[int]string{idxTries: "5"})},
			{Team: CompetitorTeam{Name: "B"}, Statistics: statArray(nil)},
		}}},
	}

	m, err := ExtractMatch(sum, testDate(t), testLeague(), usecase.EventStub{ID: "2"})
	if err != nil {
		t.Fatalf("ExtractMatch: %v", err)
	}
	if len(m.Home.Players) != 0 || len(m.Away.Players) != 0 {
		t.Fatalf("expected empty rosters, got home=%d away=%d", len(m.Home.Players), len(m.Away.Players))
	}
	if m.Home.Tries != "5" {
		t.Fatalf("team stats must still populate: %+v", m.Home)
	}
}

// Player stat positions in the payload below are literal array offsets, not
// the named constants, so a swapped entry in the index table fails here even
// though extraction and payload would otherwise move together.
func TestExtractMatch_DerivedCardColumnsRoundTrip(t *testing.T) {
	sum := Summary{
		Competitions: []Competition{{Competitors: []Competitor{
			{Team: CompetitorTeam{Name: "Home"}, Score: "28", Statistics: statArray(nil)},
			{Team: CompetitorTeam{Name: "Away"}, Score: "12", Statistics: statArray(nil)},
		}}},
		Rosters: []Roster{
			{HomeAway: "home", Roster: []RosterEntry{
				{
					// Two drop goals, one yellow card.
					Athlete: Athlete{DisplayName: "Openside"},
					Stats:   playerStats(map[int]float64{3: 2, 25: 1}),
				},
				{
					// One red card.
					Athlete: Athlete{DisplayName: "Prop"},
					Stats:   playerStats(map[int]float64{15: 1}),
				},
			}},
			{HomeAway: "away"},
		},
	}

	m, err := ExtractMatch(sum, testDate(t), testLeague(), usecase.EventStub{ID: "7"})
	if err != nil {
		t.Fatalf("ExtractMatch: %v", err)
	}

	if len(m.Home.Players) != 2 {
		t.Fatalf("home roster: %+v", m.Home.Players)
	}
	openside, prop := m.Home.Players[0], m.Home.Players[1]
	if openside.DropGoals != 2 || openside.YellowCards != 1 || openside.RedCards != 0 {
		t.Fatalf("openside stats: %+v", openside)
	}
	if prop.RedCards != 1 || prop.YellowCards != 0 || prop.DropGoals != 0 {
		t.Fatalf("prop stats: %+v", prop)
	}

	m.Home.DeriveStats()
	m.Away.DeriveStats()

	idx := make(map[string]int)
	for i, name := range scorecard.Header() {
		idx[name] = i
	}
	row := m.Row()

	// 10 for the yellow plus 25 for the red.
	if got := row[idx["BookingPoints_h"]]; got != "35" {
		t.Fatalf("BookingPoints_h: got=%q want=35", got)
	}
	if got := row[idx["DropGoalsConverted_h"]]; got != "2" {
		t.Fatalf("DropGoalsConverted_h: got=%q want=2", got)
	}
	if got := row[idx["BookingPoints_a"]]; got != scorecard.NA {
		t.Fatalf("BookingPoints_a: got=%q want=%s", got, scorecard.NA)
	}
	if got := row[idx["DropGoalsConverted_a"]]; got != scorecard.NA {
		t.Fatalf("DropGoalsConverted_a: got=%q want=%s", got, scorecard.NA)
	}
}

func TestExtractMatch_SchemaChanged(t *testing.T) {
	short := statArray(nil)[:maxTeamStatIndex]
	nonNumeric := statArray(map[int]string{idxRucksAttempted: "n/a"})

	cases := []struct {
		name string
		sum  Summary
	}{
		{
			name: "no competitions",
			sum:  Summary{},
		},
		{
			name: "one competitor",
			sum: Summary{Competitions: []Competition{{Competitors: []Competitor{
				{Statistics: statArray(nil)},
			}}}},
		},
		{
			name: "truncated stat array",
			sum: Summary{Competitions: []Competition{{Competitors: []Competitor{
				{Statistics: short},
				{Statistics: statArray(nil)},
			}}}},
		},
		{
			name: "non-numeric attempted count",
			sum: Summary{Competitions: []Competition{{Competitors: []Competitor{
				{Statistics: nonNumeric},
				{Statistics: statArray(nil)},
			}}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractMatch(tc.sum, testDate(t), testLeague(), usecase.EventStub{ID: "3"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrSchemaChanged) {
				t.Fatalf("want ErrSchemaChanged, got %v", err)
			}
		})
	}
}

func playerStats(overrides map[int]float64) []AthleteStat {
	out := make([]AthleteStat, idxPlayerYellowCards+1)
	for idx, v := range overrides {
		out[idx].Value = v
	}
	return out
}
