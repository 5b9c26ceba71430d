package scorecard

import (
	"fmt"
	"strconv"
)

// The column layout is load-bearing: games.csv accumulates rows across runs
// with no header or version marker, so the schema below must stay stable.
// Columns appear in three groups, home before away inside each group:
// identity and headline stats, then the 23 name slots per side, then the
// remaining team stats, then the five per-slot player stats.

var leadColumns = []string{
	"game", "league", "leagueName",
	"name_h", "name_a",
	"year", "month", "day",
	"score_h", "score_a",
	"Tries_h", "Tries_a",
	"ConversionGoals_h", "ConversionGoals_a",
	"PenaltyGoals_h", "PenaltyGoals_a",
	"DropGoalsConverted_h", "DropGoalsConverted_a",
	"BookingPoints_h", "BookingPoints_a",
	"YellowCards_h", "YellowCards_a",
	"RedCards_h", "RedCards_a",
}

var trailingTeamColumns = []string{
	"MetresRun", "KicksFromHand", "Passes", "Runs",
	"Possession1H", "Possession2H", "Territory1H", "Territory2H",
	"CleanBreaks", "DefendersBeaten", "Offload",
	"RucksWon", "RucksLost", "MaulsWon", "MaulsLost",
	"TurnoversConceded", "ScrumsWon", "ScrumsLost",
	"LineoutsWon", "LineoutsLost",
	"TotalFreeKicksConceded", "PenaltiesConceeded",
}

var playerStatColumns = []string{"MR", "CB", "DB", "T", "MT"}

// Header returns the full column list in emission order. The sink never
// writes it; it exists for consumers and for pinning the schema in tests.
func Header() []string {
	out := make([]string, 0, len(leadColumns)+2*PlayerSlots+2*len(trailingTeamColumns)+2*PlayerSlots*len(playerStatColumns))
	out = append(out, leadColumns...)
	for _, suffix := range []string{"_h", "_a"} {
		for i := 1; i <= PlayerSlots; i++ {
			out = append(out, fmt.Sprintf("name%s_%d", suffix, i))
		}
	}
	for _, suffix := range []string{"_h", "_a"} {
		for _, name := range trailingTeamColumns {
			out = append(out, name+suffix)
		}
	}
	for _, suffix := range []string{"_h", "_a"} {
		for i := 1; i <= PlayerSlots; i++ {
			for _, name := range playerStatColumns {
				out = append(out, fmt.Sprintf("%s%s_%d", name, suffix, i))
			}
		}
	}
	return out
}

// Row flattens the match into CSV field values, one per Header column.
func (m Match) Row() []string {
	out := make([]string, 0, len(leadColumns)+2*PlayerSlots+2*len(trailingTeamColumns)+2*PlayerSlots*len(playerStatColumns))
	out = append(out,
		m.GameID, m.LeagueSlug, m.LeagueAbbrev,
		m.Home.Name, m.Away.Name,
		m.Year, m.Month, m.Day,
		m.Home.Score, m.Away.Score,
		m.Home.Tries, m.Away.Tries,
		m.Home.ConversionGoals, m.Away.ConversionGoals,
		m.Home.PenaltyGoals, m.Away.PenaltyGoals,
		m.Home.DropGoalsConverted.String(), m.Away.DropGoalsConverted.String(),
		m.Home.BookingPoints.String(), m.Away.BookingPoints.String(),
		m.Home.YellowCards, m.Away.YellowCards,
		m.Home.RedCards, m.Away.RedCards,
	)
	for _, side := range []*Team{&m.Home, &m.Away} {
		for i := 0; i < PlayerSlots; i++ {
			if i < len(side.Players) {
				out = append(out, side.Players[i].Name)
			} else {
				out = append(out, NA)
			}
		}
	}
	for _, side := range []*Team{&m.Home, &m.Away} {
		out = append(out, side.trailingStats()...)
	}
	for _, side := range []*Team{&m.Home, &m.Away} {
		for i := 0; i < PlayerSlots; i++ {
			if i < len(side.Players) {
				p := side.Players[i]
				out = append(out,
					formatStat(p.MetresRun),
					formatStat(p.CleanBreaks),
					formatStat(p.DefendersBeaten),
					formatStat(p.Tries),
					formatStat(p.MinutesPlayed),
				)
			} else {
				out = append(out, NA, NA, NA, NA, NA)
			}
		}
	}
	return out
}

func (t *Team) trailingStats() []string {
	return []string{
		t.MetresRun, t.KicksFromHand, t.Passes, t.Runs,
		t.Possession1H, t.Possession2H, t.Territory1H, t.Territory2H,
		t.CleanBreaks, t.DefendersBeaten, t.Offload,
		t.RucksWon, t.RucksLost, t.MaulsWon, t.MaulsLost,
		t.TurnoversConceded, t.ScrumsWon, t.ScrumsLost,
		t.LineoutsWon, t.LineoutsLost,
		t.TotalFreeKicksConceded, t.PenaltiesConceeded,
	}
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
