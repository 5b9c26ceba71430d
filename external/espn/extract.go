package espn

import (
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/ruckdata/rugby-crawler/internal/domain/scorecard"
	"github.com/ruckdata/rugby-crawler/internal/usecase"
)

// ErrSchemaChanged reports a payload whose shape no longer matches the
// positional stat index tables. Distinct from a fetch failure so operators
// can tell an upstream layout change from a network problem.
var ErrSchemaChanged = crerr.New("espn: upstream statistics layout changed")

// ExtractMatch flattens one summary payload into a match record. Year, month
// and day come from the query date, not the event's own timestamp. Team
// stats fill home from the first competitor block and away from the second;
// roster sides are chosen solely by each roster block's homeAway tag. Derived
// stats are left unset for the caller.
func ExtractMatch(sum Summary, date time.Time, league usecase.League, event usecase.EventStub) (scorecard.Match, error) {
	if len(sum.Competitions) == 0 {
		return scorecard.Match{}, crerr.Wrapf(ErrSchemaChanged, "event %s has no competition block", event.ID)
	}
	competitors := sum.Competitions[0].Competitors
	if len(competitors) < 2 {
		return scorecard.Match{}, crerr.Wrapf(ErrSchemaChanged, "event %s has %d competitors, need 2", event.ID, len(competitors))
	}

	match := scorecard.Match{
		GameID:       event.ID,
		LeagueSlug:   league.Slug,
		LeagueAbbrev: league.Abbreviation,
		Year:         date.Format("2006"),
		Month:        date.Format("01"),
		Day:          date.Format("02"),
	}

	homeRoster, awayRoster := splitRosters(sum.Rosters)
	if err := fillTeam(&match.Home, competitors[0], homeRoster); err != nil {
		return scorecard.Match{}, crerr.Wrapf(err, "event %s home side", event.ID)
	}
	if err := fillTeam(&match.Away, competitors[1], awayRoster); err != nil {
		return scorecard.Match{}, crerr.Wrapf(err, "event %s away side", event.ID)
	}

	return match, nil
}

// splitRosters picks the first roster block per tag. A side without a tagged
// block gets nil: team stats still populate, player data is omitted.
func splitRosters(rosters []Roster) (home, away *Roster) {
	for i := range rosters {
		switch strings.ToLower(strings.TrimSpace(rosters[i].HomeAway)) {
		case "home":
			if home == nil {
				home = &rosters[i]
			}
		case "away":
			if away == nil {
				away = &rosters[i]
			}
		}
	}
	return home, away
}

func fillTeam(dst *scorecard.Team, c Competitor, roster *Roster) error {
	stats := c.Statistics
	if len(stats) <= maxTeamStatIndex {
		return crerr.Wrapf(ErrSchemaChanged, "team statistics array has %d entries, need at least %d",
			len(stats), maxTeamStatIndex+1)
	}

	dst.Name = c.Team.Name
	dst.Score = c.Score

	dst.Tries = stats[idxTries].DisplayValue
	dst.ConversionGoals = stats[idxConversionGoals].DisplayValue
	dst.PenaltyGoals = stats[idxPenaltyGoals].DisplayValue
	dst.YellowCards = stats[idxYellowCards].DisplayValue
	dst.RedCards = stats[idxRedCards].DisplayValue
	dst.MetresRun = stats[idxMetresRun].DisplayValue
	dst.KicksFromHand = stats[idxKicksFromHand].DisplayValue
	dst.Passes = stats[idxPasses].DisplayValue
	dst.Runs = stats[idxRuns].DisplayValue
	dst.Possession1H = stats[idxPossession1H].DisplayValue
	dst.Possession2H = stats[idxPossession2H].DisplayValue
	dst.Territory1H = stats[idxTerritory1H].DisplayValue
	dst.Territory2H = stats[idxTerritory2H].DisplayValue
	dst.CleanBreaks = stats[idxCleanBreaks].DisplayValue
	dst.DefendersBeaten = stats[idxDefendersBeaten].DisplayValue
	dst.Offload = stats[idxOffload].DisplayValue
	dst.RucksWon = stats[idxRucksWon].DisplayValue
	dst.MaulsWon = stats[idxMaulsWon].DisplayValue
	dst.TurnoversConceded = stats[idxTurnoversConceded].DisplayValue
	dst.ScrumsWon = stats[idxScrumsWon].DisplayValue
	dst.LineoutsWon = stats[idxLineoutsWon].DisplayValue
	dst.TotalFreeKicksConceded = stats[idxTotalFreeKicksConceded].DisplayValue
	dst.PenaltiesConceeded = stats[idxPenaltiesConceeded].DisplayValue

	// The provider only reports the won counts and the attempted/total
	// counts; the lost columns are their difference.
	var err error
	if dst.RucksLost, err = statDifference(stats, idxRucksAttempted, idxRucksWon); err != nil {
		return crerr.Wrap(err, "rucks lost")
	}
	if dst.MaulsLost, err = statDifference(stats, idxMaulsAttempted, idxMaulsWon); err != nil {
		return crerr.Wrap(err, "mauls lost")
	}
	if dst.ScrumsLost, err = statDifference(stats, idxScrumsAttempted, idxScrumsWon); err != nil {
		return crerr.Wrap(err, "scrums lost")
	}
	if dst.LineoutsLost, err = statDifference(stats, idxLineoutsTotal, idxLineoutsWon); err != nil {
		return crerr.Wrap(err, "lineouts lost")
	}

	fillRoster(dst, roster)
	return nil
}

func statDifference(stats []Statistic, totalIdx, wonIdx int) (string, error) {
	total, err := parseStatNumber(stats[totalIdx].DisplayValue)
	if err != nil {
		return "", crerr.Wrapf(ErrSchemaChanged, "non-numeric value %q at index %d", stats[totalIdx].DisplayValue, totalIdx)
	}
	won, err := parseStatNumber(stats[wonIdx].DisplayValue)
	if err != nil {
		return "", crerr.Wrapf(ErrSchemaChanged, "non-numeric value %q at index %d", stats[wonIdx].DisplayValue, wonIdx)
	}
	return strconv.FormatFloat(total-won, 'f', -1, 64), nil
}

func parseStatNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func fillRoster(dst *scorecard.Team, roster *Roster) {
	if roster == nil {
		dst.Players = []scorecard.Player{}
		return
	}

	dst.Players = make([]scorecard.Player, 0, len(roster.Roster))
	for _, entry := range roster.Roster {
		p := scorecard.Player{Name: entry.Athlete.DisplayName}
		if len(entry.Stats) > 0 {
			p.MetresRun = athleteStat(entry.Stats, idxPlayerMetresRun)
			p.CleanBreaks = athleteStat(entry.Stats, idxPlayerCleanBreaks)
			p.DefendersBeaten = athleteStat(entry.Stats, idxPlayerDefendersBeaten)
			p.Tries = athleteStat(entry.Stats, idxPlayerTries)
			p.MinutesPlayed = athleteStat(entry.Stats, idxPlayerMinutesPlayed)
			p.YellowCards = athleteStat(entry.Stats, idxPlayerYellowCards)
			p.RedCards = athleteStat(entry.Stats, idxPlayerRedCards)
			p.DropGoals = athleteStat(entry.Stats, idxPlayerDropGoals)
		}
		dst.Players = append(dst.Players, p)
	}
}

// athleteStat reads one positional player stat, tolerating short arrays:
// player-level data degrades to zero instead of failing the match.
func athleteStat(stats []AthleteStat, idx int) float64 {
	if idx < len(stats) {
		return stats[idx].Value
	}
	return 0
}
