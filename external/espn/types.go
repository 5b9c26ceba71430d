package espn

// Wire types for the two site API endpoints this crawler consumes. Only the
// fields the pipeline reads are declared; the payloads carry far more.

type ScorePanel struct {
	Scores []ScoreBlock `json:"scores"`
}

// ScoreBlock is one league's slice of the day panel.
type ScoreBlock struct {
	Leagues []League `json:"leagues"`
	Events  []Event  `json:"events"`
}

type League struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Summary is a single match's detail payload: competitor blocks with the
// positional team statistics array, and roster blocks tagged home or away.
type Summary struct {
	Competitions []Competition `json:"competitions"`
	Rosters      []Roster      `json:"rosters"`
}

type Competition struct {
	Competitors []Competitor `json:"competitors"`
}

type Competitor struct {
	Team       CompetitorTeam `json:"team"`
	Score      string         `json:"score"`
	Statistics []Statistic    `json:"statistics"`
}

type CompetitorTeam struct {
	Name string `json:"name"`
}

type Statistic struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type Roster struct {
	HomeAway string        `json:"homeAway"`
	Roster   []RosterEntry `json:"roster"`
}

type RosterEntry struct {
	Athlete Athlete       `json:"athlete"`
	Stats   []AthleteStat `json:"stats"`
}

type Athlete struct {
	DisplayName string `json:"displayName"`
}

type AthleteStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
