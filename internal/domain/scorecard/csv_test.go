package scorecard

import "testing"

// 24 lead columns, 23 name slots per side, 22 trailing team stats per side,
// 5 stats for each of 23 slots per side.
const wantColumns = 24 + 2*23 + 2*22 + 2*23*5

func headerIndex(t *testing.T) map[string]int {
	t.Helper()
	out := make(map[string]int, wantColumns)
	for i, name := range Header() {
		if _, dup := out[name]; dup {
			t.Fatalf("duplicate column %q", name)
		}
		out[name] = i
	}
	return out
}

func TestHeader_Shape(t *testing.T) {
	header := Header()
	if len(header) != wantColumns {
		t.Fatalf("header length mismatch: got=%d want=%d", len(header), wantColumns)
	}

	idx := headerIndex(t)
	checks := map[string]int{
		"game":        0,
		"league":      1,
		"leagueName":  2,
		"name_h":      3,
		"name_a":      4,
		"year":        5,
		"month":       6,
		"day":         7,
		"score_h":     8,
		"RedCards_a":  23,
		"name_h_1":    24,
		"name_a_1":    24 + 23,
		"MetresRun_h": 24 + 46,
		"MetresRun_a": 24 + 46 + 22,
		"MR_h_1":      24 + 46 + 44,
		"CB_h_1":      24 + 46 + 44 + 1,
		"MT_h_23":     24 + 46 + 44 + 23*5 - 1,
		"MR_a_1":      24 + 46 + 44 + 23*5,
	}
	for name, want := range checks {
		got, ok := idx[name]
		if !ok {
			t.Fatalf("missing column %q", name)
		}
		if got != want {
			t.Fatalf("column %q position mismatch: got=%d want=%d", name, got, want)
		}
	}
}

func TestRow_MatchesHeader(t *testing.T) {
	m := Match{GameID: "g1"}
	if got := len(m.Row()); got != wantColumns {
		t.Fatalf("row length mismatch: got=%d want=%d", got, wantColumns)
	}
}

func TestRow_FillsUnusedSlotsWithNA(t *testing.T) {
	m := Match{
		GameID:       "401",
		LeagueSlug:   "267979",
		LeagueAbbrev: "PREM",
		Year:         "2023",
		Month:        "01",
		Day:          "15",
		Home: Team{
			Name:  "Quins",
			Score: "31",
			Players: []Player{
				{Name: "Fly Half", MetresRun: 105, CleanBreaks: 3, DefendersBeaten: 4, Tries: 1, MinutesPlayed: 80},
				{Name: "Scrum Half"},
			},
		},
		Away: Team{Name: "Sale", Score: "24"},
	}
	m.Home.DeriveStats()
	m.Away.DeriveStats()

	idx := headerIndex(t)
	row := m.Row()

	if got := row[idx["name_h_1"]]; got != "Fly Half" {
		t.Fatalf("name_h_1: got=%q", got)
	}
	if got := row[idx["name_h_2"]]; got != "Scrum Half" {
		t.Fatalf("name_h_2: got=%q", got)
	}
	// Slots past the roster carry the literal NA string, including the name.
	if got := row[idx["name_h_3"]]; got != NA {
		t.Fatalf("name_h_3: got=%q want=%s", got, NA)
	}
	for _, col := range []string{"MR_h_3", "CB_h_3", "DB_h_3", "T_h_3", "MT_h_3"} {
		if got := row[idx[col]]; got != NA {
			t.Fatalf("%s: got=%q want=%s", col, got, NA)
		}
	}

	if got := row[idx["MR_h_1"]]; got != "105" {
		t.Fatalf("MR_h_1: got=%q want=105", got)
	}
	if got := row[idx["MT_h_1"]]; got != "80" {
		t.Fatalf("MT_h_1: got=%q want=80", got)
	}
	// A listed player without stats emits zeroes, not NA.
	if got := row[idx["MR_h_2"]]; got != "0" {
		t.Fatalf("MR_h_2: got=%q want=0", got)
	}

	// The away roster is empty, so every away slot and both derived away
	// stats are NA while the team columns still populate.
	if got := row[idx["name_a_1"]]; got != NA {
		t.Fatalf("name_a_1: got=%q want=%s", got, NA)
	}
	if got := row[idx["BookingPoints_a"]]; got != NA {
		t.Fatalf("BookingPoints_a: got=%q want=%s", got, NA)
	}
	if got := row[idx["score_a"]]; got != "24" {
		t.Fatalf("score_a: got=%q want=24", got)
	}

	if got := row[idx["game"]]; got != "401" {
		t.Fatalf("game: got=%q", got)
	}
	if got := row[idx["leagueName"]]; got != "PREM" {
		t.Fatalf("leagueName: got=%q", got)
	}
}
