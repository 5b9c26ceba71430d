package espn

// Positions of each named statistic inside the provider's array-of-objects
// representation. The layout is an unversioned upstream contract: if ESPN
// ever reorders the array, these indices read the wrong statistic. Length
// validation in extract.go catches truncation, not reordering.

// Team-level statistics array.
const (
	idxTries                  = 152
	idxConversionGoals        = 19
	idxPenaltyGoals           = 107
	idxYellowCards            = 168
	idxRedCards               = 112
	idxMetresRun              = 75
	idxKicksFromHand          = 41
	idxPasses                 = 81
	idxRuns                   = 128
	idxPossession1H           = 83
	idxPossession2H           = 84
	idxTerritory1H            = 85
	idxTerritory2H            = 86
	idxCleanBreaks            = 13
	idxDefendersBeaten        = 20
	idxOffload                = 80
	idxRucksWon               = 127
	idxRucksAttempted         = 125
	idxMaulsWon               = 70
	idxMaulsAttempted         = 69
	idxTurnoversConceded      = 166
	idxScrumsWon              = 137
	idxScrumsAttempted        = 136
	idxLineoutsWon            = 51
	idxLineoutsTotal          = 151
	idxTotalFreeKicksConceded = 148
	idxPenaltiesConceeded     = 87
)

// Per-player statistics array inside a roster entry.
const (
	idxPlayerCleanBreaks     = 0
	idxPlayerDefendersBeaten = 2
	idxPlayerDropGoals       = 3
	idxPlayerMetresRun       = 8
	idxPlayerMinutesPlayed   = 9
	idxPlayerRedCards        = 15
	idxPlayerTries           = 18
	idxPlayerYellowCards     = 25
)

var teamStatIndices = []int{
	idxTries, idxConversionGoals, idxPenaltyGoals, idxYellowCards, idxRedCards,
	idxMetresRun, idxKicksFromHand, idxPasses, idxRuns,
	idxPossession1H, idxPossession2H, idxTerritory1H, idxTerritory2H,
	idxCleanBreaks, idxDefendersBeaten, idxOffload,
	idxRucksWon, idxRucksAttempted, idxMaulsWon, idxMaulsAttempted,
	idxTurnoversConceded, idxScrumsWon, idxScrumsAttempted,
	idxLineoutsWon, idxLineoutsTotal,
	idxTotalFreeKicksConceded, idxPenaltiesConceeded,
}

var maxTeamStatIndex = maxIndex(teamStatIndices)

func maxIndex(indices []int) int {
	out := 0
	for _, idx := range indices {
		if idx > out {
			out = idx
		}
	}
	return out
}
