package models

// Game represents a single game for a given date, as returned by the
// sportsdata.io NBA scores feed (/v3/nba/scores/json/GamesByDate/{date}).
// Score fields are pointers because the feed omits them until they exist;
// rendering treats nil as "not available" rather than an error.
type Game struct {
	Status        string    `json:"Status"`
	AwayTeam      string    `json:"AwayTeam"`
	HomeTeam      string    `json:"HomeTeam"`
	AwayTeamScore *int      `json:"AwayTeamScore"`
	HomeTeamScore *int      `json:"HomeTeamScore"`
	DateTime      string    `json:"DateTime"`
	Channel       string    `json:"Channel"`
	LastPlay      string    `json:"LastPlay"`
	Quarters      []Quarter `json:"Quarters"`
}

// Quarter is one period's line score. Present only on finished games.
type Quarter struct {
	Number    int  `json:"Number"`
	AwayScore *int `json:"AwayScore"`
	HomeScore *int `json:"HomeScore"`
}

// Game statuses used for formatting dispatch. The feed emits more values
// than these; anything unrecognized falls through to a generic rendering.
const (
	StatusFinal      = "Final"
	StatusInProgress = "InProgress"
	StatusScheduled  = "Scheduled"
)
