// Package format renders fetched games into the plain-text digest that is
// published for email/SMS fan-out. Rendering is total: a record may be
// missing any field, including status, and still produces a block with
// placeholder text instead of an error.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"nbanotifier/internal/models"
)

const (
	// Placeholders for fields the feed omitted.
	unavailable = "N/A"
	unknown     = "Unknown"

	// Separator between game blocks in the digest.
	separator = "\n---\n"

	// NoGamesMessage is published when the fetched game list is empty.
	NoGamesMessage = "No NBA games scheduled for today."
)

// Game renders one game into its text block, dispatching on status.
func Game(g models.Game) string {
	lines := []string{
		"Status: " + orUnknown(g.Status),
		"Matchup: " + orUnknown(g.AwayTeam) + " @ " + orUnknown(g.HomeTeam),
	}

	switch g.Status {
	case models.StatusFinal:
		lines = append(lines,
			"Final Score: "+scoreline(g.AwayTeamScore, g.HomeTeamScore),
			"Start Time: "+orUnavailable(g.DateTime),
			"Channel: "+orUnavailable(g.Channel),
			"Quarter Scores: "+quarterScores(g.Quarters),
		)
	case models.StatusInProgress:
		lines = append(lines,
			"Current Score: "+scoreline(g.AwayTeamScore, g.HomeTeamScore),
			"Last Play: "+orUnavailable(g.LastPlay),
			"Channel: "+orUnavailable(g.Channel),
		)
	case models.StatusScheduled:
		lines = append(lines,
			"Start Time: "+orUnavailable(g.DateTime),
			"Channel: "+orUnavailable(g.Channel),
		)
	default:
		lines = append(lines, "Details unavailable")
	}

	return strings.Join(lines, "\n")
}

// Digest joins the rendered blocks for all games in their original order,
// or returns the fixed no-games message for an empty list.
func Digest(games []models.Game) string {
	if len(games) == 0 {
		return NoGamesMessage
	}

	blocks := make([]string, 0, len(games))
	for _, g := range games {
		blocks = append(blocks, Game(g))
	}
	return strings.Join(blocks, separator)
}

// scoreline renders "away-home" with a placeholder for either missing side.
func scoreline(away, home *int) string {
	return score(away) + "-" + score(home)
}

func quarterScores(quarters []models.Quarter) string {
	if len(quarters) == 0 {
		return unavailable
	}

	parts := make([]string, 0, len(quarters))
	for _, q := range quarters {
		parts = append(parts, fmt.Sprintf("Q%d: %s", q.Number, scoreline(q.AwayScore, q.HomeScore)))
	}
	return strings.Join(parts, ", ")
}

func score(v *int) string {
	if v == nil {
		return unavailable
	}
	return strconv.Itoa(*v)
}

func orUnavailable(s string) string {
	if s == "" {
		return unavailable
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
