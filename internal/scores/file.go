package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"nbanotifier/internal/models"
)

// FileFetcher reads the game list from a local JSON file holding the same
// array shape as the live feed. Used for local runs without an API key.
type FileFetcher struct {
	FilePath string
}

func (f *FileFetcher) FetchGames(ctx context.Context, date string) ([]models.Game, error) {
	log.Printf("Reading games from file: %s", f.FilePath)

	data, err := os.ReadFile(f.FilePath)
	if err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("failed to read games file %s: %w", f.FilePath, err)}
	}

	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("failed to parse games file: %w", err)}
	}

	log.Printf("Found %d games in file", len(games))
	return games, nil
}

// NewFetcher creates the appropriate Fetcher based on configuration.
// If gamesFile is non-empty, returns a file-based fetcher; otherwise
// returns an HTTP fetcher against the live API.
func NewFetcher(gamesFile, baseURL, apiKey string) Fetcher {
	if gamesFile != "" {
		return &FileFetcher{FilePath: gamesFile}
	}
	return NewHTTPFetcher(baseURL, apiKey)
}
