package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"nbanotifier/internal/models"
)

// FetchError indicates the scores API was unreachable, returned a
// non-success status, or produced a body that is not a game list.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch games: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Fetcher fetches the NBA games for a given date.
type Fetcher interface {
	FetchGames(ctx context.Context, date string) ([]models.Game, error)
}

// HTTPFetcher fetches games from the live sportsdata.io API.
type HTTPFetcher struct {
	BaseURL string
	APIKey  string
}

// NewHTTPFetcher creates an HTTPFetcher.
// If baseURL is empty, it defaults to the live sportsdata.io API.
func NewHTTPFetcher(baseURL, apiKey string) *HTTPFetcher {
	if baseURL == "" {
		baseURL = "https://api.sportsdata.io"
	}
	return &HTTPFetcher{BaseURL: baseURL, APIKey: apiKey}
}

func (f *HTTPFetcher) FetchGames(ctx context.Context, date string) ([]models.Game, error) {
	if f.APIKey == "" {
		return nil, &FetchError{Cause: fmt.Errorf("SPORTSDATA_API_KEY is not set")}
	}

	url := fmt.Sprintf("%s/v3/nba/scores/json/GamesByDate/%s?key=%s", f.BaseURL, date, f.APIKey)
	log.Printf("Fetching NBA games for %s", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("failed to reach scores API: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Cause: fmt.Errorf("scores API returned status %d", resp.StatusCode)}
	}

	var games []models.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("failed to decode games response: %w", err)}
	}

	return games, nil
}
