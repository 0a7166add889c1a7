package pipeline

import (
	"context"
	"log"
	"net/http"

	"nbanotifier/config"
	"nbanotifier/internal/format"
	"nbanotifier/internal/publish"
	"nbanotifier/internal/scores"
)

// Subject is the fixed subject line attached to every notification.
const Subject = "NBA Game Updates"

// Result is the outcome of one invocation, reported back to the trigger.
type Result struct {
	Code int
	Body string
}

// Pipeline runs one notify cycle: resolve the game date, fetch the day's
// games, format the digest, and publish it. It is stateless and safe for
// concurrent invocations.
type Pipeline struct {
	Cfg       *config.Config
	Fetcher   scores.Fetcher
	Publisher publish.Publisher

	// Mirrors are best-effort secondary destinations. Their failures are
	// logged and never affect the result.
	Mirrors []publish.Publisher
}

// Run executes the fetch-format-publish sequence. It short-circuits with a
// 500 result on fetch failure (publish is never attempted) and on publish
// failure; otherwise it returns 200 "processed".
func (p *Pipeline) Run(ctx context.Context) Result {
	date := scores.ResolveGameDate(p.Cfg.DateOverride)

	games, err := p.Fetcher.FetchGames(ctx, date)
	if err != nil {
		log.Printf("ERROR: failed to fetch games for %s: %v", date, err)
		return Result{Code: http.StatusInternalServerError, Body: "failed to fetch games"}
	}
	log.Printf("Fetched %d games for %s", len(games), date)

	msg := publish.Message{
		Subject: Subject,
		Body:    format.Digest(games),
	}

	res, err := p.Publisher.Publish(ctx, msg)
	if err != nil {
		log.Printf("ERROR: failed to publish notification: %v", err)
		return Result{Code: http.StatusInternalServerError, Body: "failed to publish notification"}
	}
	log.Printf("Notification %s published for %d games", res.ID, len(games))

	for i, mirror := range p.Mirrors {
		if _, err := mirror.Publish(ctx, msg); err != nil {
			log.Printf("Mirror %d failed to publish: %v", i, err)
		}
	}

	return Result{Code: http.StatusOK, Body: "processed"}
}
