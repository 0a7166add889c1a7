package main

import (
	"log"
	"net/http"

	"nbanotifier/config"
	"nbanotifier/internal/handlers"
	"nbanotifier/internal/pipeline"
	"nbanotifier/internal/publish"
	"nbanotifier/internal/scores"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
)

func handler(w http.ResponseWriter, r *http.Request) {
	cfg := config.LoadConfig()

	publisher, err := publish.NewPubSubPublisher(r.Context(), cfg.ProjectID, cfg.TopicID)
	if err != nil {
		log.Printf("ERROR: failed to create publisher: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("failed to publish notification"))
		return
	}
	defer publisher.Close()

	p := &pipeline.Pipeline{
		Cfg:       cfg,
		Fetcher:   scores.NewFetcher(cfg.GamesFile, cfg.ScoresBaseURL, cfg.APIKey),
		Publisher: publisher,
		Mirrors:   publish.DiscoverMirrors(),
	}

	handlers.NotifyHandler(w, r, p)
}

func main() {
	funcframework.RegisterHTTPFunction("/", handler)
	if err := funcframework.Start("8080"); err != nil {
		log.Fatalf("Failed to start function: %v", err)
	}
}
