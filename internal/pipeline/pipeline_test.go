package pipeline

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"nbanotifier/config"
	"nbanotifier/internal/format"
	"nbanotifier/internal/models"
	"nbanotifier/internal/publish"
	"nbanotifier/internal/scores"
)

func intp(v int) *int { return &v }

// fakeFetcher returns canned games or a fetch error.
type fakeFetcher struct {
	games []models.Game
	err   error
	dates []string
}

func (f *fakeFetcher) FetchGames(ctx context.Context, date string) ([]models.Game, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	return f.games, nil
}

// fakePublisher records published messages and can fail on demand.
type fakePublisher struct {
	published []publish.Message
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, msg publish.Message) (publish.Result, error) {
	if p.err != nil {
		return publish.Result{}, p.err
	}
	p.published = append(p.published, msg)
	return publish.Result{ID: "fake-id"}, nil
}

func (p *fakePublisher) Close() error { return nil }

func newTestPipeline(fetcher *fakeFetcher, publisher *fakePublisher) *Pipeline {
	return &Pipeline{
		Cfg:       &config.Config{DateOverride: "2026-01-15"},
		Fetcher:   fetcher,
		Publisher: publisher,
	}
}

func TestRun_Success(t *testing.T) {
	games := []models.Game{
		{Status: "Final", AwayTeam: "BOS", HomeTeam: "LAL", AwayTeamScore: intp(110), HomeTeamScore: intp(104)},
		{Status: "Scheduled", AwayTeam: "MIA", HomeTeam: "DEN"},
	}
	fetcher := &fakeFetcher{games: games}
	publisher := &fakePublisher{}

	result := newTestPipeline(fetcher, publisher).Run(context.Background())

	if result.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", result.Code, result.Body)
	}
	if result.Body != "processed" {
		t.Errorf("expected body %q, got %q", "processed", result.Body)
	}

	if len(fetcher.dates) != 1 || fetcher.dates[0] != "2026-01-15" {
		t.Errorf("expected one fetch for 2026-01-15, got %v", fetcher.dates)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 publish call, got %d", len(publisher.published))
	}

	msg := publisher.published[0]
	if msg.Subject != Subject {
		t.Errorf("expected subject %q, got %q", Subject, msg.Subject)
	}
	if msg.Body != format.Digest(games) {
		t.Errorf("published body does not match digest:\n%s", msg.Body)
	}
}

func TestRun_EmptyGames_PublishesNoGamesMessage(t *testing.T) {
	fetcher := &fakeFetcher{}
	publisher := &fakePublisher{}

	result := newTestPipeline(fetcher, publisher).Run(context.Background())

	if result.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", result.Code)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 publish call, got %d", len(publisher.published))
	}

	if publisher.published[0].Body != format.NoGamesMessage {
		t.Errorf("expected no-games message, got %q", publisher.published[0].Body)
	}
}

func TestRun_FetchFailure_NeverPublishes(t *testing.T) {
	fetcher := &fakeFetcher{err: &scores.FetchError{Cause: errors.New("connection refused")}}
	publisher := &fakePublisher{}

	result := newTestPipeline(fetcher, publisher).Run(context.Background())

	if result.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", result.Code)
	}
	if result.Body != "failed to fetch games" {
		t.Errorf("unexpected body: %q", result.Body)
	}

	if len(publisher.published) != 0 {
		t.Errorf("expected zero publish calls after fetch failure, got %d", len(publisher.published))
	}
}

func TestRun_PublishFailure(t *testing.T) {
	fetcher := &fakeFetcher{games: []models.Game{{Status: "Scheduled", AwayTeam: "NYK", HomeTeam: "CHI"}}}
	publisher := &fakePublisher{err: &publish.PublishError{Cause: errors.New("topic rejected")}}

	result := newTestPipeline(fetcher, publisher).Run(context.Background())

	if result.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", result.Code)
	}
	if result.Body != "failed to publish notification" {
		t.Errorf("unexpected body: %q", result.Body)
	}
}

func TestRun_MirrorFailureDoesNotAffectResult(t *testing.T) {
	fetcher := &fakeFetcher{games: []models.Game{{Status: "Scheduled", AwayTeam: "NYK", HomeTeam: "CHI"}}}
	publisher := &fakePublisher{}
	mirror := &fakePublisher{err: errors.New("discord unreachable")}

	p := newTestPipeline(fetcher, publisher)
	p.Mirrors = []publish.Publisher{mirror}

	result := p.Run(context.Background())

	if result.Code != http.StatusOK {
		t.Fatalf("expected 200 despite mirror failure, got %d", result.Code)
	}
	if len(publisher.published) != 1 {
		t.Errorf("expected primary publish to proceed, got %d calls", len(publisher.published))
	}
}

func TestRun_MirrorReceivesSameMessage(t *testing.T) {
	fetcher := &fakeFetcher{games: []models.Game{{Status: "Scheduled", AwayTeam: "NYK", HomeTeam: "CHI"}}}
	publisher := &fakePublisher{}
	mirror := &fakePublisher{}

	p := newTestPipeline(fetcher, publisher)
	p.Mirrors = []publish.Publisher{mirror}

	p.Run(context.Background())

	if len(mirror.published) != 1 {
		t.Fatalf("expected 1 mirror publish, got %d", len(mirror.published))
	}
	if mirror.published[0] != publisher.published[0] {
		t.Errorf("mirror message differs from primary message")
	}
}
