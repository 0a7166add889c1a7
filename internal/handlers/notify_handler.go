package handlers

import (
	"net/http"

	"nbanotifier/internal/pipeline"
)

// NotifyHandler runs one notify cycle per request. The trigger payload is
// opaque: any scheduled invocation means "run now", so the body is never
// inspected.
func NotifyHandler(w http.ResponseWriter, r *http.Request, p *pipeline.Pipeline) {
	result := p.Run(r.Context())

	w.WriteHeader(result.Code)
	w.Write([]byte(result.Body))
}
