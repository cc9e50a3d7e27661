package http

import (
	"net/http"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/response"
)

type DiagnosticsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type diagnosticsHandlerImpl struct {
	notion config.NotionConfig
}

func NewDiagnosticsHandler(notion config.NotionConfig) DiagnosticsHandler {
	return &diagnosticsHandlerImpl{
		notion: notion,
	}
}

// Get implements DiagnosticsHandler. It reports only whether each store
// credential is set, never the values.
func (h *diagnosticsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"message":   "API 테스트 성공!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"env":       h.notion.Presence(),
	})
}
