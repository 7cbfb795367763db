package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/roi-server/internal/logging"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		stopTimer := logData.AddTiming("pingMs")
		err := h.DB.PingContext(req.Context())
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database unreachable: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
