package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tally-networks/finance-bot/internal/logging"
)

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

type statusResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return errors.New("status: unknown path " + req.URL.Path)
	}
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusResponse{
		Status: "OK",
		Time:   time.Now().Format(time.RFC3339),
	})
}
