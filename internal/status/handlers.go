package status

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/mirror"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// SlicesResponse is the body of /slices
type SlicesResponse struct {
	Ready  bool               `json:"ready"`
	Slices []mirror.SliceInfo `json:"slices"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleHealthz reports liveness plus any front-end checks. A failing
// check degrades the status without taking the process down.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: StatusOK,
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
	}

	if len(s.checks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		names := make([]string, 0, len(s.checks))
		for name := range s.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp.Checks = make(map[string]string, len(names))
		for _, name := range names {
			if err := s.checks[name].CheckHealth(ctx); err != nil {
				logger.FromContext(ctx).Warn(LogMsgCheckFailed, "check", name, "error", err)
				resp.Checks[name] = err.Error()
				resp.Status = StatusDegraded
				continue
			}
			resp.Checks[name] = StatusOK
		}
	}

	status := http.StatusOK
	if resp.Status != StatusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// handleReadyz is OK once every eager slice has loaded at least once
func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if !s.source.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: MsgNotReady})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
}

func (s *Server) handleSlices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SlicesResponse{
		Ready:  s.source.Ready(),
		Slices: s.source.Slices(),
	})
}
