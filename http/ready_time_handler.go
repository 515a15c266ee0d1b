package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"rice-timer/domain"
	"rice-timer/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	maxRequestBodyBytes = 1 << 16
)

type ReadyTimeService interface {
	Calculate(ctx context.Context, req domain.CalculationRequest) (domain.Calculation, error)
	History(ctx context.Context, limit int) ([]domain.Calculation, error)
}

type ReadyTimeHandler struct {
	service ReadyTimeService
	logger  zerolog.Logger
}

func NewReadyTimeHandler(service ReadyTimeService, logger zerolog.Logger) *ReadyTimeHandler {
	return &ReadyTimeHandler{
		service: service,
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

// Calculate handles a JSON encoded CalculateRequest.
func (h *ReadyTimeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		h.writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req CalculateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("decoding request body")
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.calculate(w, r, req)
}

// CalculateQuery handles ?target=HH:MM&cook=N&step=H&now=RFC3339.
func (h *ReadyTimeHandler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := CalculateRequest{Target: q.Get("target")}

	if v := q.Get("cook"); v != "" {
		cook, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "cook must be a whole number of minutes")
			return
		}
		req.CookMinutes = &cook
	}
	if v := q.Get("step"); v != "" {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "step must be a number of hours")
			return
		}
		req.StepHours = &step
	}
	if v := q.Get("now"); v != "" {
		now, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "now must be an RFC3339 timestamp")
			return
		}
		req.Now = &now
	}

	h.calculate(w, r, req)
}

// History lists recent calculations, newest first.
func (h *ReadyTimeHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	calcs, err := h.service.History(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("listing calculations")
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, newCalculationResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *ReadyTimeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ReadyTimeHandler) calculate(w http.ResponseWriter, r *http.Request, req CalculateRequest) {
	calc, err := h.service.Calculate(r.Context(), req.toDomain())
	if err != nil {
		if isValidationError(err) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("calculating countdown")
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, newCalculationResponse(calc))
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidStep) ||
		errors.Is(err, service.ErrInvalidTarget) ||
		errors.Is(err, service.ErrInvalidCookTime)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func (h *ReadyTimeHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug().Err(err).Msg("writing response")
	}
}

func (h *ReadyTimeHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
