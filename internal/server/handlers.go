package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fetch"
	"github.com/agbru/sampler/internal/fibonacci"
	"github.com/agbru/sampler/internal/logging"
	"github.com/agbru/sampler/internal/orchestration"
	"github.com/agbru/sampler/internal/sysmon"
)

const invalidNumberMessage = "Please enter a valid non-negative number."

// parseIndex validates a sequence index given as text.
func (s *Server) parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, apperrors.ValidationError{Field: "n", Message: invalidNumberMessage}
	}
	if n > s.cfg.MaxN {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("Please enter a number no greater than %d.", s.cfg.MaxN),
		}
	}
	return n, nil
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page formPage) {
	page.MaxN = s.cfg.MaxN
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, page); err != nil {
		s.logger.Error("render page", err)
	}
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, formPage{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("n")
	page := formPage{Input: raw}

	n, err := s.parseIndex(raw)
	if err != nil {
		page.Result = &formResult{Message: validationMessage(err)}
		s.renderPage(w, http.StatusUnprocessableEntity, page)
		return
	}
	seq, err := fibonacci.Sequence(n)
	if err != nil {
		page.Result = &formResult{Message: invalidNumberMessage}
		s.renderPage(w, http.StatusUnprocessableEntity, page)
		return
	}
	page.Result = &formResult{Success: true, N: n, Sequence: fibonacci.Join(seq, ", ")}
	s.renderPage(w, http.StatusOK, page)
}

type sequenceResponse struct {
	N        int        `json:"n"`
	Sequence []*big.Int `json:"sequence"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", err)
	}
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseIndex(r.URL.Query().Get("n"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationMessage(err)})
		return
	}
	seq, err := fibonacci.Sequence(n)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, sequenceResponse{N: n, Sequence: seq})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if s.weather == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "weather source not configured"})
		return
	}
	op, err := s.weather.Weather(r.URL.Query().Get("city"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := orchestration.Invoke(r.Context(), s.orch, op)
	if err != nil {
		status, kind := http.StatusBadGateway, apperrors.KindUnknown
		var norm *apperrors.NormalizedError
		if errors.As(err, &norm) {
			kind = norm.Kind
			if kind == apperrors.KindTimeout {
				status = http.StatusGatewayTimeout
			}
		}
		s.logger.Error("weather request failed", err,
			logging.String("request_id", middleware.GetReqID(r.Context())))
		s.writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind.String()})
		return
	}
	s.writeJSON(w, http.StatusOK, weatherResponse(report))
}

type weatherBody struct {
	City        string  `json:"city"`
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	TempUnit    string  `json:"temperature_unit"`
	WindSpeed   float64 `json:"wind_speed"`
	WindUnit    string  `json:"wind_speed_unit"`
	WeatherCode int     `json:"weather_code"`
}

func weatherResponse(r fetch.WeatherReport) weatherBody {
	return weatherBody{
		City:        r.City,
		Time:        r.Current.Time,
		Temperature: r.Current.Temperature,
		TempUnit:    r.CurrentUnits.Temperature,
		WindSpeed:   r.Current.WindSpeed,
		WindUnit:    r.CurrentUnits.WindSpeed,
		WeatherCode: r.Current.WeatherCode,
	}
}

type healthBody struct {
	Status string       `json:"status"`
	System sysmon.Stats `json:"system"`
}

// handleHealth reports liveness together with the latest system usage.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthBody{Status: "ok", System: s.system.Stats()})
}

// handleMetrics serves /metrics. Only GET is allowed.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// validationMessage returns the user-facing part of a ValidationError.
func validationMessage(err error) string {
	var v apperrors.ValidationError
	if errors.As(err, &v) {
		return v.Message
	}
	return err.Error()
}
