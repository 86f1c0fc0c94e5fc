package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type planResponse struct {
	Success   bool         `json:"success"`
	RequestID string       `json:"request_id"`
	Data      *domain.Plan `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := config.ParseProfile(fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), profile)
	if err != nil {
		if domain.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("plan generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id := uuid.New().String()
	w.Header().Set("X-Request-Id", id)
	writeJSON(w, http.StatusOK, planResponse{Success: true, RequestID: id, Data: &plan})
}

const riskAnswersKey = "risk_answers"

// decodeFields flattens a JSON object into the string fields ParseProfile
// expects. Numbers keep their literal text, so 30.5 fails the whole-number
// check rather than being truncated. risk_answers may be given as a list or
// as a q1..q3 object; an explicit risk_qN key takes precedence over the
// matching risk_answers entry.
func decodeFields(body io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if k != riskAnswersKey {
			fields[k] = scalarString(v)
		}
	}

	var answers [domain.RiskQuestionCount]any
	switch v := raw[riskAnswersKey].(type) {
	case []any:
		copy(answers[:], v)
	case map[string]any:
		for i := range answers {
			answers[i] = v["q"+strconv.Itoa(i+1)]
		}
	}
	for i, a := range answers {
		key := config.RiskField(i)
		if _, set := fields[key]; !set && a != nil {
			fields[key] = scalarString(a)
		}
	}
	return fields, nil
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		// Objects and arrays fail downstream parsing.
		b, _ := json.Marshal(x)
		return string(b)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
