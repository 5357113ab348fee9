package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

type Server struct {
	svc  *application.FXRatesService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.FXRatesService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the probe behind /readyz.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) GetLatest(w http.ResponseWriter, r *http.Request) {
	from, to, ok := bindPair(w, r)
	if !ok {
		return
	}
	out, err := s.svc.Latest(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	from, to, ok := bindPair(w, r)
	if !ok {
		return
	}
	var start, end *string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "start", q, &start); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "end", q, &end); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, d := range []*string{start, end} {
		if d != nil && !validDate(*d) {
			writeError(w, http.StatusBadRequest, "dates must be YYYY-MM-DD")
			return
		}
	}
	out, err := s.svc.TimeSeries(r.Context(), from, to, deref(start), deref(end))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetForDate(w http.ResponseWriter, r *http.Request) {
	var date string
	if err := runtime.BindStyledParameterWithLocation("simple", false, "date", runtime.ParamLocationPath, chi.URLParam(r, "date"), &date); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validDate(date) {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	from, to, ok := bindPair(w, r)
	if !ok {
		return
	}
	out, err := s.svc.ForDate(r.Context(), date, from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	out, err := s.svc.Currencies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetConvert(w http.ResponseWriter, r *http.Request) {
	var amount float64
	var from, to string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "amount", q, &amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "from", q, &from); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "to", q, &to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := s.svc.Convert(r.Context(), amount, from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// bindPair reads the optional from/to query parameters.
func bindPair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var from, to *string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "from", q, &from); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", q, &to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return deref(from), deref(to), true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Code: status, Message: msg})
}

// writeServiceError maps client errors to responses. Upstream 4xx statuses pass
// through; other upstream failures become 502.
func writeServiceError(w http.ResponseWriter, err error) {
	var cf *domain.CallFailedError
	switch {
	case domain.KindOf(err) == domain.KindBadInput:
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &cf):
		if cf.StatusCode >= 400 && cf.StatusCode < 500 {
			writeError(w, cf.StatusCode, cf.Reason)
			return
		}
		writeError(w, http.StatusBadGateway, cf.Error())
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
