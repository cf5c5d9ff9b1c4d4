package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/iwvelando/rate-converter/internal/config"
	"github.com/iwvelando/rate-converter/pkg/constants"
	"github.com/iwvelando/rate-converter/pkg/format"
	"github.com/iwvelando/rate-converter/pkg/rates"
	"github.com/iwvelando/rate-converter/pkg/validation"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var assets embed.FS

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"isPeriod": func(opt, raw string) bool { return string(rates.NormalizePeriod(raw)) == opt },
	"isType":   func(opt, raw string) bool { return string(rates.NormalizeRateType(raw)) == opt },
	"isTiming": func(opt, raw string) bool { return string(rates.NormalizeTiming(raw)) == opt },
}).ParseFS(assets, "templates/index.html"))

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the conversion form and API.
func NewHandler(logger *zap.Logger, cfg config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.Server.MaxBodySizeBytes(),
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Conversion form
	mux.HandleFunc("/", h.handleIndex)

	// JSON conversion endpoint
	mux.HandleFunc("/api/convert", h.handleConvertAPI)

	// Period table listing
	mux.HandleFunc("/api/periods", h.handlePeriods)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	if !cfg.RateLimit.Enabled {
		return mux
	}
	store := newLimiterStore(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	return rateLimitMiddleware(logger, store, mux)
}

type option struct {
	Value string
	Label string
}

type pageData struct {
	Form      validation.Form
	Result    *pageResult
	Error     string
	Periods   []option
	RateTypes []option
	Timings   []option
	Version   string
}

type pageResult struct {
	Percent string
	Label   string
}

func (h *handler) newPage(form validation.Form) pageData {
	periods := make([]option, 0, len(rates.Periods()))
	for _, p := range rates.Periods() {
		periods = append(periods, option{Value: string(p.Key), Label: fmt.Sprintf("%s (%d/year)", p.Key, p.PeriodsPerYear)})
	}

	return pageData{
		Form:    form.WithSharedTiming(),
		Periods: periods,
		RateTypes: []option{
			{Value: string(rates.Nominal), Label: "nominal"},
			{Value: string(rates.Effective), Label: "effective"},
			{Value: string(rates.EffectiveAnnual), Label: "annual effective (TEA)"},
		},
		Timings: []option{
			{Value: string(rates.Due), Label: "due"},
			{Value: string(rates.Anticipated), Label: "anticipated"},
		},
		Version: h.version,
	}
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.renderPage(w, http.StatusOK, h.newPage(validation.Form{}))
	case http.MethodPost:
		h.handleFormSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFormSubmit"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := r.ParseForm(); err != nil {
		page := h.newPage(validation.Form{})
		status := http.StatusBadRequest
		page.Error = "invalid input"
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
			page.Error = fmt.Sprintf("submission exceeds limit of %d bytes", h.maxBodySize)
		}
		h.logger.Info("form rejected",
			zap.String("op", op),
			zap.Int("status", status),
			zap.Error(err),
		)
		h.renderPage(w, status, page)
		return
	}

	form := validation.FormFromLookup(r.PostForm.Get)
	page := h.newPage(form)

	result, err := h.convert(form, op)
	if err != nil {
		page.Error = rates.Message(err)
		h.renderPage(w, statusFor(err), page)
		return
	}

	page.Result = &pageResult{
		Percent: format.PercentWithSign(result.Percent, constants.DisplayDecimals),
		Label:   result.Label,
	}
	h.renderPage(w, http.StatusOK, page)
}

// convert runs a form through parsing and conversion, logging the outcome.
func (h *handler) convert(form validation.Form, op string) (rates.Result, error) {
	req, err := form.Request()
	if err == nil {
		var result rates.Result
		result, err = rates.Convert(req)
		if err == nil {
			h.logger.Debug("rate converted",
				zap.String("op", op),
				zap.Float64("value", req.Value),
				zap.String("origin", req.Origin.Label()),
				zap.String("destination", req.Destination.Label()),
				zap.Float64("percent", result.Percent),
			)
			return result, nil
		}
	}

	h.logger.Info("conversion rejected",
		zap.String("op", op),
		zap.String("kind", kindName(err)),
		zap.Error(err),
	)
	return rates.Result{}, err
}

type convertResponse struct {
	Result          float64 `json:"result"`
	Percent         float64 `json:"percent"`
	Formatted       string  `json:"formatted"`
	Label           string  `json:"label"`
	AnnualEffective float64 `json:"annualEffective"`
	PeriodicRate    float64 `json:"periodicRate"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (h *handler) handleConvertAPI(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConvertAPI"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	var form validation.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				errorResponse{Error: fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize)}, op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest,
			errorResponse{Error: fmt.Sprintf("failed to decode request: %v", err), Kind: kindName(rates.ErrMalformedInput)}, op)
		return
	}

	result, err := h.convert(form, op)
	if err != nil {
		resp := errorResponse{Error: rates.Message(err), Kind: kindName(err)}
		var verr *rates.ValidationError
		if errors.As(err, &verr) {
			resp.Field = verr.Field
		}
		h.writeJSON(w, statusFor(err), resp)
		return
	}

	h.writeJSON(w, http.StatusOK, convertResponse{
		Result:          result.Rate,
		Percent:         result.Percent,
		Formatted:       format.Percent(result.Percent, constants.DisplayDecimals),
		Label:           result.Label,
		AnnualEffective: result.AnnualEffective,
		PeriodicRate:    result.PeriodicRate,
	})
}

func (h *handler) handlePeriods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, rates.Periods())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// statusFor maps a conversion error to an HTTP status.
func statusFor(err error) int {
	switch rates.Kind(err) {
	case nil, rates.ErrMalformedInput:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func kindName(err error) string {
	switch rates.Kind(err) {
	case rates.ErrNegativeRate:
		return "negative_rate"
	case rates.ErrInvalidPeriod:
		return "invalid_period"
	case rates.ErrInvalidTiming:
		return "invalid_timing"
	case rates.ErrRateTooLarge:
		return "rate_too_large"
	case rates.ErrImpossibleRate:
		return "impossible_rate"
	default:
		return "malformed_input"
	}
}

func (h *handler) renderPage(w http.ResponseWriter, status int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, page); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, resp errorResponse, op string) {
	h.logger.Error("conversion request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", resp.Error),
	)

	h.writeJSON(w, status, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
