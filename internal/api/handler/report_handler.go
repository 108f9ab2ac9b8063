package handler

import (
	"ecommerce-dashboard/internal/model"
	"ecommerce-dashboard/internal/pipeline"
	"ecommerce-dashboard/internal/report"
	"ecommerce-dashboard/pkg/router"
	"ecommerce-dashboard/pkg/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// ReportPath is the route of a single report, the wildcard being its kind
const ReportPath = "/api/v1/reports/*"

// Options are the dashboard settings the handlers serve with
type Options struct {
	TopN           int
	DefaultYears   []int
	AvailableYears []int
}

// Handler serves reports over a dataset loaded once at startup
type Handler struct {
	table *report.Table
	opts  Options
}

// New creates the handlers for table. The table is shared read-only by all
// requests.
func New(table *report.Table, opts Options) *Handler {
	return &Handler{table: table, opts: opts}
}

// ListReports lists the available reports
// @Summary List reports
// @Description Get the selectable report kinds with the available and default purchase years
// @Tags reports
// @Produce json
// @Success 200 {object} model.Catalog
// @Router /api/v1/reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	catalog := model.Catalog{
		AvailableYears: slices.Clone(h.opts.AvailableYears),
		DefaultYears:   slices.Clone(h.opts.DefaultYears),
	}
	for _, k := range report.Kinds() {
		catalog.Kinds = append(catalog.Kinds, model.KindInfo{ID: k.String(), Label: k.Label()})
	}
	writeJSON(w, http.StatusOK, catalog)
}

// GetReport builds one report
// @Summary Build a report
// @Description Filter the orders to the selected purchase years and build the chart series and conclusion of a report
// @Tags reports
// @Produce json
// @Param kind path string true "Report kind" Enums(trend-review, top-spending, best-worst-selling)
// @Param years query string false "Comma-separated purchase years, the configured defaults when absent"
// @Success 200 {object} model.Report
// @Failure 400 {object} model.ErrorResponse "Unknown kind or invalid years"
// @Failure 404 {object} model.ErrorResponse "No report path"
// @Failure 422 {object} model.ErrorResponse "Nothing to report for the selected years"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/v1/reports/{kind} [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDOf(r)

	parts := router.Wildcards(r.URL.Path, ReportPath)
	if len(parts) != 1 || parts[0] == "" || strings.Contains(parts[0], "/") {
		writeError(w, http.StatusNotFound, fmt.Errorf("no report at %s", r.URL.Path), requestID)
		return
	}

	years := h.opts.DefaultYears
	if q := r.URL.Query(); q.Has("years") {
		parsed, err := utils.ParseYears(q.Get("years"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", report.ErrInvalidFilter, err), requestID)
			return
		}
		years = parsed
	}
	if err := h.checkYears(years); err != nil {
		writeError(w, statusFor(err), err, requestID)
		return
	}

	rep, err := pipeline.Run(h.table, model.ReportRequest{Kind: parts[0], Years: years}, pipeline.Options{TopN: h.opts.TopN})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Errorf("❌ report %s failed [%s]: %v", parts[0], requestID, err)
		}
		writeError(w, status, err, requestID)
		return
	}

	rep.ID = requestID
	writeJSON(w, http.StatusOK, rep)
}

// Health reports the server state
// @Summary Health check
// @Description Report liveness and the number of loaded dataset rows
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"rows":   h.table.Len(),
	})
}

func (h *Handler) checkYears(years []int) error {
	if len(years) == 0 {
		return fmt.Errorf("%w: years is empty", report.ErrInvalidFilter)
	}
	if len(h.opts.AvailableYears) == 0 {
		return nil
	}
	for _, y := range years {
		if !slices.Contains(h.opts.AvailableYears, y) {
			return fmt.Errorf("%w: year %d is not one of %v", report.ErrInvalidFilter, y, h.opts.AvailableYears)
		}
	}
	return nil
}

// statusFor maps report errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, report.ErrInvalidFilter),
		errors.Is(err, report.ErrUnknownReportKind),
		errors.Is(err, report.ErrInvalidRank):
		return http.StatusBadRequest
	case errors.Is(err, report.ErrEmptyResult):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func requestIDOf(r *http.Request) string {
	if id := r.Header.Get(router.RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error, requestID string) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), RequestID: requestID})
}
