package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ruamngan.app/internal/audit"
	"ruamngan.app/internal/docgen"
	"ruamngan.app/internal/obs"
	"ruamngan.app/internal/quotes"
)

// handleQuotationExport captures the quotation sheet and streams the
// PDF. A second trigger while one runs gets 409 instead of queueing.
func (a *API) handleQuotationExport(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	q, err := a.quotes.Find(r.Context(), number)
	if errors.Is(err, quotes.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "quotation not found")
		return
	}
	if err != nil {
		a.log.Error().Err(err).Str("number", number).Msg("find quotation")
		writeError(w, r, http.StatusInternalServerError, "could not load quotation")
		return
	}

	start := time.Now()
	art, err := a.exporter.Export(r.Context(), docgen.QuotationRegion(q), q.Number)
	if err != nil {
		a.writeExportError(w, r, err, start)
		return
	}
	obs.ObserveExport("success", time.Since(start))

	_ = audit.LogEvent(r.Context(), "portal.export", map[string]any{
		"number":   q.Number,
		"filename": art.Filename,
	})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", art.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

// handleQuotationPreview captures the quotation sheet and returns it
// as an inline PNG.
func (a *API) handleQuotationPreview(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	q, err := a.quotes.Find(r.Context(), number)
	if errors.Is(err, quotes.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "quotation not found")
		return
	}
	if err != nil {
		a.log.Error().Err(err).Str("number", number).Msg("find quotation")
		writeError(w, r, http.StatusInternalServerError, "could not load quotation")
		return
	}

	start := time.Now()
	data, err := a.exporter.Preview(r.Context(), docgen.QuotationRegion(q))
	if err != nil {
		a.writeExportError(w, r, err, start)
		return
	}
	obs.ObserveExport("success", time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeExportError maps pipeline failures to their HTTP statuses and
// records the export metric per outcome.
func (a *API) writeExportError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	switch {
	case errors.Is(err, docgen.ErrBusy):
		obs.ObserveExport("busy", time.Since(start))
		writeError(w, r, http.StatusConflict, "export already in progress")
	case errors.Is(err, docgen.ErrCapabilityUnavailable):
		obs.ObserveExport("unavailable", time.Since(start))
		writeError(w, r, http.StatusServiceUnavailable, a.exporter.Status())
	default:
		obs.ObserveExport("failure", time.Since(start))
		a.log.Error().Err(err).Msg("export quotation")
		writeError(w, r, http.StatusInternalServerError, a.exporter.Status())
	}
}
