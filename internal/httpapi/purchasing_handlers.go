package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ruamngan.app/internal/audit"
	"ruamngan.app/internal/ids"
	"ruamngan.app/internal/purchasing"
)

type requestCreatePayload struct {
	Requester      string  `json:"requester"`
	Department     string  `json:"department"`
	Item           string  `json:"item"`
	Quantity       int     `json:"quantity"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	NeededBy       string  `json:"neededBy"`
	Justification  string  `json:"justification"`
}

// handlePODashboard summarizes the purchase-request pipeline.
func (a *API) handlePODashboard(w http.ResponseWriter, r *http.Request) {
	all, err := a.purchasing.List()
	if err != nil {
		a.log.Error().Err(err).Msg("list purchase requests")
		writeError(w, r, http.StatusInternalServerError, "could not load purchase requests")
		return
	}
	counts := map[string]int{}
	var pipeline float64
	for _, pr := range all {
		counts[pr.Status]++
		if pr.Status != "approved" {
			pipeline += pr.EstimatedPrice * float64(pr.Quantity)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":         len(all),
		"byStatus":      counts,
		"pipelineValue": pipeline,
	})
}

func (a *API) handleRequestList(w http.ResponseWriter, r *http.Request) {
	all, err := a.purchasing.List()
	if err != nil {
		a.log.Error().Err(err).Msg("list purchase requests")
		writeError(w, r, http.StatusInternalServerError, "could not load purchase requests")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": all})
}

// handleRequestCreate validates the creation form and assigns the new
// request its running number.
func (a *API) handleRequestCreate(w http.ResponseWriter, r *http.Request) {
	var payload requestCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	payload.Requester = strings.TrimSpace(payload.Requester)
	payload.Item = strings.TrimSpace(payload.Item)
	switch {
	case payload.Requester == "":
		writeError(w, r, http.StatusBadRequest, "requester is required")
		return
	case payload.Item == "":
		writeError(w, r, http.StatusBadRequest, "item is required")
		return
	case payload.Quantity <= 0:
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	}

	var neededBy *time.Time
	if s := strings.TrimSpace(payload.NeededBy); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "neededBy must be YYYY-MM-DD")
			return
		}
		neededBy = &t
	}

	pr := purchasing.PurchaseRequest{
		Number:         ids.DocumentNumber("PR"),
		Requester:      payload.Requester,
		Department:     strings.TrimSpace(payload.Department),
		Item:           payload.Item,
		Quantity:       payload.Quantity,
		EstimatedPrice: payload.EstimatedPrice,
		NeededBy:       neededBy,
		Justification:  strings.TrimSpace(payload.Justification),
		Status:         "draft",
	}
	if err := a.purchasing.Create(&pr); err != nil {
		a.log.Error().Err(err).Msg("create purchase request")
		writeError(w, r, http.StatusInternalServerError, "could not create purchase request")
		return
	}

	_ = audit.LogEvent(r.Context(), "portal.request.created", map[string]any{
		"number": pr.Number,
	})
	writeJSON(w, http.StatusCreated, pr)
}

func (a *API) handleRequestInfo(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]
	pr, err := a.purchasing.Find(number)
	if errors.Is(err, purchasing.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "purchase request not found")
		return
	}
	if err != nil {
		a.log.Error().Err(err).Str("number", number).Msg("find purchase request")
		writeError(w, r, http.StatusInternalServerError, "could not load purchase request")
		return
	}
	writeJSON(w, http.StatusOK, pr)
}
