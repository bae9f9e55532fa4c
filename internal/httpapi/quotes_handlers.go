package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ruamngan.app/internal/quotes"
)

// quotationView is the list and detail shape of a quotation.
type quotationView struct {
	Number     string  `json:"number"`
	Seller     string  `json:"seller"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Total      float64 `json:"total"`
	IssueDate  string  `json:"issueDate"`
	ExpiryDate string  `json:"expiryDate"`
	Status     string  `json:"status"`
}

const quotationDateLayout = "2006-01-02"

func toQuotationView(q quotes.Quotation) quotationView {
	return quotationView{
		Number:     q.Number,
		Seller:     q.Seller,
		Item:       q.Item,
		Quantity:   q.Quantity,
		UnitPrice:  q.UnitPrice,
		Total:      q.Total(),
		IssueDate:  q.IssueDate.Format(quotationDateLayout),
		ExpiryDate: q.ExpiryDate.Format(quotationDateLayout),
		Status:     string(q.Status),
	}
}

// handleLawDashboard summarizes the quotation book: per-status counts
// plus how many quotations expire within the next 30 days.
func (a *API) handleLawDashboard(w http.ResponseWriter, r *http.Request) {
	all, err := a.quotes.List(r.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("list quotations")
		writeError(w, r, http.StatusInternalServerError, "could not load quotations")
		return
	}

	counts := map[string]int{}
	expiringSoon := 0
	horizon := time.Now().AddDate(0, 0, 30)
	for _, q := range all {
		counts[string(q.Status)]++
		if q.Status != quotes.StatusExpired && q.ExpiryDate.Before(horizon) {
			expiringSoon++
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":        len(all),
		"byStatus":     counts,
		"expiringSoon": expiringSoon,
	})
}

func (a *API) handleQuotationList(w http.ResponseWriter, r *http.Request) {
	all, err := a.quotes.List(r.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("list quotations")
		writeError(w, r, http.StatusInternalServerError, "could not load quotations")
		return
	}
	views := make([]quotationView, 0, len(all))
	for _, q := range all {
		views = append(views, toQuotationView(q))
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotations": views})
}

func (a *API) handleQuotationInfo(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toQuotationView(q))
}
