package httpapi

import (
	"errors"
	"net/http"
	"time"

	"ruamngan.app/internal/crm"
)

// taskView is one dashboard row: the raw task plus the fields derived
// on every refresh.
type taskView struct {
	ID           int64  `json:"id"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	DueDate      string `json:"dueDate"`
	ReminderTime string `json:"reminderTime,omitempty"`
	Priority     string `json:"priority"`
	ContactName  string `json:"contactName"`
	Overdue      bool   `json:"overdue"`
	// DaysUntilDue is omitted for overdue tasks and for tasks whose due
	// date does not parse.
	DaysUntilDue *int `json:"daysUntilDue,omitempty"`
}

// handleTrackerDashboard refreshes both tracker collections and
// derives the dashboard rows. A failed fetch surfaces as one retryable
// upstream error; the tasks error wins when both fetches fail.
func (a *API) handleTrackerDashboard(w http.ResponseWriter, r *http.Request) {
	col := a.crm.FetchBoth(r.Context())
	if err := col.Err(); err != nil {
		msg := "tracker API unreachable"
		var fe *crm.FetchError
		if errors.As(err, &fe) {
			msg = fe.Message
		}
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":     msg,
			"retryable": true,
		})
		return
	}

	now := time.Now()
	open := crm.OpenTasks(col.Tasks)
	views := make([]taskView, 0, len(open))
	overdueCount := 0
	for _, t := range open {
		v := taskView{
			ID:           t.ID,
			Subject:      t.Subject,
			Status:       t.Status,
			StatusLabel:  crm.StatusLabel(t.Status),
			DueDate:      t.DueDate,
			ReminderTime: t.ReminderTime,
			Priority:     t.Priority,
			ContactName:  crm.ContactName(t, col.Leads),
			Overdue:      crm.Overdue(t, now),
		}
		if v.Overdue {
			overdueCount++
		} else if days, err := crm.DaysUntilDue(t, now); err == nil {
			v.DaysUntilDue = &days
		}
		views = append(views, v)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tasks":   views,
		"total":   len(col.Tasks),
		"open":    len(open),
		"overdue": overdueCount,
	})
}
