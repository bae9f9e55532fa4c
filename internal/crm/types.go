// Package crm talks to the external tracker API and derives the
// display fields the tracker dashboard needs. The API's contract is
// not owned here: payloads are taken as-is and unknown values degrade
// to passthrough, never to an error.
package crm

// Task is a CRM work item as returned by GET {base}/api/tasks.
type Task struct {
	ID           int64  `json:"id"`
	Subject      string `json:"subject"`
	Status       string `json:"status"`
	DueDate      string `json:"dueDate"`      // YYYY-MM-DD
	ReminderTime string `json:"reminderTime"` // HH:MM, optional
	Priority     string `json:"priority"`
	LeadID       string `json:"leadId"`
}

// Prospect is a CRM contact record as returned by GET {base}/api/leads.
type Prospect struct {
	LeadID    int64  `json:"leadID"`
	Prefix    string `json:"prefix"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
