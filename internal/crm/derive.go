package crm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnknownContact is shown when a task's lead has no matching prospect.
const UnknownContact = "ไม่พบผู้ติดต่อ"

const (
	dueDateLayout  = "2006-01-02"
	reminderLayout = "15:04"
)

// statusLabels maps tracker statuses to their Thai display labels.
// Unknown statuses pass through unmapped.
var statusLabels = map[string]string{
	"Open":         "เปิด",
	"NotStarted":   "ไม่ได้เริ่ม",
	"Postponed":    "เลื่อนเวลา",
	"InProgress":   "กำลังคืบหน้า",
	"Completed":    "เสร็จสมบูรณ์",
	"WaitingInput": "รอข้อมูลอินพุต",
	"Closed":       "ปิดแล้ว",
}

// StatusLabel returns the display label for a task status.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// Deadline is the instant a task becomes overdue: the due date at its
// reminder time when one is set, otherwise the due date at
// 23:59:59.999 local time.
func Deadline(t Task, loc *time.Location) (time.Time, error) {
	due, err := time.ParseInLocation(dueDateLayout, strings.TrimSpace(t.DueDate), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("crm: parse due date %q: %w", t.DueDate, err)
	}
	if reminder := strings.TrimSpace(t.ReminderTime); reminder != "" {
		hm, err := time.Parse(reminderLayout, reminder)
		if err == nil {
			return time.Date(due.Year(), due.Month(), due.Day(),
				hm.Hour(), hm.Minute(), 0, 0, loc), nil
		}
	}
	return time.Date(due.Year(), due.Month(), due.Day(),
		23, 59, 59, 999_000_000, loc), nil
}

// Overdue reports whether the task's deadline is strictly before now.
// Tasks with unparsable due dates are never overdue.
func Overdue(t Task, now time.Time) bool {
	deadline, err := Deadline(t, now.Location())
	if err != nil {
		return false
	}
	return deadline.Before(now)
}

// DaysUntilDue is the calendar-day distance from today to the due
// date, both normalized to local midnight, rounded up. Only meaningful
// for tasks that are not overdue.
func DaysUntilDue(t Task, now time.Time) (int, error) {
	loc := now.Location()
	due, err := time.ParseInLocation(dueDateLayout, strings.TrimSpace(t.DueDate), loc)
	if err != nil {
		return 0, fmt.Errorf("crm: parse due date %q: %w", t.DueDate, err)
	}
	todayMid := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dueMid := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	return int(math.Ceil(dueMid.Sub(todayMid).Hours() / 24)), nil
}

// OpenTasks filters to tasks whose status is not Completed.
func OpenTasks(tasks []Task) []Task {
	open := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != "Completed" {
			open = append(open, t)
		}
	}
	return open
}

// ContactName joins the task to its prospect by lead id and composes
// "{prefix} {firstName} {lastName}" trimmed of surrounding whitespace.
// A missing or unparsable lead reference yields UnknownContact.
func ContactName(t Task, prospects []Prospect) string {
	id, err := strconv.ParseInt(strings.TrimSpace(t.LeadID), 10, 64)
	if err != nil {
		return UnknownContact
	}
	for _, p := range prospects {
		if p.LeadID == id {
			return strings.TrimSpace(fmt.Sprintf("%s %s %s", p.Prefix, p.FirstName, p.LastName))
		}
	}
	return UnknownContact
}
