package crm

import (
	"testing"
	"time"
)

func date(t *testing.T, y int, m time.Month, d int) string {
	t.Helper()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local).Format("2006-01-02")
}

func TestOverdueWithReminderTime(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 58, 0, 0, time.Local)
	task := Task{DueDate: "2026-08-28", ReminderTime: "23:59"}

	if Overdue(task, now) {
		t.Fatalf("23:58 must not be overdue for a 23:59 reminder")
	}

	later := time.Date(2026, 8, 28, 23, 59, 1, 0, time.Local)
	if !Overdue(task, later) {
		t.Fatalf("23:59:01 must be overdue for a 23:59 reminder")
	}

	exact := time.Date(2026, 8, 28, 23, 59, 0, 0, time.Local)
	if Overdue(task, exact) {
		t.Fatalf("the deadline instant itself is not overdue (strictly before)")
	}
}

func TestOverdueWithoutReminderTime(t *testing.T) {
	task := Task{DueDate: "2026-08-27"}

	morning := time.Date(2026, 8, 28, 0, 0, 1, 0, time.Local)
	if !Overdue(task, morning) {
		t.Fatalf("yesterday's task is overdue at any time today")
	}

	sameDay := time.Date(2026, 8, 27, 23, 59, 59, 0, time.Local)
	if Overdue(task, sameDay) {
		t.Fatalf("a task is not overdue before end of its due day")
	}
}

func TestOverdueUnparsableDueDate(t *testing.T) {
	task := Task{DueDate: "soon"}
	if Overdue(task, time.Now()) {
		t.Fatalf("unparsable due dates must degrade to not-overdue")
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 45, 0, 0, time.Local)
	task := Task{DueDate: date(t, 2026, 8, 30)}

	days, err := DaysUntilDue(task, now)
	if err != nil {
		t.Fatalf("days until due: %v", err)
	}
	if days != 2 {
		t.Fatalf("expected 2 days, got %d", days)
	}

	early := time.Date(2026, 8, 28, 0, 0, 1, 0, time.Local)
	if days, _ := DaysUntilDue(task, early); days != 2 {
		t.Fatalf("time of day must not change the day count, got %d", days)
	}

	today := Task{DueDate: date(t, 2026, 8, 28)}
	if days, _ := DaysUntilDue(today, now); days != 0 {
		t.Fatalf("expected 0 for a task due today, got %d", days)
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"Open":         "เปิด",
		"NotStarted":   "ไม่ได้เริ่ม",
		"Postponed":    "เลื่อนเวลา",
		"InProgress":   "กำลังคืบหน้า",
		"Completed":    "เสร็จสมบูรณ์",
		"WaitingInput": "รอข้อมูลอินพุต",
		"Closed":       "ปิดแล้ว",
		"UnknownValue": "UnknownValue",
		"":             "",
	}
	for status, want := range cases {
		if got := StatusLabel(status); got != want {
			t.Fatalf("StatusLabel(%q)=%q, want %q", status, got, want)
		}
	}
}

func TestOpenTasks(t *testing.T) {
	tasks := []Task{
		{ID: 1, Status: "Completed"},
		{ID: 2, Status: "Open"},
		{ID: 3, Status: "WaitingInput"},
	}
	open := OpenTasks(tasks)
	if len(open) != 2 {
		t.Fatalf("expected 2 open tasks, got %d", len(open))
	}
	for _, task := range open {
		if task.Status == "Completed" {
			t.Fatalf("completed task leaked through the filter")
		}
	}
}

func TestContactNameJoin(t *testing.T) {
	prospects := []Prospect{
		{LeadID: 7, Prefix: "คุณ", FirstName: "สมชาย", LastName: "ใจดี"},
		{LeadID: 9, Prefix: "", FirstName: "Anan", LastName: "P."},
	}

	task := Task{LeadID: "7"}
	if got := ContactName(task, prospects); got != "คุณ สมชาย ใจดี" {
		t.Fatalf("unexpected joined name %q", got)
	}

	noPrefix := Task{LeadID: "9"}
	if got := ContactName(noPrefix, prospects); got != "Anan P." {
		t.Fatalf("expected surrounding whitespace trimmed, got %q", got)
	}

	missing := Task{LeadID: "42"}
	if got := ContactName(missing, prospects); got != UnknownContact {
		t.Fatalf("expected placeholder for missing prospect, got %q", got)
	}

	garbage := Task{LeadID: "abc"}
	if got := ContactName(garbage, prospects); got != UnknownContact {
		t.Fatalf("expected placeholder for unparsable lead id, got %q", got)
	}
}
