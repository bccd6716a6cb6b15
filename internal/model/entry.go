package model

import (
	"strings"
	"time"
	"unicode"
)

// TimeInterval is the span a time entry covers. An absent end marks the entry
// as open, i.e. a currently running timer.
type TimeInterval struct {
	Start time.Time
	End   *time.Time
}

// TimeEntry represents a single tracked span of work as returned by the
// service. Project and task association are optional.
type TimeEntry struct {
	ID          string
	UserID      string
	ProjectID   *string
	ProjectName string
	TaskID      *string
	TaskName    string
	Description string
	Billable    bool
	TagIDs      []string
	Interval    TimeInterval
}

// Open returns whether the entry represents a running timer.
func (e *TimeEntry) Open() bool { return e.Interval.End == nil }

// TimeEntryRequest is the write-side projection of a TimeEntry, used both for
// creation and for updates. The service expects updates to carry every field,
// so an update request is built as a full copy of the existing entry with the
// requested overrides applied on top.
type TimeEntryRequest struct {
	Start       time.Time
	End         *time.Time
	Description string
	Billable    bool
	ProjectID   *string
	TaskID      *string
	TagIDs      []string
}

// Project is a workspace project.
type Project struct {
	ID    string
	Name  string
	Color string
}

// ProjectRequest describes a project to be created.
type ProjectRequest struct {
	Name     string
	Color    string
	Billable bool
}

// Workspace is the service's top-level grouping of users, projects and
// entries.
type Workspace struct {
	ID   string
	Name string
}

// User is the authenticated service user.
type User struct {
	ID              string
	Name            string
	ActiveWorkspace string
}

// FindActive returns the first open entry in the given order, or nil if every
// entry is closed. The service returns entries most recent first, so with a
// well-behaved backend at most one open entry exists and it is the first one.
// Should the backend ever hand us several open entries, the first is treated
// as authoritative and the rest are ignored.
func FindActive(entries []TimeEntry) *TimeEntry {
	for i := range entries {
		if entries[i].Open() {
			return &entries[i]
		}
	}
	return nil
}

// FindProject resolves a user-supplied project reference against the
// workspace's project list. A reference matches on exact id or on
// case-insensitive substring of the project name; the first match wins.
// Returns nil if nothing matches.
func FindProject(projects []Project, nameOrID string) *Project {
	query := strings.ToLower(strings.TrimSpace(nameOrID))
	if query == "" {
		return nil
	}
	for i := range projects {
		if projects[i].ID == nameOrID {
			return &projects[i]
		}
		if strings.Contains(strings.ToLower(projects[i].Name), query) {
			return &projects[i]
		}
	}
	return nil
}

// SanitizeDescription strips control characters from a description.
func SanitizeDescription(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SameDay returns whether two times fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
