package clockify

import (
	"time"

	"clockctl/internal/model"
)

// The service speaks RFC3339 UTC timestamps without fractional seconds.
const wireTimeLayout = "2006-01-02T15:04:05Z"

func wireTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}

// rawTimeEntry mirrors the JSON of a (hydrated) time entry.
type rawTimeEntry struct {
	ID           string      `json:"id"`
	Description  string      `json:"description"`
	UserID       string      `json:"userId"`
	Billable     bool        `json:"billable"`
	ProjectID    *string     `json:"projectId"`
	TaskID       *string     `json:"taskId"`
	Project      *rawProject `json:"project"`
	Task         *rawTask    `json:"task"`
	TagIDs       []string    `json:"tagIds"`
	TimeInterval rawInterval `json:"timeInterval"`
}

type rawInterval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

type rawProject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type rawTask struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ActiveWorkspace string `json:"activeWorkspace"`
}

type rawWorkspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r rawTimeEntry) toDomain() model.TimeEntry {
	entry := model.TimeEntry{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Billable:    r.Billable,
		TagIDs:      r.TagIDs,
		Interval:    model.TimeInterval{Start: r.TimeInterval.Start},
	}
	if r.TimeInterval.End != nil {
		end := *r.TimeInterval.End
		entry.Interval.End = &end
	}
	if r.ProjectID != nil {
		id := *r.ProjectID
		entry.ProjectID = &id
	}
	if r.Project != nil {
		entry.ProjectName = r.Project.Name
	}
	if r.TaskID != nil {
		id := *r.TaskID
		entry.TaskID = &id
	}
	if r.Task != nil {
		entry.TaskName = r.Task.Name
	}
	return entry
}

// rawEntryRequest is the write-side JSON of a time entry. Absent optional
// fields are omitted rather than sent as null.
type rawEntryRequest struct {
	Start       string   `json:"start"`
	End         *string  `json:"end,omitempty"`
	Description string   `json:"description"`
	Billable    bool     `json:"billable"`
	ProjectID   *string  `json:"projectId,omitempty"`
	TaskID      *string  `json:"taskId,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
}

func toWireRequest(req model.TimeEntryRequest) rawEntryRequest {
	out := rawEntryRequest{
		Start:       wireTime(req.Start),
		Description: req.Description,
		Billable:    req.Billable,
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		TagIDs:      req.TagIDs,
	}
	if req.End != nil {
		end := wireTime(*req.End)
		out.End = &end
	}
	return out
}

type rawProjectRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Billable bool   `json:"billable"`
}

type rawStopRequest struct {
	End string `json:"end"`
}
