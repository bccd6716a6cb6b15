package control

import (
	"context"
	"fmt"
	"time"

	"clockctl/internal/model"
)

// StartOptions are the user-supplied parameters for starting the timer.
type StartOptions struct {
	Description string
	Project     string
	Billable    bool
}

// AddOptions are the user-supplied parameters for creating a closed entry.
type AddOptions struct {
	Description string
	Project     string
	Billable    bool
	StartText   string
}

// StartResult reports a started timer. Created is set when the named project
// did not exist and was auto-created.
type StartResult struct {
	Entry    model.TimeEntry
	Created  *model.Project
	Warnings []string
}

// StopResult reports a stop attempt. Stopped is false when there was nothing
// to stop, which is a report rather than an error.
type StopResult struct {
	Stopped bool
	Entry   model.TimeEntry
	Minutes int
}

// StatusResult reports the timer state. Running is nil when idle; the day
// summary aggregates today's closed entries.
type StatusResult struct {
	Running        *model.TimeEntry
	ElapsedMinutes int
	DayMinutes     int
	DayEntries     int
}

// AddResult reports a created entry.
type AddResult struct {
	Entry    model.TimeEntry
	Warnings []string
}

// EditResult reports an updated entry and what changed.
type EditResult struct {
	Entry    model.TimeEntry
	Changed  []string
	Warnings []string
}

// Start begins a new timer at now. It refuses to start while an entry is
// open; the refusal happens before any write, so no second open entry can be
// created by this process. A named project is resolved against the workspace
// and auto-created if missing; a failed creation degrades to a projectless
// timer with a warning.
func (c *Controller) Start(ctx context.Context, opts StartOptions) (StartResult, error) {
	var result StartResult

	entries, err := c.Service.TimeEntries(ctx, c.Workspace, c.UserID)
	if err != nil {
		return result, err
	}
	if active := model.FindActive(entries); active != nil {
		return result, fmt.Errorf("%w (started %s)", ErrTimerRunning, active.Interval.Start.Local().Format("15:04"))
	}

	req := model.TimeEntryRequest{
		Start:       c.Now(),
		Description: model.SanitizeDescription(opts.Description),
		Billable:    opts.Billable,
	}

	if opts.Project != "" {
		projectID, created, warnings, err := c.resolveOrCreateProject(ctx, opts.Project, opts.Billable)
		if err != nil {
			return result, err
		}
		req.ProjectID = projectID
		result.Created = created
		result.Warnings = append(result.Warnings, warnings...)
	}

	entry, err := c.Service.StartTimer(ctx, c.Workspace, req)
	if err != nil {
		return result, err
	}
	result.Entry = entry
	c.Log.Debug().Str("entry", entry.ID).Msg("timer started")
	return result, nil
}

// Stop ends the running timer at now. Without a running timer it reports
// "nothing to stop" via Stopped == false instead of failing.
func (c *Controller) Stop(ctx context.Context) (StopResult, error) {
	var result StopResult

	entries, err := c.Service.TimeEntries(ctx, c.Workspace, c.UserID)
	if err != nil {
		return result, err
	}
	if model.FindActive(entries) == nil {
		return result, nil
	}

	entry, err := c.Service.StopTimer(ctx, c.Workspace, c.UserID, c.Now())
	if err != nil {
		return result, err
	}
	result.Stopped = true
	result.Entry = entry
	end := c.Now()
	if entry.Interval.End != nil {
		end = *entry.Interval.End
	}
	result.Minutes = model.RoundMinutes(end.Sub(entry.Interval.Start))
	return result, nil
}

// Status reports the timer state without changing it. When idle it sums up
// today's closed entries so the user sees the day total.
func (c *Controller) Status(ctx context.Context) (StatusResult, error) {
	var result StatusResult

	entries, err := c.Service.TimeEntries(ctx, c.Workspace, c.UserID)
	if err != nil {
		return result, err
	}

	now := c.Now()
	if active := model.FindActive(entries); active != nil {
		result.Running = active
		result.ElapsedMinutes = model.RoundMinutes(now.Sub(active.Interval.Start))
		return result, nil
	}

	for i := range entries {
		entry := &entries[i]
		if entry.Open() || !model.SameDay(now, entry.Interval.Start) {
			continue
		}
		result.DayMinutes += model.RoundMinutes(entry.Interval.End.Sub(entry.Interval.Start))
		result.DayEntries++
	}
	return result, nil
}

// Add creates an already-closed entry from a duration. With an explicit start
// anchor the entry runs start..start+duration; otherwise it is laid out to
// end at now. A named project that matches nothing is not auto-created here;
// the entry is created without a project and a warning is reported.
func (c *Controller) Add(ctx context.Context, durationText string, opts AddOptions) (AddResult, error) {
	var result AddResult

	minutes, err := model.ParseDuration(durationText)
	if err != nil {
		return result, err
	}
	duration := time.Duration(minutes) * time.Minute

	now := c.Now()
	var start, end time.Time
	if opts.StartText != "" {
		start, err = model.ResolveAnchor(opts.StartText, now)
		if err != nil {
			return result, err
		}
		end = start.Add(duration)
	} else {
		end = now
		start = end.Add(-duration)
	}

	req := model.TimeEntryRequest{
		Start:       start,
		End:         &end,
		Description: model.SanitizeDescription(opts.Description),
		Billable:    opts.Billable,
	}

	if opts.Project != "" {
		projects, err := c.Service.Projects(ctx, c.Workspace)
		if err != nil {
			return result, err
		}
		if project := model.FindProject(projects, opts.Project); project != nil {
			id := project.ID
			req.ProjectID = &id
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no project matches %q, adding the entry without a project", opts.Project))
		}
	}

	entry, err := c.Service.CreateTimeEntry(ctx, c.Workspace, req)
	if err != nil {
		return result, err
	}
	result.Entry = entry
	return result, nil
}

// Edit updates an existing entry. The target is a literal entry id or the
// token "last" for the most recently ended entry. With zero overrides it
// fails with ErrNoChanges and performs no write.
func (c *Controller) Edit(ctx context.Context, target string, overrides EntryOverrides) (EditResult, error) {
	var result EditResult

	entries, err := c.Service.TimeEntries(ctx, c.Workspace, c.UserID)
	if err != nil {
		return result, err
	}

	existing := findTarget(entries, target)
	if existing == nil {
		return result, fmt.Errorf("%w: %q", ErrEntryNotFound, target)
	}

	var projects []model.Project
	if overrides.Project != nil {
		projects, err = c.Service.Projects(ctx, c.Workspace)
		if err != nil {
			return result, err
		}
	}

	req, changed, warnings, err := BuildUpdate(*existing, overrides, projects, c.Now())
	if err != nil {
		return result, err
	}

	entry, err := c.Service.UpdateTimeEntry(ctx, c.Workspace, existing.ID, req)
	if err != nil {
		return result, err
	}
	result.Entry = entry
	result.Changed = changed
	result.Warnings = warnings
	return result, nil
}

// findTarget locates the entry an edit refers to: "last" means the first
// closed entry in the service's most-recent-first order, anything else is an
// id.
func findTarget(entries []model.TimeEntry, target string) *model.TimeEntry {
	if target == "last" {
		for i := range entries {
			if !entries[i].Open() {
				return &entries[i]
			}
		}
		return nil
	}
	for i := range entries {
		if entries[i].ID == target {
			return &entries[i]
		}
	}
	return nil
}

// resolveOrCreateProject maps a project reference to an id for `start`,
// creating the project if nothing matches. Creation failure is non-fatal: the
// timer still starts, just without a project.
func (c *Controller) resolveOrCreateProject(ctx context.Context, reference string, billable bool) (*string, *model.Project, []string, error) {
	projects, err := c.Service.Projects(ctx, c.Workspace)
	if err != nil {
		return nil, nil, nil, err
	}
	if project := model.FindProject(projects, reference); project != nil {
		id := project.ID
		return &id, nil, nil, nil
	}

	created, err := c.Service.CreateProject(ctx, c.Workspace, model.ProjectRequest{
		Name:     reference,
		Color:    DefaultProjectColor,
		Billable: billable,
	})
	if err != nil {
		c.Log.Warn().Err(err).Str("project", reference).Msg("project creation failed")
		return nil, nil, []string{fmt.Sprintf("can't create project %q (%v), starting without a project", reference, err)}, nil
	}
	id := created.ID
	return &id, &created, nil, nil
}
