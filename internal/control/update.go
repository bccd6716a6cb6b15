package control

import (
	"fmt"
	"time"

	"clockctl/internal/model"
)

// EntryOverrides are the optional fields an edit may change. Each field is
// present-or-absent (nil means "not supplied"), so an explicitly supplied
// empty description is distinguishable from no override at all.
type EntryOverrides struct {
	Description *string
	Billable    *bool
	Project     *string
	StartText   *string
	EndText     *string
}

// Empty returns whether no override was supplied.
func (o EntryOverrides) Empty() bool {
	return o.Description == nil && o.Billable == nil && o.Project == nil &&
		o.StartText == nil && o.EndText == nil
}

// BuildUpdate produces the full-field update request for an entry along with
// a change log of what the overrides modified and any warnings (currently
// only a project reference that matched nothing). The service expects updates
// to carry every field, so the request starts as a verbatim copy of the
// existing entry; overrides are then applied in a fixed order: description,
// billable, project, start time, end time.
//
// With zero overrides it fails with ErrNoChanges so the caller can skip the
// network write.
func BuildUpdate(existing model.TimeEntry, overrides EntryOverrides, projects []model.Project, now time.Time) (model.TimeEntryRequest, []string, []string, error) {
	if overrides.Empty() {
		return model.TimeEntryRequest{}, nil, nil, ErrNoChanges
	}

	req := model.TimeEntryRequest{
		Start:       existing.Interval.Start,
		Description: existing.Description,
		Billable:    existing.Billable,
		TagIDs:      existing.TagIDs,
	}
	if existing.Interval.End != nil {
		end := *existing.Interval.End
		req.End = &end
	}
	if existing.ProjectID != nil {
		id := *existing.ProjectID
		req.ProjectID = &id
	}
	if existing.TaskID != nil {
		id := *existing.TaskID
		req.TaskID = &id
	}

	var changed, warnings []string

	if overrides.Description != nil {
		req.Description = model.SanitizeDescription(*overrides.Description)
		changed = append(changed, "description")
	}
	if overrides.Billable != nil {
		req.Billable = *overrides.Billable
		changed = append(changed, "billable")
	}
	if overrides.Project != nil {
		if project := model.FindProject(projects, *overrides.Project); project != nil {
			id := project.ID
			req.ProjectID = &id
			changed = append(changed, "project")
		} else {
			warnings = append(warnings, fmt.Sprintf("no project matches %q, keeping the existing project", *overrides.Project))
		}
	}
	if overrides.StartText != nil {
		start, err := model.ResolveAnchor(*overrides.StartText, existing.Interval.Start)
		if err != nil {
			return model.TimeEntryRequest{}, nil, nil, err
		}
		req.Start = start
		changed = append(changed, "start time")
	}
	if overrides.EndText != nil {
		// the reference day for the end anchor is the existing end if the
		// entry has one, otherwise now
		ref := now
		if existing.Interval.End != nil {
			ref = *existing.Interval.End
		}
		end, err := model.ResolveAnchor(*overrides.EndText, ref)
		if err != nil {
			return model.TimeEntryRequest{}, nil, nil, err
		}
		req.End = &end
		changed = append(changed, "end time")
	}

	return req, changed, warnings, nil
}
