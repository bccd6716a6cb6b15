package control_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"clockctl/internal/control"
	"clockctl/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func existingEntry() model.TimeEntry {
	start := time.Date(2022, 11, 13, 9, 0, 0, 0, time.UTC)
	end := time.Date(2022, 11, 13, 10, 30, 0, 0, time.UTC)
	projectID := "p1"
	return model.TimeEntry{
		ID:          "e1",
		UserID:      "u1",
		Description: "existing work",
		Billable:    true,
		ProjectID:   &projectID,
		TagIDs:      []string{"t1", "t2"},
		Interval:    model.TimeInterval{Start: start, End: &end},
	}
}

var buildNow = time.Date(2022, 11, 20, 12, 0, 0, 0, time.UTC)

func TestBuildUpdateNoOverrides(t *testing.T) {
	_, _, _, err := control.BuildUpdate(existingEntry(), control.EntryOverrides{}, nil, buildNow)
	if !errors.Is(err, control.ErrNoChanges) {
		t.Errorf("expected ErrNoChanges, got %v", err)
	}
}

func TestBuildUpdateDescriptionOnly(t *testing.T) {
	existing := existingEntry()
	req, changed, warnings, err := control.BuildUpdate(existing, control.EntryOverrides{Description: strPtr("x")}, nil, buildNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if req.Description != "x" {
		t.Errorf("description = %q, expected %q", req.Description, "x")
	}
	if !reflect.DeepEqual(changed, []string{"description"}) {
		t.Errorf("change log = %v, expected [description]", changed)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// every other field must be a verbatim copy
	if !req.Start.Equal(existing.Interval.Start) {
		t.Errorf("start changed: %s", req.Start)
	}
	if req.End == nil || !req.End.Equal(*existing.Interval.End) {
		t.Errorf("end changed: %v", req.End)
	}
	if req.Billable != existing.Billable {
		t.Error("billable changed")
	}
	if req.ProjectID == nil || *req.ProjectID != *existing.ProjectID {
		t.Errorf("project changed: %v", req.ProjectID)
	}
	if !reflect.DeepEqual(req.TagIDs, existing.TagIDs) {
		t.Errorf("tags changed: %v", req.TagIDs)
	}
}

func TestBuildUpdateChangeLogOrder(t *testing.T) {
	projects := []model.Project{{ID: "p2", Name: "Website"}}
	overrides := control.EntryOverrides{
		EndText:     strPtr("11:00"),
		StartText:   strPtr("08:30"),
		Project:     strPtr("website"),
		Billable:    boolPtr(false),
		Description: strPtr("reordered"),
	}
	req, changed, _, err := control.BuildUpdate(existingEntry(), overrides, projects, buildNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []string{"description", "billable", "project", "start time", "end time"}
	if !reflect.DeepEqual(changed, expected) {
		t.Errorf("change log = %v, expected %v", changed, expected)
	}
	if req.ProjectID == nil || *req.ProjectID != "p2" {
		t.Errorf("project = %v, expected p2", req.ProjectID)
	}
	if req.Billable {
		t.Error("billable override not applied")
	}
}

func TestBuildUpdateUnmatchedProjectWarns(t *testing.T) {
	existing := existingEntry()
	req, changed, warnings, err := control.BuildUpdate(existing, control.EntryOverrides{Project: strPtr("nope")}, nil, buildNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if req.ProjectID == nil || *req.ProjectID != *existing.ProjectID {
		t.Errorf("unmatched project override must keep the existing project, got %v", req.ProjectID)
	}
	if len(changed) != 0 {
		t.Errorf("unexpected change log: %v", changed)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestBuildUpdateStartAnchorOnEntryDay(t *testing.T) {
	req, _, _, err := control.BuildUpdate(existingEntry(), control.EntryOverrides{StartText: strPtr("08:15")}, nil, buildNow)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := time.Date(2022, 11, 13, 8, 15, 0, 0, time.UTC)
	if !req.Start.Equal(expected) {
		t.Errorf("start = %s, expected %s (on the entry's day, not today)", req.Start, expected)
	}
}

func TestBuildUpdateEndAnchorReferenceDay(t *testing.T) {
	t.Run("ExistingEndDay", func(t *testing.T) {
		req, _, _, err := control.BuildUpdate(existingEntry(), control.EntryOverrides{EndText: strPtr("11:45")}, nil, buildNow)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 11, 13, 11, 45, 0, 0, time.UTC)
		if req.End == nil || !req.End.Equal(expected) {
			t.Errorf("end = %v, expected %s", req.End, expected)
		}
	})

	t.Run("NowWhenNoExistingEnd", func(t *testing.T) {
		open := existingEntry()
		open.Interval.End = nil
		req, _, _, err := control.BuildUpdate(open, control.EntryOverrides{EndText: strPtr("13:00")}, nil, buildNow)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := time.Date(2022, 11, 20, 13, 0, 0, 0, time.UTC)
		if req.End == nil || !req.End.Equal(expected) {
			t.Errorf("end = %v, expected %s (anchored on today)", req.End, expected)
		}
	})
}

func TestBuildUpdateInvalidAnchor(t *testing.T) {
	_, _, _, err := control.BuildUpdate(existingEntry(), control.EntryOverrides{StartText: strPtr("whenever")}, nil, buildNow)
	if !errors.Is(err, model.ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}
