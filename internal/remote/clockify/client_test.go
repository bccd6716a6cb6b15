package clockify_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"clockctl/internal/model"
	"clockctl/internal/remote/clockify"
)

const entriesJSON = `[
  {
    "id": "e2", "description": "running work", "userId": "u1", "billable": true,
    "projectId": "p1", "project": {"id": "p1", "name": "Tooling", "color": "#03A9F4"},
    "tagIds": ["t1"],
    "timeInterval": {"start": "2022-11-13T09:00:00Z", "end": null}
  },
  {
    "id": "e1", "description": "done work", "userId": "u1", "billable": false,
    "projectId": null,
    "timeInterval": {"start": "2022-11-13T07:00:00Z", "end": "2022-11-13T08:30:00Z"}
  }
]`

func TestTimeEntries(t *testing.T) {
	var gotKey, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, entriesJSON)
	}))
	defer server.Close()

	client := clockify.NewClient(server.URL, "the-key", zerolog.Nop())
	entries, err := client.TimeEntries(context.Background(), "ws1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if gotKey != "the-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
	if gotPath != "/api/v1/workspaces/ws1/user/u1/time-entries" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	running := entries[0]
	if !running.Open() {
		t.Error("first entry should be open")
	}
	if running.ProjectID == nil || *running.ProjectID != "p1" || running.ProjectName != "Tooling" {
		t.Errorf("project mapping broken: %+v", running)
	}

	closed := entries[1]
	if closed.Open() {
		t.Error("second entry should be closed")
	}
	if closed.ProjectID != nil {
		t.Error("absent project id should map to nil")
	}
	expectedEnd := time.Date(2022, 11, 13, 8, 30, 0, 0, time.UTC)
	if !closed.Interval.End.Equal(expectedEnd) {
		t.Errorf("end mapped to %s, expected %s", closed.Interval.End, expectedEnd)
	}
}

func TestStopTimer(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
		  "id": "e2", "userId": "u1", "billable": true,
		  "timeInterval": {"start": "2022-11-13T09:00:00Z", "end": "2022-11-13T10:30:00Z"}
		}`)
	}))
	defer server.Close()

	client := clockify.NewClient(server.URL, "the-key", zerolog.Nop())
	end := time.Date(2022, 11, 13, 10, 30, 0, 0, time.UTC)
	entry, err := client.StopTimer(context.Background(), "ws1", "u1", end)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotMethod)
	}
	if gotBody["end"] != "2022-11-13T10:30:00Z" {
		t.Errorf("unexpected end in request body: %v", gotBody["end"])
	}
	if entry.Open() {
		t.Error("stopped entry should be closed")
	}
}

func TestCreateTimeEntryOmitsAbsentFields(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "e9", "userId": "u1", "timeInterval": {"start": "2022-11-13T09:00:00Z"}}`)
	}))
	defer server.Close()

	client := clockify.NewClient(server.URL, "the-key", zerolog.Nop())
	req := model.TimeEntryRequest{
		Start:       time.Date(2022, 11, 13, 9, 0, 0, 0, time.UTC),
		Description: "open entry",
	}
	if _, err := client.CreateTimeEntry(context.Background(), "ws1", req); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for _, absent := range []string{"end", "projectId", "taskId", "tagIds"} {
		if _, present := gotBody[absent]; present {
			t.Errorf("field %q should be omitted for an open no-project entry", absent)
		}
	}
	if gotBody["start"] != "2022-11-13T09:00:00Z" {
		t.Errorf("unexpected start: %v", gotBody["start"])
	}
}

func TestErrorStatusIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "workspace not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := clockify.NewClient(server.URL, "the-key", zerolog.Nop())
	_, err := client.Projects(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected an error for status 404")
	}
}
