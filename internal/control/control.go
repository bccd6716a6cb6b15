// Package control implements the timer lifecycle: starting, stopping and
// inspecting the active timer and creating and editing closed entries.
package control

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"clockctl/internal/model"
)

// DefaultProjectColor is the color assigned to projects auto-created by
// `start`.
const DefaultProjectColor = "#03A9F4"

// The error kinds commands can run into before or while talking to the
// service. Transport failures are wrapped by the remote client and simply
// propagate.
var (
	ErrNotAuthenticated = errors.New("not authenticated, set an API token first ('clockctl config api-token <token>')")
	ErrNoWorkspace      = errors.New("no workspace configured ('clockctl config workspace <id>')")
	ErrTimerRunning     = errors.New("a timer is already running")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrNoChanges        = errors.New("no changes requested")
)

// Service is what the controller needs from the remote time-tracking service.
// The clockify client implements it; tests substitute a fake.
type Service interface {
	CurrentUser(ctx context.Context) (model.User, error)
	TimeEntries(ctx context.Context, workspace, user string) ([]model.TimeEntry, error)
	Projects(ctx context.Context, workspace string) ([]model.Project, error)
	CreateProject(ctx context.Context, workspace string, spec model.ProjectRequest) (model.Project, error)
	StartTimer(ctx context.Context, workspace string, req model.TimeEntryRequest) (model.TimeEntry, error)
	StopTimer(ctx context.Context, workspace, user string, end time.Time) (model.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, workspace string, req model.TimeEntryRequest) (model.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, workspace, id string, req model.TimeEntryRequest) (model.TimeEntry, error)
}

// Controller orchestrates the timer commands for a single user in a single
// workspace. It is handed the current time as a function so the logic stays
// deterministic under test; it never reads ambient time itself.
type Controller struct {
	Service   Service
	Workspace string
	UserID    string
	Log       zerolog.Logger
	Now       func() time.Time
}
