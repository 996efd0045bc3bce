package store

import (
	"context"
	"errors"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
)

var ErrNotFound = errors.New("record not found")

// Store persists timesheets and their tasks.
type Store interface {
	ListTimesheets(ctx context.Context, q core.TimesheetQuery) (core.Page[model.Timesheet], error)
	AllTimesheets(ctx context.Context) ([]model.Timesheet, error)
	GetTimesheet(ctx context.Context, id string) (*model.Timesheet, error)
	CreateTimesheet(ctx context.Context, ts *model.Timesheet) error
	UpdateTimesheet(ctx context.Context, ts *model.Timesheet) error
	// DeleteTimesheet also removes every task of the timesheet.
	DeleteTimesheet(ctx context.Context, id string) error

	ListTasks(ctx context.Context, timesheetID string) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	CreateTask(ctx context.Context, task *model.Task) error
	CreateTasks(ctx context.Context, tasks []model.Task) error
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id string) error
}
