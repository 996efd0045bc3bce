package service

import (
	"context"
	"io"
	"math/rand/v2"

	"axiapac.com/timesheets/model"
)

type Options struct {
	// StrictTaskDates rejects tasks dated outside their timesheet's range.
	StrictTaskDates bool
	// AutoReconcile sets timesheet hours to the sum of its tasks after every task change.
	AutoReconcile bool
}

// Notifier is told when a timesheet reaches completed.
type Notifier interface {
	TimesheetCompleted(ctx context.Context, ts model.Timesheet) error
}

type NopNotifier struct{}

func (NopNotifier) TimesheetCompleted(context.Context, model.Timesheet) error { return nil }

// ArchiveStore keeps exported workbooks, e.g. an S3 bucket.
type ArchiveStore interface {
	WriteFile(ctx context.Context, key string, data []byte, contentType string) error
	ReadFile(ctx context.Context, key string, outStream io.Writer) error
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	Location() string
}

// NewRand returns a seeded source. Seed 0 picks a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
