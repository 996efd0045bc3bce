package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/store"
	"github.com/google/uuid"
)

const (
	demoTaskHours       = 4
	demoTaskDescription = "Homepage Development"
	demoTaskWorkType    = "Bug fixes"
	demoMaxTasksPerDay  = 3
)

// DemoTasks fills a timesheet with sample tasks the first time its tasks are read.
// Each timesheet is filled at most once per process, so deleting every task sticks.
type DemoTasks struct {
	mu      sync.Mutex
	rand    *rand.Rand
	enabled bool
	filled  map[string]bool
}

func NewDemoTasks(enabled bool, r *rand.Rand) *DemoTasks {
	if r == nil {
		r = NewRand(0)
	}
	return &DemoTasks{rand: r, enabled: enabled, filled: map[string]bool{}}
}

// Generate builds 1 to 3 tasks of 4h for every day of the timesheet.
func (d *DemoTasks) Generate(ts model.Timesheet) ([]model.Task, error) {
	days, err := core.TimesheetDays(ts)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	for _, day := range days {
		n := 1 + d.rand.IntN(demoMaxTasksPerDay)
		for range n {
			tasks = append(tasks, model.Task{
				ID:          uuid.NewString(),
				TimesheetID: ts.ID,
				Date:        day,
				Description: demoTaskDescription,
				TypeOfWork:  demoTaskWorkType,
				Hours:       demoTaskHours,
				Project:     model.SampleProjects[d.rand.IntN(len(model.SampleProjects))],
			})
		}
	}
	return tasks, nil
}

// Ensure returns the tasks of ts, generating them first if ts has none, is not missing,
// and was never filled before.
func (d *DemoTasks) Ensure(ctx context.Context, st store.Store, ts model.Timesheet) ([]model.Task, error) {
	tasks, err := st.ListTasks(ctx, ts.ID)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.enabled || len(tasks) > 0 || model.CalculateStatus(ts.Hours) == model.StatusMissing {
		return tasks, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.filled[ts.ID] {
		return tasks, nil
	}

	// re-check under the lock so concurrent readers do not both fill
	tasks, err = st.ListTasks(ctx, ts.ID)
	if err != nil || len(tasks) > 0 {
		return tasks, err
	}

	generated, err := d.Generate(ts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks for %s: %w", ts.ID, err)
	}
	if err := st.CreateTasks(ctx, generated); err != nil {
		return nil, err
	}
	d.filled[ts.ID] = true
	log.Printf("[INFO] generated %d demo tasks for week %d\n", len(generated), ts.Week)
	return generated, nil
}

// MarkFilled stops ts from ever being filled, e.g. once a user logged a task against it.
func (d *DemoTasks) MarkFilled(id string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.filled[id] = true
	d.mu.Unlock()
}
