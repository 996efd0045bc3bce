package service

import (
	"context"
	"log"
	"time"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/store"
	"axiapac.com/timesheets/utils"
	"github.com/google/uuid"
)

type CreateTimesheetInput struct {
	Week      int
	StartDate string
	EndDate   string
	Hours     *float64
}

// TimesheetPatch carries the fields of a partial update. Nil means unchanged.
type TimesheetPatch struct {
	Week      *int
	StartDate *string
	EndDate   *string
	Hours     *float64
}

type TimesheetDetail struct {
	Timesheet  model.Timesheet `json:"timesheet"`
	Label      string          `json:"label"`
	Days       []core.DayTasks `json:"days"`
	TotalHours float64         `json:"totalHours"`
}

type TimesheetService struct {
	store    store.Store
	notifier Notifier
	demo     *DemoTasks
	archive  ArchiveStore
	prefix   string
	now      func() time.Time
}

func NewTimesheetService(st store.Store, notifier Notifier, demo *DemoTasks) *TimesheetService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &TimesheetService{store: st, notifier: notifier, demo: demo, now: time.Now}
}

// WithArchive enables the archive operations. Keys are prefix/<timesheet id>/<file>.
func (s *TimesheetService) WithArchive(archive ArchiveStore, prefix string) *TimesheetService {
	s.archive = archive
	s.prefix = prefix
	return s
}

func (s *TimesheetService) ArchiveEnabled() bool {
	return s.archive != nil
}

func (s *TimesheetService) List(ctx context.Context, q core.TimesheetQuery) (core.Page[model.Timesheet], error) {
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return core.Page[model.Timesheet]{}, invalid("endDate must not be before startDate")
	}
	return s.store.ListTimesheets(ctx, q.Normalize())
}

func (s *TimesheetService) Get(ctx context.Context, id string) (*model.Timesheet, error) {
	ts, err := s.store.GetTimesheet(ctx, id)
	if err != nil {
		return nil, timesheetErr(err)
	}
	return ts, nil
}

func (s *TimesheetService) Detail(ctx context.Context, id string) (*TimesheetDetail, error) {
	ts, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.demo.Ensure(ctx, s.store, *ts)
	if err != nil {
		return nil, err
	}
	core.SortTasks(tasks)

	days, err := core.GroupByDay(*ts, tasks)
	if err != nil {
		return nil, err
	}
	return &TimesheetDetail{
		Timesheet:  *ts,
		Label:      core.FormatDateRange(utils.MustParseDate(ts.StartDate), utils.MustParseDate(ts.EndDate)),
		Days:       days,
		TotalHours: core.SumHours(tasks),
	}, nil
}

func validateTimesheet(ts model.Timesheet) error {
	if ts.Week < 1 {
		return invalid("week must be at least 1")
	}
	start, err := utils.ParseDate(ts.StartDate)
	if err != nil {
		return invalid("startDate: %s", err.Error())
	}
	end, err := utils.ParseDate(ts.EndDate)
	if err != nil {
		return invalid("endDate: %s", err.Error())
	}
	if end.Before(start) {
		return invalid("endDate must not be before startDate")
	}
	if core.SpanDays(start, end) > core.MaxTimesheetDays {
		return invalid("a timesheet covers at most %d days", core.MaxTimesheetDays)
	}
	if ts.Hours < 0 {
		return invalid("hours must not be negative")
	}
	return nil
}

func (s *TimesheetService) Create(ctx context.Context, in CreateTimesheetInput) (*model.Timesheet, error) {
	ts := model.Timesheet{
		ID:        uuid.NewString(),
		Week:      in.Week,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if in.Hours != nil {
		ts.Hours = *in.Hours
	}
	if err := validateTimesheet(ts); err != nil {
		return nil, err
	}
	if err := s.store.CreateTimesheet(ctx, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *TimesheetService) Update(ctx context.Context, id string, patch TimesheetPatch) (*model.Timesheet, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if patch.Week != nil {
		next.Week = *patch.Week
	}
	if patch.StartDate != nil {
		next.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		next.EndDate = *patch.EndDate
	}
	if patch.Hours != nil {
		next.Hours = *patch.Hours
	}
	if err := validateTimesheet(next); err != nil {
		return nil, err
	}
	return s.save(ctx, *current, next)
}

// save writes next and notifies when the status moved into completed.
func (s *TimesheetService) save(ctx context.Context, prev, next model.Timesheet) (*model.Timesheet, error) {
	next.RefreshStatus()
	if err := s.store.UpdateTimesheet(ctx, &next); err != nil {
		return nil, timesheetErr(err)
	}
	if prev.Status != model.StatusCompleted && next.Status == model.StatusCompleted {
		if err := s.notifier.TimesheetCompleted(ctx, next); err != nil {
			log.Printf("[WARN] completion notification for week %d failed: %v\n", next.Week, err)
		}
	}
	return &next, nil
}

// Delete removes the timesheet and its tasks, returning the removed timesheet.
func (s *TimesheetService) Delete(ctx context.Context, id string) (*model.Timesheet, error) {
	ts, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteTimesheet(ctx, id); err != nil {
		return nil, timesheetErr(err)
	}
	s.demo.MarkFilled(id)
	return ts, nil
}

// Reconcile sets hours to the sum of the timesheet's task hours.
func (s *TimesheetService) Reconcile(ctx context.Context, id string) (*model.Timesheet, error) {
	ts, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.ListTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, *ts, core.Reconcile(*ts, tasks))
}
