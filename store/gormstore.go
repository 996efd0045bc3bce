package store

import (
	"context"
	"errors"
	"fmt"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/utils"
	"gorm.io/gorm"
)

// GormStore persists to MySQL through gorm.
type GormStore struct {
	dm *core.DatabaseManager
	db *gorm.DB
}

func NewGormStore(dm *core.DatabaseManager) *GormStore {
	return &GormStore{dm: dm, db: dm.DB}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// applyQuery adds the status and date-overlap predicates of q. Status is derived, so it is
// filtered through the hours column.
func applyQuery(tx *gorm.DB, q core.TimesheetQuery) *gorm.DB {
	if q.Status != nil {
		switch *q.Status {
		case model.StatusMissing:
			tx = tx.Where("hours = ?", 0)
		case model.StatusCompleted:
			tx = tx.Where("hours >= ?", model.RequiredWeeklyHours)
		case model.StatusIncomplete:
			tx = tx.Where("hours <> ? AND hours < ?", 0, model.RequiredWeeklyHours)
		}
	}
	if q.To != nil {
		tx = tx.Where("start_date <= ?", utils.FormatDate(*q.To))
	}
	if q.From != nil {
		tx = tx.Where("end_date >= ?", utils.FormatDate(*q.From))
	}
	return tx
}

func (s *GormStore) ListTimesheets(ctx context.Context, q core.TimesheetQuery) (core.Page[model.Timesheet], error) {
	q = q.Normalize()
	page := core.Page[model.Timesheet]{Items: []model.Timesheet{}, Page: q.Page, Limit: q.Limit}

	var total int64
	if err := applyQuery(s.db.WithContext(ctx).Model(&model.Timesheet{}), q).Count(&total).Error; err != nil {
		return page, fmt.Errorf("failed to count timesheets: %w", err)
	}

	page.Total = int(total)
	page.TotalPages = core.TotalPages(page.Total, q.Limit)
	if q.Page > page.TotalPages {
		return page, nil
	}

	var items []model.Timesheet
	err := applyQuery(s.db.WithContext(ctx), q).
		Order("start_date ASC, week ASC, id ASC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return page, fmt.Errorf("failed to list timesheets: %w", err)
	}

	if items != nil {
		page.Items = items
	}
	return page, nil
}

func (s *GormStore) AllTimesheets(ctx context.Context) ([]model.Timesheet, error) {
	var items []model.Timesheet
	if err := s.db.WithContext(ctx).Order("start_date ASC, week ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return items, nil
}

func (s *GormStore) GetTimesheet(ctx context.Context, id string) (*model.Timesheet, error) {
	var ts model.Timesheet
	if err := s.db.WithContext(ctx).First(&ts, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ts, nil
}

func (s *GormStore) CreateTimesheet(ctx context.Context, ts *model.Timesheet) error {
	ts.RefreshStatus()
	if err := s.db.WithContext(ctx).Create(ts).Error; err != nil {
		return fmt.Errorf("failed to create timesheet: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateTimesheet(ctx context.Context, ts *model.Timesheet) error {
	ts.RefreshStatus()
	res := s.db.WithContext(ctx).Model(&model.Timesheet{ID: ts.ID}).Updates(map[string]any{
		"week":       ts.Week,
		"start_date": ts.StartDate,
		"end_date":   ts.EndDate,
		"hours":      ts.Hours,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update timesheet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports 0 affected rows when nothing changed, so confirm the row exists.
		if _, err := s.GetTimesheet(ctx, ts.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTimesheet removes the timesheet and its tasks in one transaction.
func (s *GormStore) DeleteTimesheet(ctx context.Context, id string) error {
	return s.dm.Exec(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("timesheet_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		res := tx.Delete(&model.Timesheet{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete timesheet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) ListTasks(ctx context.Context, timesheetID string) ([]model.Task, error) {
	tasks := []model.Task{}
	err := s.db.WithContext(ctx).
		Where("timesheet_id = ?", timesheetID).
		Order("date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *GormStore) GetTask(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

func (s *GormStore) CreateTask(ctx context.Context, task *model.Task) error {
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (s *GormStore) CreateTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(tasks, 100).Error; err != nil {
		return fmt.Errorf("failed to create tasks: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateTask(ctx context.Context, task *model.Task) error {
	if _, err := s.GetTask(ctx, task.ID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteTask(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*GormStore)(nil)
