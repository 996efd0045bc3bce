package service

import (
	"context"
	"strings"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/store"
	"axiapac.com/timesheets/utils"
	"github.com/google/uuid"
)

type CreateTaskInput struct {
	TimesheetID string
	Date        string
	Description string
	TypeOfWork  string
	Hours       *float64
	Project     string
}

type TaskPatch struct {
	TimesheetID *string
	Date        *string
	Description *string
	TypeOfWork  *string
	Hours       *float64
	Project     *string
}

type TaskList struct {
	Tasks      []model.Task `json:"tasks"`
	TotalHours float64      `json:"totalHours"`
}

type TaskService struct {
	store      store.Store
	timesheets *TimesheetService
	demo       *DemoTasks
	options    Options
}

func NewTaskService(st store.Store, timesheets *TimesheetService, demo *DemoTasks, options Options) *TaskService {
	return &TaskService{store: st, timesheets: timesheets, demo: demo, options: options}
}

// List returns the timesheet's tasks ordered by date and their summed hours.
func (s *TaskService) List(ctx context.Context, timesheetID string) (*TaskList, error) {
	ts, err := s.timesheets.Get(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.demo.Ensure(ctx, s.store, *ts)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	core.SortTasks(tasks)
	return &TaskList{Tasks: tasks, TotalHours: core.SumHours(tasks)}, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, taskErr(err)
	}
	return task, nil
}

func (s *TaskService) validate(ctx context.Context, task model.Task) error {
	if strings.TrimSpace(task.Description) == "" {
		return invalid("description must not be empty")
	}
	if _, err := utils.ParseDate(task.Date); err != nil {
		return invalid("date: %s", err.Error())
	}
	if task.Hours < 0 {
		return invalid("hours must not be negative")
	}
	ts, err := s.timesheets.Get(ctx, task.TimesheetID)
	if err != nil {
		return err
	}
	if s.options.StrictTaskDates && !core.InRange(*ts, task.Date) {
		return invalid("date %s is outside %s to %s", task.Date, ts.StartDate, ts.EndDate)
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	task := model.Task{
		ID:          uuid.NewString(),
		TimesheetID: in.TimesheetID,
		Date:        in.Date,
		Description: in.Description,
		TypeOfWork:  in.TypeOfWork,
		Project:     in.Project,
	}
	if in.Hours != nil {
		task.Hours = *in.Hours
	}
	if task.Project == "" {
		task.Project = model.DefaultProject
	}
	if err := s.validate(ctx, task); err != nil {
		return nil, err
	}
	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, err
	}
	s.demo.MarkFilled(task.TimesheetID)
	if err := s.reconcile(ctx, task.TimesheetID); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, patch TaskPatch) (*model.Task, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if patch.TimesheetID != nil {
		next.TimesheetID = *patch.TimesheetID
	}
	if patch.Date != nil {
		next.Date = *patch.Date
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.TypeOfWork != nil {
		next.TypeOfWork = *patch.TypeOfWork
	}
	if patch.Hours != nil {
		next.Hours = *patch.Hours
	}
	if patch.Project != nil {
		next.Project = *patch.Project
	}
	if err := s.validate(ctx, next); err != nil {
		return nil, err
	}
	if err := s.store.UpdateTask(ctx, &next); err != nil {
		return nil, taskErr(err)
	}

	s.demo.MarkFilled(next.TimesheetID)
	if err := s.reconcile(ctx, current.TimesheetID); err != nil {
		return nil, err
	}
	if next.TimesheetID != current.TimesheetID {
		if err := s.reconcile(ctx, next.TimesheetID); err != nil {
			return nil, err
		}
	}
	return &next, nil
}

// Delete removes the task and returns it.
func (s *TaskService) Delete(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return nil, taskErr(err)
	}
	if err := s.reconcile(ctx, task.TimesheetID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) reconcile(ctx context.Context, timesheetID string) error {
	if !s.options.AutoReconcile {
		return nil
	}
	_, err := s.timesheets.Reconcile(ctx, timesheetID)
	return err
}
