package store

import (
	"context"
	"slices"
	"sync"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/utils"
)

// MemoryStore keeps everything in process memory. State is lost on restart.
type MemoryStore struct {
	mu         sync.RWMutex
	order      []string
	timesheets map[string]model.Timesheet
	tasks      map[string][]model.Task // timesheet id -> tasks in insertion order
	taskOwner  map[string]string       // task id -> timesheet id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		timesheets: map[string]model.Timesheet{},
		tasks:      map[string][]model.Task{},
		taskOwner:  map[string]string{},
	}
}

func (s *MemoryStore) snapshot() []model.Timesheet {
	out := make([]model.Timesheet, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.timesheets[id])
	}
	return out
}

func (s *MemoryStore) ListTimesheets(_ context.Context, q core.TimesheetQuery) (core.Page[model.Timesheet], error) {
	s.mu.RLock()
	all := s.snapshot()
	s.mu.RUnlock()
	return core.SearchTimesheets(all, q), nil
}

func (s *MemoryStore) AllTimesheets(_ context.Context) ([]model.Timesheet, error) {
	s.mu.RLock()
	all := s.snapshot()
	s.mu.RUnlock()
	slices.SortFunc(all, core.CompareTimesheets)
	for i := range all {
		all[i].RefreshStatus()
	}
	return all, nil
}

func (s *MemoryStore) GetTimesheet(_ context.Context, id string) (*model.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ts, ok := s.timesheets[id]
	if !ok {
		return nil, ErrNotFound
	}
	ts.RefreshStatus()
	return &ts, nil
}

func (s *MemoryStore) CreateTimesheet(_ context.Context, ts *model.Timesheet) error {
	ts.RefreshStatus()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timesheets[ts.ID]; !ok {
		s.order = append(s.order, ts.ID)
	}
	s.timesheets[ts.ID] = *ts
	return nil
}

func (s *MemoryStore) UpdateTimesheet(_ context.Context, ts *model.Timesheet) error {
	ts.RefreshStatus()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timesheets[ts.ID]; !ok {
		return ErrNotFound
	}
	s.timesheets[ts.ID] = *ts
	return nil
}

func (s *MemoryStore) DeleteTimesheet(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timesheets[id]; !ok {
		return ErrNotFound
	}
	delete(s.timesheets, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	for _, t := range s.tasks[id] {
		delete(s.taskOwner, t.ID)
	}
	delete(s.tasks, id)
	return nil
}

func (s *MemoryStore) ListTasks(_ context.Context, timesheetID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks[timesheetID]), nil
}

func (s *MemoryStore) GetTask(_ context.Context, id string) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.taskOwner[id]
	if !ok {
		return nil, ErrNotFound
	}
	task, ok := utils.Find(s.tasks[owner], func(t model.Task) bool { return t.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (s *MemoryStore) CreateTask(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertTask(*task)
	return nil
}

func (s *MemoryStore) CreateTasks(_ context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		s.insertTask(t)
	}
	return nil
}

func (s *MemoryStore) insertTask(task model.Task) {
	s.tasks[task.TimesheetID] = append(s.tasks[task.TimesheetID], task)
	s.taskOwner[task.ID] = task.TimesheetID
}

func (s *MemoryStore) UpdateTask(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.taskOwner[task.ID]
	if !ok {
		return ErrNotFound
	}

	if owner == task.TimesheetID {
		list := s.tasks[owner]
		for i := range list {
			if list[i].ID == task.ID {
				list[i] = *task
				return nil
			}
		}
		return ErrNotFound
	}

	// moved to another timesheet
	s.removeTask(owner, task.ID)
	s.insertTask(*task)
	return nil
}

func (s *MemoryStore) removeTask(owner, id string) {
	s.tasks[owner] = slices.DeleteFunc(s.tasks[owner], func(t model.Task) bool { return t.ID == id })
	if len(s.tasks[owner]) == 0 {
		delete(s.tasks, owner)
	}
	delete(s.taskOwner, id)
}

func (s *MemoryStore) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.taskOwner[id]
	if !ok {
		return ErrNotFound
	}
	s.removeTask(owner, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
