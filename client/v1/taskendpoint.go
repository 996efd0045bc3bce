package v1

import "context"

type TaskDTO struct {
	ID          string  `json:"id"`
	TimesheetID string  `json:"timesheetId"`
	Date        string  `json:"date"` // yyyy-MM-dd
	Description string  `json:"description"`
	TypeOfWork  string  `json:"typeOfWork"`
	Hours       float64 `json:"hours"`
	Project     string  `json:"project"`
}

type TaskCreateDTO struct {
	TimesheetID string   `json:"timesheetId"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	TypeOfWork  string   `json:"typeOfWork,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Project     string   `json:"project,omitempty"`
}

type TaskUpdateDTO struct {
	TimesheetID *string  `json:"timesheetId,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	TypeOfWork  *string  `json:"typeOfWork,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Project     *string  `json:"project,omitempty"`
}

type TaskListDTO struct {
	Tasks      []TaskDTO `json:"tasks"`
	TotalHours float64   `json:"totalHours"`
}

type TaskEndpoint struct {
	transport *Transport
}

func (ep *TaskEndpoint) List(ctx context.Context, timesheetID string) (*TaskListDTO, error) {
	return decode[TaskListDTO](ep.transport.Get(ctx, "/api/tasks", map[string]string{"timesheetId": timesheetID}))
}

func (ep *TaskEndpoint) Create(ctx context.Context, dto TaskCreateDTO) (*TaskDTO, error) {
	return decode[TaskDTO](ep.transport.Post(ctx, "/api/tasks", dto, nil))
}

func (ep *TaskEndpoint) Update(ctx context.Context, id string, dto TaskUpdateDTO) (*TaskDTO, error) {
	return decode[TaskDTO](ep.transport.Put(ctx, "/api/tasks", dto, map[string]string{"id": id}))
}

func (ep *TaskEndpoint) Delete(ctx context.Context, id string) (*TaskDTO, error) {
	return decode[TaskDTO](ep.transport.Delete(ctx, "/api/tasks", map[string]string{"id": id}))
}
