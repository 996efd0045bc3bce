package v1

import (
	"context"
	"net/url"
	"strconv"
)

type TimesheetDTO struct {
	ID        string  `json:"id"`
	Week      int     `json:"week"`
	StartDate string  `json:"startDate"` // yyyy-MM-dd
	EndDate   string  `json:"endDate"`   // yyyy-MM-dd
	Hours     float64 `json:"hours"`
	Status    string  `json:"status"`
}

type TimesheetCreateDTO struct {
	Week      int      `json:"week"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Hours     *float64 `json:"hours,omitempty"`
}

type TimesheetUpdateDTO struct {
	Week      *int     `json:"week,omitempty"`
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate,omitempty"`
	Hours     *float64 `json:"hours,omitempty"`
}

type PaginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type TimesheetSearchResultDTO struct {
	Data       []TimesheetDTO `json:"data"`
	Pagination PaginationDTO  `json:"pagination"`
}

type DayTasksDTO struct {
	Date  string    `json:"date"`
	Tasks []TaskDTO `json:"tasks"`
	Hours float64   `json:"hours"`
}

type TimesheetDetailDTO struct {
	Timesheet  TimesheetDTO  `json:"timesheet"`
	Label      string        `json:"label"`
	Days       []DayTasksDTO `json:"days"`
	TotalHours float64       `json:"totalHours"`
}

type TimesheetSearch struct {
	Status    string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (s TimesheetSearch) query() map[string]string {
	q := map[string]string{
		"status":    s.Status,
		"startDate": s.StartDate,
		"endDate":   s.EndDate,
	}
	if s.Page > 0 {
		q["page"] = strconv.Itoa(s.Page)
	}
	if s.Limit > 0 {
		q["limit"] = strconv.Itoa(s.Limit)
	}
	return q
}

type TimesheetEndpoint struct {
	transport *Transport
}

func (ep *TimesheetEndpoint) Search(ctx context.Context, search TimesheetSearch) (*TimesheetSearchResultDTO, error) {
	return decode[TimesheetSearchResultDTO](ep.transport.Get(ctx, "/api/timesheets", search.query()))
}

func (ep *TimesheetEndpoint) Get(ctx context.Context, id string) (*TimesheetDetailDTO, error) {
	return decode[TimesheetDetailDTO](ep.transport.Get(ctx, "/api/timesheets/"+id, nil))
}

func (ep *TimesheetEndpoint) Create(ctx context.Context, dto TimesheetCreateDTO) (*TimesheetDTO, error) {
	return decode[TimesheetDTO](ep.transport.Post(ctx, "/api/timesheets", dto, nil))
}

// Update uses the ?id= form the web client sends.
func (ep *TimesheetEndpoint) Update(ctx context.Context, id string, dto TimesheetUpdateDTO) (*TimesheetDTO, error) {
	return decode[TimesheetDTO](ep.transport.Put(ctx, "/api/timesheets", dto, map[string]string{"id": id}))
}

func (ep *TimesheetEndpoint) Delete(ctx context.Context, id string) (*TimesheetDTO, error) {
	return decode[TimesheetDTO](ep.transport.Delete(ctx, "/api/timesheets/"+id, nil))
}

func (ep *TimesheetEndpoint) Reconcile(ctx context.Context, id string) (*TimesheetDTO, error) {
	return decode[TimesheetDTO](ep.transport.Post(ctx, "/api/timesheets/"+id+"/reconcile", nil, nil))
}

// Export returns the XLSX workbook bytes.
func (ep *TimesheetEndpoint) Export(ctx context.Context, id string) ([]byte, error) {
	resp, err := ep.transport.Get(ctx, "/api/timesheets/"+id+"/export", nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type ArchiveResultDTO struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type ArchiveEntryDTO struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type ArchiveListDTO struct {
	Bucket   string            `json:"bucket"`
	Archives []ArchiveEntryDTO `json:"archives"`
}

func (ep *TimesheetEndpoint) Archive(ctx context.Context, id string) (*ArchiveResultDTO, error) {
	return decode[ArchiveResultDTO](ep.transport.Post(ctx, "/api/timesheets/"+id+"/archive", nil, nil))
}

func (ep *TimesheetEndpoint) Archives(ctx context.Context, id string) (*ArchiveListDTO, error) {
	return decode[ArchiveListDTO](ep.transport.Get(ctx, "/api/timesheets/"+id+"/archives", nil))
}

// ArchivedExport returns the bytes of one archived workbook.
func (ep *TimesheetEndpoint) ArchivedExport(ctx context.Context, id, name string) ([]byte, error) {
	resp, err := ep.transport.Get(ctx, "/api/timesheets/"+id+"/archives/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
