package core

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100

	// SampleWorkDays is the Monday to Friday span of a generated week.
	SampleWorkDays = 5

	// MaxTimesheetDays bounds the inclusive date range of one timesheet.
	MaxTimesheetDays = 31
)

var ErrRangeTooLong = fmt.Errorf("date range is longer than %d days", MaxTimesheetDays)

// TimesheetQuery selects timesheets for the list view. A nil Status or bound means no filter on it.
type TimesheetQuery struct {
	Status *model.TimesheetStatus
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Normalize fills in the default page and limit.
func (q TimesheetQuery) Normalize() TimesheetQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset is only meaningful for pages that exist; check against TotalPages first.
func (q TimesheetQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Paginate slices [(page-1)*limit, page*limit) out of an already filtered and sorted list.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}
	// compare pages before multiplying so a huge page cannot overflow the offset
	if page < 1 || limit < 1 || page > p.TotalPages {
		return p
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	p.Items = items[start:end]
	return p
}

// Overlaps reports whether [start, end] intersects the query range. Interval overlap, not
// containment: tsStart <= to && tsEnd >= from. A nil bound is open.
func Overlaps(tsStart, tsEnd time.Time, from, to *time.Time) bool {
	if to != nil && tsStart.After(*to) {
		return false
	}
	if from != nil && tsEnd.Before(*from) {
		return false
	}
	return true
}

// Matches applies the status and date-range parts of q to a single timesheet.
func (q TimesheetQuery) Matches(ts model.Timesheet) bool {
	if q.Status != nil && model.CalculateStatus(ts.Hours) != *q.Status {
		return false
	}
	if q.From == nil && q.To == nil {
		return true
	}
	start, err := utils.ParseDate(ts.StartDate)
	if err != nil {
		return false
	}
	end, err := utils.ParseDate(ts.EndDate)
	if err != nil {
		return false
	}
	return Overlaps(start, end, q.From, q.To)
}

// CompareTimesheets orders by start date, then week, then id.
func CompareTimesheets(a, b model.Timesheet) int {
	return cmp.Or(
		cmp.Compare(a.StartDate, b.StartDate),
		cmp.Compare(a.Week, b.Week),
		cmp.Compare(a.ID, b.ID),
	)
}

// SearchTimesheets filters, sorts and paginates an in-memory list.
func SearchTimesheets(all []model.Timesheet, q TimesheetQuery) Page[model.Timesheet] {
	q = q.Normalize()
	filtered := utils.Filter(all, q.Matches)
	slices.SortFunc(filtered, CompareTimesheets)
	for i := range filtered {
		filtered[i].RefreshStatus()
	}
	return Paginate(filtered, q.Page, q.Limit)
}

// WeekStart returns the Monday of the given week, counting week 1 from the first Monday
// on or after Jan 1.
func WeekStart(year, week int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	daysToMonday := (8 - int(jan1.Weekday())) % 7
	firstMonday := jan1.AddDate(0, 0, daysToMonday)
	return firstMonday.AddDate(0, 0, (week-1)*7)
}

func SumHours(tasks []model.Task) float64 {
	return utils.SumBy(tasks, func(t model.Task) float64 { return t.Hours })
}

// Reconcile sets the timesheet hours to the sum of its task hours.
func Reconcile(ts model.Timesheet, tasks []model.Task) model.Timesheet {
	ts.Hours = SumHours(tasks)
	ts.RefreshStatus()
	return ts
}

// FormatDateRange renders "1 - 5 January 2024", or the full start date when the month or
// year differs: "29 January 2024 - 2 February 2024".
func FormatDateRange(start, end time.Time) string {
	const full = "2 January 2006"
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return fmt.Sprintf("%d - %s", start.Day(), end.Format(full))
	}
	return fmt.Sprintf("%s - %s", start.Format(full), end.Format(full))
}

type DayTasks struct {
	Date  string       `json:"date"`
	Tasks []model.Task `json:"tasks"`
	Hours float64      `json:"hours"`
}

// GroupByDay buckets tasks by each calendar day of the timesheet. Tasks dated outside the
// range are not part of any bucket.
func GroupByDay(ts model.Timesheet, tasks []model.Task) ([]DayTasks, error) {
	days, err := TimesheetDays(ts)
	if err != nil {
		return nil, err
	}

	byDate := utils.GroupBy(tasks, func(t model.Task) string { return t.Date })
	out := make([]DayTasks, 0, len(days))
	for _, d := range days {
		dayTasks := byDate[d]
		if dayTasks == nil {
			dayTasks = []model.Task{}
		}
		out = append(out, DayTasks{Date: d, Tasks: dayTasks, Hours: SumHours(dayTasks)})
	}
	return out, nil
}

// SpanDays counts the calendar days of [start, end]. Zero or less when end is before start.
func SpanDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	// Sub saturates on ranges past ~292 years, which still lands far above any bound
	return int(end.Sub(start).Hours()/24) + 1
}

// TimesheetDays lists the dates of the timesheet's range. Ranges over MaxTimesheetDays fail
// with ErrRangeTooLong.
func TimesheetDays(ts model.Timesheet) ([]string, error) {
	start, err := utils.ParseDate(ts.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(ts.EndDate)
	if err != nil {
		return nil, err
	}
	if SpanDays(start, end) > MaxTimesheetDays {
		return nil, ErrRangeTooLong
	}
	return utils.DaysBetween(start, end), nil
}

// SortTasks orders tasks by date. Tasks on the same day keep their logged order.
func SortTasks(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return cmp.Compare(a.Date, b.Date)
	})
}

// InRange reports whether date falls within the timesheet's inclusive range.
func InRange(ts model.Timesheet, date string) bool {
	return date >= ts.StartDate && date <= ts.EndDate
}
