package core

import (
	"fmt"
	"testing"
	"time"

	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t := utils.MustParseDate(s)
	return &t
}

func TestOverlaps(t *testing.T) {
	tsStart := utils.MustParseDate("2024-01-08")
	tsEnd := utils.MustParseDate("2024-01-12")

	tests := []struct {
		name     string
		from     *time.Time
		to       *time.Time
		expected bool
	}{
		{name: "No bounds", expected: true},
		{name: "Contained", from: date("2024-01-09"), to: date("2024-01-10"), expected: true},
		{name: "Containing", from: date("2024-01-01"), to: date("2024-01-31"), expected: true},
		{name: "Touches start", from: date("2024-01-01"), to: date("2024-01-08"), expected: true},
		{name: "Touches end", from: date("2024-01-12"), to: date("2024-01-20"), expected: true},
		{name: "Entirely before", from: date("2024-01-01"), to: date("2024-01-07"), expected: false},
		{name: "Entirely after", from: date("2024-01-13"), to: date("2024-01-20"), expected: false},
		{name: "Only from, after end", from: date("2024-01-13"), expected: false},
		{name: "Only from, before end", from: date("2024-01-10"), expected: true},
		{name: "Only to, before start", to: date("2024-01-07"), expected: false},
		{name: "Only to, after start", to: date("2024-01-08"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tsStart, tsEnd, tt.from, tt.to))
		})
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	a1, a2 := utils.MustParseDate("2024-01-08"), utils.MustParseDate("2024-01-12")
	b1, b2 := utils.MustParseDate("2024-01-11"), utils.MustParseDate("2024-01-20")
	assert.Equal(t, Overlaps(a1, a2, &b1, &b2), Overlaps(b1, b2, &a1, &a2))

	c1, c2 := utils.MustParseDate("2024-02-01"), utils.MustParseDate("2024-02-05")
	assert.Equal(t, Overlaps(a1, a2, &c1, &c2), Overlaps(c1, c2, &a1, &a2))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, expected int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{99, 5, 20},
		{99, 100, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	p := Paginate(items, 1, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Items)
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	p = Paginate(items, 3, 5)
	assert.Equal(t, []int{11, 12}, p.Items)

	p = Paginate(items, 4, 5)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 12, p.Total)

	p = Paginate([]int{}, 1, 5)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)

	// (page-1)*limit would overflow int here
	p = Paginate([]int{1, 2, 3}, 100000000000000000, 100)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 1, p.TotalPages)
}

func TestQueryNormalize(t *testing.T) {
	q := TimesheetQuery{}.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = TimesheetQuery{Page: 3, Limit: 500}.Normalize()
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Equal(t, 200, q.Offset())
}

func sampleTimesheets() []model.Timesheet {
	return []model.Timesheet{
		{ID: "c", Week: 3, StartDate: "2024-01-15", EndDate: "2024-01-19", Hours: 40},
		{ID: "a", Week: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Hours: 40},
		{ID: "e", Week: 5, StartDate: "2024-01-29", EndDate: "2024-02-02", Hours: 0},
		{ID: "b", Week: 2, StartDate: "2024-01-08", EndDate: "2024-01-12", Hours: 22.5},
		{ID: "d", Week: 4, StartDate: "2024-01-22", EndDate: "2024-01-26", Hours: 40},
	}
}

func TestSearchTimesheets(t *testing.T) {
	all := sampleTimesheets()

	t.Run("Sorted by start date", func(t *testing.T) {
		p := SearchTimesheets(all, TimesheetQuery{Limit: 10})
		ids := utils.Map(p.Items, func(ts model.Timesheet) string { return ts.ID })
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
		assert.Equal(t, model.StatusIncomplete, p.Items[1].Status)
		assert.Equal(t, model.StatusMissing, p.Items[4].Status)
	})

	t.Run("Status filter", func(t *testing.T) {
		completed := model.StatusCompleted
		p := SearchTimesheets(all, TimesheetQuery{Status: &completed})
		assert.Equal(t, 3, p.Total)
		for _, ts := range p.Items {
			assert.Equal(t, model.StatusCompleted, ts.Status)
		}
	})

	t.Run("Overlap filter", func(t *testing.T) {
		p := SearchTimesheets(all, TimesheetQuery{From: date("2024-01-10"), To: date("2024-01-16")})
		ids := utils.Map(p.Items, func(ts model.Timesheet) string { return ts.ID })
		assert.Equal(t, []string{"b", "c"}, ids)
	})

	t.Run("Default page size", func(t *testing.T) {
		p := SearchTimesheets(append(all, all...), TimesheetQuery{})
		assert.Len(t, p.Items, DefaultLimit)
		assert.Equal(t, 10, p.Total)
		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("Input untouched", func(t *testing.T) {
		_ = SearchTimesheets(all, TimesheetQuery{})
		assert.Equal(t, "c", all[0].ID)
	})
}

func TestCompareTimesheetsTieBreak(t *testing.T) {
	a := model.Timesheet{ID: "x", Week: 2, StartDate: "2024-01-01"}
	b := model.Timesheet{ID: "y", Week: 1, StartDate: "2024-01-01"}
	c := model.Timesheet{ID: "a", Week: 1, StartDate: "2024-01-01"}
	assert.Positive(t, CompareTimesheets(a, b))
	assert.Negative(t, CompareTimesheets(c, b))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		year, week int
		expected   string
	}{
		{2024, 1, "2024-01-01"}, // Jan 1 2024 is a Monday
		{2024, 2, "2024-01-08"},
		{2024, 5, "2024-01-29"},
		{2025, 1, "2025-01-06"},
		{2023, 1, "2023-01-02"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			start := WeekStart(tt.year, tt.week)
			assert.Equal(t, tt.expected, utils.FormatDate(start))
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestReconcile(t *testing.T) {
	ts := model.Timesheet{ID: "t1", Hours: 10, Status: model.StatusIncomplete}
	tasks := []model.Task{{Hours: 8}, {Hours: 8}, {Hours: 8}, {Hours: 8}, {Hours: 8}}

	got := Reconcile(ts, tasks)
	assert.Equal(t, 40.0, got.Hours)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, 10.0, ts.Hours)

	got = Reconcile(ts, nil)
	assert.Equal(t, 0.0, got.Hours)
	assert.Equal(t, model.StatusMissing, got.Status)
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "1 - 5 January 2024",
		FormatDateRange(utils.MustParseDate("2024-01-01"), utils.MustParseDate("2024-01-05")))
	assert.Equal(t, "29 January 2024 - 2 February 2024",
		FormatDateRange(utils.MustParseDate("2024-01-29"), utils.MustParseDate("2024-02-02")))
	assert.Equal(t, "30 December 2024 - 3 January 2025",
		FormatDateRange(utils.MustParseDate("2024-12-30"), utils.MustParseDate("2025-01-03")))
}

func TestGroupByDay(t *testing.T) {
	ts := model.Timesheet{StartDate: "2024-01-01", EndDate: "2024-01-05"}
	tasks := []model.Task{
		{ID: "1", Date: "2024-01-01", Hours: 4},
		{ID: "2", Date: "2024-01-01", Hours: 4},
		{ID: "3", Date: "2024-01-03", Hours: 2.5},
		{ID: "4", Date: "2024-02-01", Hours: 8},
	}

	days, err := GroupByDay(ts, tasks)
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Len(t, days[0].Tasks, 2)
	assert.Equal(t, 8.0, days[0].Hours)
	assert.Empty(t, days[1].Tasks)
	assert.NotNil(t, days[1].Tasks)
	assert.Equal(t, 2.5, days[2].Hours)
	assert.Equal(t, "2024-01-05", days[4].Date)

	_, err = GroupByDay(model.Timesheet{StartDate: "bad", EndDate: "2024-01-05"}, tasks)
	assert.Error(t, err)

	_, err = GroupByDay(model.Timesheet{StartDate: "0001-01-01", EndDate: "9999-12-31"}, tasks)
	assert.ErrorIs(t, err, ErrRangeTooLong)
}

func TestSpanDays(t *testing.T) {
	tests := []struct {
		start, end string
		expected   int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-05", 5},
		{"2024-01-01", "2024-01-31", 31},
		{"2024-02-01", "2024-03-01", 30},
		{"2024-01-05", "2024-01-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.start+" "+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.expected, SpanDays(utils.MustParseDate(tt.start), utils.MustParseDate(tt.end)))
		})
	}

	assert.Greater(t, SpanDays(utils.MustParseDate("0001-01-01"), utils.MustParseDate("9999-12-31")), MaxTimesheetDays)
}

func TestTimesheetDays(t *testing.T) {
	days, err := TimesheetDays(model.Timesheet{StartDate: "2024-01-29", EndDate: "2024-02-02"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, days)

	days, err = TimesheetDays(model.Timesheet{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	assert.Len(t, days, MaxTimesheetDays)

	_, err = TimesheetDays(model.Timesheet{StartDate: "2024-01-01", EndDate: "2024-02-01"})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}

func TestSortTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "b", Date: "2024-01-02"},
		{ID: "a1", Date: "2024-01-01"},
		{ID: "a2", Date: "2024-01-01"},
	}
	SortTasks(tasks)
	ids := utils.Map(tasks, func(t model.Task) string { return t.ID })
	assert.Equal(t, []string{"a1", "a2", "b"}, ids)
}

func TestInRange(t *testing.T) {
	ts := model.Timesheet{StartDate: "2024-01-01", EndDate: "2024-01-05"}
	assert.True(t, InRange(ts, "2024-01-01"))
	assert.True(t, InRange(ts, "2024-01-05"))
	assert.False(t, InRange(ts, "2023-12-31"))
	assert.False(t, InRange(ts, "2024-01-06"))
}
