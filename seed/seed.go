package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	"axiapac.com/timesheets/store"
	"axiapac.com/timesheets/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	DemoYear  = 2024
	DemoWeeks = 99
)

// Record is one timesheet in a seed file.
type Record struct {
	ID        string  `yaml:"id,omitempty"`
	Week      int     `yaml:"week"`
	StartDate string  `yaml:"startDate"`
	EndDate   string  `yaml:"endDate"`
	Hours     float64 `yaml:"hours"`
}

type File struct {
	Timesheets []Record `yaml:"timesheets"`
}

// DemoHours: every 5th week is empty, every 3rd is partly filled, the rest are full.
func DemoHours(week int, r *rand.Rand) float64 {
	switch {
	case week%5 == 0:
		return 0
	case week%3 == 0:
		return float64(20 + r.IntN(15))
	default:
		return model.RequiredWeeklyHours
	}
}

// Generate builds one Monday to Friday timesheet per week.
func Generate(year, weeks int, r *rand.Rand) []model.Timesheet {
	out := make([]model.Timesheet, 0, weeks)
	for week := 1; week <= weeks; week++ {
		start := core.WeekStart(year, week)
		ts := model.Timesheet{
			ID:        uuid.NewString(),
			Week:      week,
			StartDate: utils.FormatDate(start),
			EndDate:   utils.FormatDate(start.AddDate(0, 0, core.SampleWorkDays-1)),
			Hours:     DemoHours(week, r),
		}
		ts.RefreshStatus()
		out = append(out, ts)
	}
	return out
}

func Decode(rd io.Reader) ([]model.Timesheet, error) {
	var f File
	if err := yaml.NewDecoder(rd).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	out := make([]model.Timesheet, 0, len(f.Timesheets))
	for i, rec := range f.Timesheets {
		id := rec.ID
		if id == "" {
			id = uuid.NewString()
		}
		ts := model.Timesheet{ID: id, Week: rec.Week, StartDate: rec.StartDate, EndDate: rec.EndDate, Hours: rec.Hours}
		if _, err := core.TimesheetDays(ts); err != nil {
			return nil, fmt.Errorf("timesheet %d: %w", i, err)
		}
		ts.RefreshStatus()
		out = append(out, ts)
	}
	return out, nil
}

func Load(path string) ([]model.Timesheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Encode(w io.Writer, timesheets []model.Timesheet) error {
	f := File{Timesheets: utils.Map(timesheets, func(ts model.Timesheet) Record {
		return Record{ID: ts.ID, Week: ts.Week, StartDate: ts.StartDate, EndDate: ts.EndDate, Hours: ts.Hours}
	})}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}

// Apply writes timesheets into st. It does nothing when st already has timesheets.
func Apply(ctx context.Context, st store.Store, timesheets []model.Timesheet) (int, error) {
	existing, err := st.ListTimesheets(ctx, core.TimesheetQuery{Page: 1, Limit: 1})
	if err != nil {
		return 0, err
	}
	if existing.Total > 0 {
		log.Printf("[INFO] store already holds %d timesheets, skipping seed\n", existing.Total)
		return 0, nil
	}
	for i := range timesheets {
		if err := st.CreateTimesheet(ctx, &timesheets[i]); err != nil {
			return i, fmt.Errorf("failed to seed week %d: %w", timesheets[i].Week, err)
		}
	}
	log.Printf("[INFO] seeded %d timesheets\n", len(timesheets))
	return len(timesheets), nil
}
