package service

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"axiapac.com/timesheets/utils"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet        = "Tasks"
	XlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateDisplay  = "Mon 2 Jan 2006"
	archiveStampLayout = "20060102T150405Z"
)

var exportHeader = []any{"Date", "Description", "Type of work", "Project", "Hours"}

type Export struct {
	FileName string
	Data     []byte
}

// Export renders the week's tasks as an XLSX workbook, one row per task plus a total.
func (s *TimesheetService) Export(ctx context.Context, id string) (*Export, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := renderWorkbook(detail)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName: fmt.Sprintf("timesheet-week-%d-%s.xlsx", detail.Timesheet.Week, detail.Timesheet.StartDate),
		Data:     data,
	}, nil
}

type ArchiveResult struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type ArchiveEntry struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type ArchiveList struct {
	Bucket   string         `json:"bucket"`
	Archives []ArchiveEntry `json:"archives"`
}

func (s *TimesheetService) archiveDir(id string) string {
	return path.Join(s.prefix, id)
}

// Archive uploads the export under prefix/<id>/<stamp>-<file name>.
func (s *TimesheetService) Archive(ctx context.Context, id string) (*ArchiveResult, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	export, err := s.Export(ctx, id)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s-%s", s.now().UTC().Format(archiveStampLayout), export.FileName)
	key := path.Join(s.archiveDir(id), name)
	if err := s.archive.WriteFile(ctx, key, export.Data, XlsxContentType); err != nil {
		return nil, fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return &ArchiveResult{Bucket: s.archive.Location(), Key: key}, nil
}

// Archives lists the archived exports of a timesheet, newest first.
func (s *TimesheetService) Archives(ctx context.Context, id string) (*ArchiveList, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	dir := s.archiveDir(id)
	keys, err := s.archive.ListFiles(ctx, dir+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to list archives of %s: %w", id, err)
	}
	keys = utils.Filter(keys, func(key string) bool { return path.Dir(key) == dir })

	entries := utils.Map(keys, func(key string) ArchiveEntry {
		return ArchiveEntry{Name: path.Base(key), Key: key}
	})
	// names start with a UTC stamp, so they sort by time
	slices.SortFunc(entries, func(a, b ArchiveEntry) int { return cmp.Compare(b.Name, a.Name) })
	return &ArchiveList{Bucket: s.archive.Location(), Archives: entries}, nil
}

// ArchivedExport downloads one archived workbook of the timesheet by file name.
func (s *TimesheetService) ArchivedExport(ctx context.Context, id, name string) (*Export, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if name != path.Base(name) || !strings.HasSuffix(name, ".xlsx") {
		return nil, invalid("invalid archive name %q", name)
	}

	list, err := s.Archives(ctx, id)
	if err != nil {
		return nil, err
	}
	entry, ok := utils.Find(list.Archives, func(e ArchiveEntry) bool { return e.Name == name })
	if !ok {
		return nil, ErrArchiveNotFound
	}

	var buf bytes.Buffer
	if err := s.archive.ReadFile(ctx, entry.Key, &buf); err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", entry.Key, err)
	}
	return &Export{FileName: name, Data: buf.Bytes()}, nil
}

func renderWorkbook(detail *TimesheetDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	ts := detail.Timesheet
	if err := f.SetSheetRow(exportSheet, "A1", &[]any{fmt.Sprintf("Week %d", ts.Week), detail.Label, string(ts.Status)}); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A3", &exportHeader); err != nil {
		return nil, err
	}

	row := 4
	for _, day := range detail.Days {
		for _, task := range day.Tasks {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(exportSheet, cell, &[]any{
				displayDate(task.Date), task.Description, task.TypeOfWork, task.Project, task.Hours,
			}); err != nil {
				return nil, err
			}
			row++
		}
	}

	cell, _ := excelize.CoordinatesToCellName(4, row)
	if err := f.SetSheetRow(exportSheet, cell, &[]any{"Total", detail.TotalHours}); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "D", 22); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func displayDate(d string) string {
	t, err := utils.ParseDate(d)
	if err != nil {
		return d
	}
	return t.Format(exportDateDisplay)
}

// ReadExport returns the rows below the header of an exported workbook. The last row is the total.
func ReadExport(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 3 {
		return nil, nil
	}
	return rows[3:], nil
}
