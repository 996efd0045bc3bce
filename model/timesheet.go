package model

import "gorm.io/gorm"

type TimesheetStatus string

const (
	StatusMissing    TimesheetStatus = "missing"
	StatusIncomplete TimesheetStatus = "incomplete"
	StatusCompleted  TimesheetStatus = "completed"
)

// RequiredWeeklyHours is the threshold at which a week counts as completed.
const RequiredWeeklyHours = 40

// CalculateStatus derives the status of a week from its logged hours.
func CalculateStatus(hours float64) TimesheetStatus {
	if hours == 0 {
		return StatusMissing
	}
	if hours >= RequiredWeeklyHours {
		return StatusCompleted
	}
	return StatusIncomplete
}

// ParseStatus accepts the three known statuses. "all" and "" are handled by callers.
func ParseStatus(s string) (TimesheetStatus, bool) {
	switch TimesheetStatus(s) {
	case StatusMissing, StatusIncomplete, StatusCompleted:
		return TimesheetStatus(s), true
	}
	return "", false
}

type Timesheet struct {
	ID        string          `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Week      int             `gorm:"column:week;not null" json:"week"`
	StartDate string          `gorm:"column:start_date;type:char(10);not null;index" json:"startDate"` // yyyy-MM-dd
	EndDate   string          `gorm:"column:end_date;type:char(10);not null;index" json:"endDate"`     // yyyy-MM-dd
	Hours     float64         `gorm:"column:hours;type:decimal(10,2);not null" json:"hours"`
	Status    TimesheetStatus `gorm:"-" json:"status"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

// RefreshStatus recomputes Status from Hours. Status is never stored.
func (t *Timesheet) RefreshStatus() {
	t.Status = CalculateStatus(t.Hours)
}

func (t *Timesheet) AfterFind(tx *gorm.DB) error {
	t.RefreshStatus()
	return nil
}
