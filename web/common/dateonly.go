package common

import (
	"encoding/json"
	"fmt"
	"time"

	"axiapac.com/timesheets/utils"
)

type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	// b is a quoted string like `"2025-10-29"`
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalParam(s)
}

// UnmarshalParam lets gin bind query and form values.
func (d *DateOnly) UnmarshalParam(s string) error {
	if s == "" {
		// handle empty date gracefully
		d.Time = time.Time{}
		return nil
	}

	t, err := utils.ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String is yyyy-MM-dd, or empty for the zero date.
func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return utils.FormatDate(d.Time)
}

// StringPtr is nil when d is nil.
func (d *DateOnly) StringPtr() *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// TimePtr is nil when d is nil or the zero date.
func (d *DateOnly) TimePtr() *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
