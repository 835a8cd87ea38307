package reminder

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Date is a calendar date without a time zone or a time of day.
// The zero value is not a valid date.
type Date struct {
	t     time.Time
	valid bool
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, ErrParseDate
	}
	return Date{t: t, valid: true}, nil
}

func (d Date) IsValid() bool {
	return d.valid
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// TimeOfDay is a wall-clock time with second precision.
// The zero value is not a valid time of day.
type TimeOfDay struct {
	t     time.Time
	valid bool
}

// ParseTimeOfDay accepts HH:MM:SS, optionally with a fractional part
// which is truncated to whole seconds.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return TimeOfDay{}, ErrParseTimeOfDay
	}
	return TimeOfDay{t: t.Truncate(time.Second), valid: true}, nil
}

func (t TimeOfDay) IsValid() bool {
	return t.valid
}

func (t TimeOfDay) String() string {
	return t.t.Format(TimeLayout)
}
