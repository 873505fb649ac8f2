package model

import (
	"fmt"
	"strings"
	"time"
	"zonecast/shared/constant"
	"zonecast/shared/failure"
)

// ZoneID is an IANA zone name such as "America/New_York".
type ZoneID string

func (z ZoneID) String() string {
	return string(z)
}

// CivilDateTime is a wall-clock reading with no zone attached, at second precision.
// Values built through NewCivilDateTime or CivilFromTime are always normalized.
type CivilDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

func NewCivilDateTime(year int, month time.Month, day, hour, minute, second int) CivilDateTime {
	return CivilFromTime(time.Date(year, month, day, hour, minute, second, 0, time.UTC))
}

// CivilFromTime takes the wall-clock fields of t as read in t's own location.
func CivilFromTime(t time.Time) CivilDateTime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return CivilDateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// ParseCivilDateTime parses the boundary formats "2006-01-02" and "15:04" or "15:04:05".
func ParseCivilDateTime(date, clock string) (CivilDateTime, error) {
	day, err := time.Parse(constant.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return CivilDateTime{}, failure.InvalidCivilDateTime(fmt.Sprintf("date %q must be formatted as YYYY-MM-DD", date))
	}

	clock = strings.TrimSpace(clock)

	layout := constant.ClockLayout
	if strings.Count(clock, ":") == 2 {
		layout = constant.ClockLayoutSecond
	}

	wall, err := time.Parse(layout, clock)
	if err != nil {
		return CivilDateTime{}, failure.InvalidCivilDateTime(fmt.Sprintf("time %q must be formatted as HH:MM or HH:MM:SS", clock))
	}

	return NewCivilDateTime(day.Year(), day.Month(), day.Day(), wall.Hour(), wall.Minute(), wall.Second()), nil
}

// AsUTC reads the civil value as if it were a UTC wall clock.
func (c CivilDateTime) AsUTC() time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

func (c CivilDateTime) Add(d time.Duration) CivilDateTime {
	return CivilFromTime(c.AsUTC().Add(d))
}

func (c CivilDateTime) Sub(other CivilDateTime) time.Duration {
	return c.AsUTC().Sub(other.AsUTC())
}

func (c CivilDateTime) IsZero() bool {
	return c == CivilDateTime{}
}

func (c CivilDateTime) String() string {
	return c.AsUTC().Format(constant.CivilLayout)
}

func (c CivilDateTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CivilDateTime) UnmarshalText(text []byte) error {
	t, err := time.Parse(constant.CivilLayout, string(text))
	if err != nil {
		return failure.InvalidCivilDateTime(fmt.Sprintf("civil date/time %q must be formatted as %s", text, constant.CivilLayout))
	}

	*c = CivilFromTime(t)

	return nil
}

// SourceSelection is the moment being converted.
type SourceSelection struct {
	Civil CivilDateTime
	Zone  ZoneID
}

// ConvertedTime is one rendered zone reading. Offset is local minus UTC.
type ConvertedTime struct {
	Zone         ZoneID
	Time         string
	Date         string
	Abbreviation string
	Civil        CivilDateTime
	Offset       time.Duration
}

// SkippedZone is a target that could not be converted in a pass.
type SkippedZone struct {
	Zone   ZoneID
	Reason string
}

// Conversion is the full output of one conversion pass.
type Conversion struct {
	Source  SourceSelection
	UTC     time.Time
	Times   []ConvertedTime
	Skipped []SkippedZone
}
