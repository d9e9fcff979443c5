package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (caller-supplied "now").
// Unrecognized input returns an error — callers decide whether to omit
// the field or ask for clarification; no silent defaulting here.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	// "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.nextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}

	// Bare weekday ("friday") means the next occurrence.
	if _, ok := weekdays[relative]; ok {
		return p.nextWeekday(relative, baseTime)
	}

	// Absolute ISO date.
	if t, err := time.ParseInLocation("2006-01-02", relative, p.location); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// IsDateExpression reports whether the string parses as a date expression.
func (p *Parser) IsDateExpression(s string) bool {
	_, err := p.Parse(s, time.Now())
	return err == nil
}

// nextWeekday returns the next occurrence of the named weekday strictly
// after the base day.
func (p *Parser) nextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
