package recurrence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	None    Kind = "none"
	Daily   Kind = "daily"
	Weekly  Kind = "weekly"
	Monthly Kind = "monthly"
)

var dayNames = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

var dayAbbrev = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// Rule is a closed recurrence variant. Weekday is meaningful only for Weekly,
// MonthDay only for Monthly; the zero Rule is treated as None.
type Rule struct {
	Kind     Kind
	Weekday  time.Weekday
	MonthDay int
}

func Once() Rule                      { return Rule{Kind: None} }
func EveryDay() Rule                  { return Rule{Kind: Daily} }
func EveryWeekOn(d time.Weekday) Rule { return Rule{Kind: Weekly, Weekday: d} }
func EveryMonthOn(day int) Rule       { return Rule{Kind: Monthly, MonthDay: day} }

// ParseKind parses "none", "daily", "weekly" or "monthly" (case-insensitive).
// An empty string is None.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", None:
		return None, nil
	case Daily, Weekly, Monthly:
		return k, nil
	default:
		return "", fmt.Errorf("unknown recurrence kind: %q", s)
	}
}

// Anchored builds a rule of the given kind whose payload is taken from anchor:
// its weekday for Weekly, its day of month for Monthly.
func Anchored(kind Kind, anchor time.Time) Rule {
	switch kind {
	case Daily:
		return EveryDay()
	case Weekly:
		return EveryWeekOn(anchor.Weekday())
	case Monthly:
		return EveryMonthOn(anchor.Day())
	default:
		return Once()
	}
}

func (r Rule) kind() Kind {
	if r.Kind == "" {
		return None
	}
	return r.Kind
}

// Repeats reports whether the rule produces more than one occurrence.
func (r Rule) Repeats() bool {
	return r.kind() != None
}

func (r Rule) Validate() error {
	switch r.kind() {
	case None, Daily:
		return nil
	case Weekly:
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", r.Weekday)
		}
		return nil
	case Monthly:
		if r.MonthDay < 1 || r.MonthDay > 31 {
			return fmt.Errorf("invalid month day: %d", r.MonthDay)
		}
		return nil
	default:
		return fmt.Errorf("unknown recurrence kind: %q", r.Kind)
	}
}

// Next returns the first occurrence strictly after t, keeping t's time of day.
// It returns the zero time for a rule that does not repeat. Monthly rules on a
// day the month lacks fall on that month's last day.
func (r Rule) Next(t time.Time) time.Time {
	switch r.kind() {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		days := (int(r.Weekday) - int(t.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return t.AddDate(0, 0, days)
	case Monthly:
		candidate := monthDay(t.Year(), t.Month(), r.MonthDay, t)
		if !candidate.After(t) {
			candidate = monthDay(t.Year(), t.Month()+1, r.MonthDay, t)
		}
		return candidate
	}
	return time.Time{}
}

func monthDay(year int, month time.Month, day int, clock time.Time) time.Time {
	first := time.Date(year, month, 1, clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), clock.Location())
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// Describe returns a human-readable description of the rule.
func (r Rule) Describe() string {
	switch r.kind() {
	case Daily:
		return "Repeats daily"
	case Weekly:
		return "Repeats weekly on " + r.Weekday.String()[:3]
	case Monthly:
		return fmt.Sprintf("Repeats monthly on day %d", r.MonthDay)
	}
	return "Does not repeat"
}

type ruleJSON struct {
	Kind     Kind   `json:"kind"`
	Weekday  string `json:"weekday,omitempty"`
	MonthDay int    `json:"month_day,omitempty"`
}

func (r Rule) MarshalJSON() ([]byte, error) {
	out := ruleJSON{Kind: r.kind()}
	switch out.Kind {
	case Weekly:
		out.Weekday = dayAbbrev[r.Weekday]
	case Monthly:
		out.MonthDay = r.MonthDay
	}
	return json.Marshal(out)
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var in ruleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode recurrence: %w", err)
	}
	kind, err := ParseKind(string(in.Kind))
	if err != nil {
		return err
	}

	parsed := Rule{Kind: kind}
	switch kind {
	case Weekly:
		wd, ok := dayNames[in.Weekday]
		if !ok {
			return fmt.Errorf("unknown day: %q", in.Weekday)
		}
		parsed.Weekday = wd
	case Monthly:
		parsed.MonthDay = in.MonthDay
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*r = parsed
	return nil
}
