// Package planner holds the term and unit arithmetic for quarter plans.
// Nothing in here touches the database.
package planner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Quarter string

const (
	QuarterFall   Quarter = "Fall"
	QuarterWinter Quarter = "Winter"
	QuarterSpring Quarter = "Spring"
	QuarterSummer Quarter = "Summer"
)

// title cases a single word, which is all the quarter and status values need
func title(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// ParseQuarter normalizes free form input ("winter", "WINTER") to the
// canonical title case name used in the schema
func ParseQuarter(s string) (Quarter, error) {
	q := Quarter(title(strings.TrimSpace(s)))
	switch q {
	case QuarterFall, QuarterWinter, QuarterSpring, QuarterSummer:
		return q, nil
	}
	return "", fmt.Errorf("invalid quarter %q", s)
}

// Scan lets a Quarter be filled straight from a cobra flag value
func (q *Quarter) Scan(src interface{}) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into Quarter", src)
	}
	parsed, err := ParseQuarter(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Term is one academic quarter, optionally pinned to a year
type Term struct {
	Quarter Quarter
	Year    string
}

// ParseTerm accepts "Winter 2026" or a bare quarter name
func ParseTerm(s string) (Term, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		quarter, err := ParseQuarter(fields[0])
		if err != nil {
			return Term{}, err
		}
		return Term{Quarter: quarter}, nil
	case 2:
		quarter, err := ParseQuarter(fields[0])
		if err != nil {
			return Term{}, err
		}
		return Term{Quarter: quarter, Year: fields[1]}, nil
	}
	return Term{}, fmt.Errorf("invalid term %q", s)
}

func (t Term) String() string {
	if t.Year == "" {
		return string(t.Quarter)
	}
	return fmt.Sprintf("%s %s", t.Quarter, t.Year)
}

// enrollment statuses as they appear in offering rows
const (
	StatusOpen  = "Open"
	StatusMixed = "Mixed"
	StatusFull  = "Full"
)

// NormalizeStatus maps free text to a canonical status, returning the
// input trimmed and title cased when it is not one of the known values
func NormalizeStatus(s string) string {
	return title(strings.TrimSpace(s))
}
