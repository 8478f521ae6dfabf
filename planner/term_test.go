package planner

import (
	"testing"
)

func TestParseQuarter(t *testing.T) {
	valid := map[string]Quarter{
		"Winter":  QuarterWinter,
		"winter":  QuarterWinter,
		"FALL":    QuarterFall,
		" spring": QuarterSpring,
		"summer ": QuarterSummer,
	}
	for input, want := range valid {
		got, err := ParseQuarter(input)
		if err != nil {
			t.Errorf("ParseQuarter(%q) errored: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseQuarter(%q) = %q, want %q", input, got, want)
		}
	}

	for _, input := range []string{"", "Autumn", "Winter 2026"} {
		if _, err := ParseQuarter(input); err == nil {
			t.Errorf("ParseQuarter(%q) should have errored", input)
		}
	}
}

func TestQuarterScan(t *testing.T) {
	var q Quarter
	if err := q.Scan("winter"); err != nil {
		t.Fatal("scan errored: ", err)
	}
	if q != QuarterWinter {
		t.Errorf("scan set %q, want Winter", q)
	}
	if err := q.Scan(3); err == nil {
		t.Error("scanning a non string should error")
	}
}

func TestParseTerm(t *testing.T) {
	term, err := ParseTerm("winter 2026")
	if err != nil {
		t.Fatal("parse errored: ", err)
	}
	if term.Quarter != QuarterWinter || term.Year != "2026" {
		t.Errorf("got %+v", term)
	}
	if term.String() != "Winter 2026" {
		t.Errorf("String() = %q", term.String())
	}

	term, err = ParseTerm("Fall")
	if err != nil {
		t.Fatal("parse errored: ", err)
	}
	if term.Year != "" || term.String() != "Fall" {
		t.Errorf("got %+v (%q)", term, term.String())
	}

	for _, input := range []string{"", "Winter 2026 extra", "2026 Winter"} {
		if _, err := ParseTerm(input); err == nil {
			t.Errorf("ParseTerm(%q) should have errored", input)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"open":     StatusOpen,
		"FULL":     StatusFull,
		" mixed ":  StatusMixed,
		"waitlist": "Waitlist",
		"über":     "Über",
		"":         "",
	}
	for input, want := range cases {
		if got := NormalizeStatus(input); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", input, got, want)
		}
	}
}
