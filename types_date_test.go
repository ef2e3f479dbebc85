package lotwise

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d != NewDate(2024, time.January, 10) {
		t.Errorf("ParseDate(2024-01-10) = %s", d)
	}

	// permissive single-digit form
	d, err = ParseDate("2024-1-9")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d != NewDate(2024, time.January, 9) {
		t.Errorf("ParseDate(2024-1-9) = %s", d)
	}

	if _, err := ParseDate("10/01/2024"); err == nil {
		t.Error("ParseDate(10/01/2024) expected an error")
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	for _, tc := range []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"-1y", NewDate(today.Year()-1, today.Month(), today.Day())},
	} {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateSub(t *testing.T) {
	a := NewDate(2024, time.February, 28)
	b := NewDate(2024, time.March, 1)
	if got := b.Sub(a); got != 2 { // leap year, Feb 29 in between
		t.Errorf("Sub across leap day = %d, want 2", got)
	}
	if got := a.Sub(b); got != -2 {
		t.Errorf("reverse Sub = %d, want -2", got)
	}
}

func TestDateNormalization(t *testing.T) {
	// day 0 normalizes to the last day of the previous month
	if got := NewDate(2024, time.March, 0); got != NewDate(2024, time.February, 29) {
		t.Errorf("NewDate(2024, March, 0) = %s, want 2024-02-29", got)
	}
	if got := NewDate(2024, time.January, 32); got != NewDate(2024, time.February, 1) {
		t.Errorf("NewDate(2024, January, 32) = %s, want 2024-02-01", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.July, 4)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-07-04"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
