package convert

import (
	"testing"
	"time"
)

func TestToString(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{42, "42"},
		{int64(42), "42"},
		{uint64(7), "7"},
		{20.0, "20"},
		{2.5, "2.5"},
		{ts, "2024-05-01T12:00:00Z"},
	}

	for _, c := range cases {
		if got := ToString(c.in); got != c.want {
			t.Errorf("ToString(%v): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToInt(t *testing.T) {
	got, err := ToInt("15")
	if err != nil || got != 15 {
		t.Errorf("ToInt(\"15\"): got %d, %v", got, err)
	}
	got, err = ToInt(10.9)
	if err != nil || got != 10 {
		t.Errorf("ToInt(10.9): got %d, %v", got, err)
	}
	if _, err := ToInt([]string{"x"}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
