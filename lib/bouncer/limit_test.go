package bouncer

import "testing"

func TestParseLimit(t *testing.T) {
	for _, entry := range []struct {
		input    string
		expected int
	}{
		{"", 1000},
		{"   ", 1000},
		{"1000", 1000},
		{"10", 10},
		{" 250 ", 250},
		{"9", 10},
		{"0", 10},
		{"-5", 10},
		{"100000", 100000},
		{"100001", 100000},
		{"99999999999999999999999", 100000},
		{"-99999999999999999999999", 10},
		{"abc", 1000},
		{"12a", 1000},
	} {
		actual := ParseLimit(entry.input)
		if actual != entry.expected {
			t.Errorf("input %q, expected: %v | got %v", entry.input, entry.expected, actual)
		}
	}
}

func TestNewApplicationClampsLimit(t *testing.T) {
	app, _, _ := newTestApp(3)
	if app.Limit() != MinLimit {
		t.Errorf("expected: %v | got %v", MinLimit, app.Limit())
	}
	if app.Panel().Counter() != "Cats spawned: 0 / 10" {
		t.Errorf("wrong counter %q", app.Panel().Counter())
	}
}
