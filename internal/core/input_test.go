package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Clear() should drop all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionPause) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestColorParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"", ColorDefault, false},
		{"pink", ColorPink, false},
		{"Light Pink", ColorLightPink, false},
		{"lightpink", ColorLightPink, false},
		{"dark_gray", ColorDarkGray, false},
		{"grey", ColorGray, false},
		{"MOCCASIN", ColorMoccasin, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := range colorNames {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v", c.String(), got, err, c)
		}
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter(3)
	c.Increase(5)
	c.Decrease(2)
	if c.Value() != 6 {
		t.Errorf("Value() = %d, expected 6", c.Value())
	}
	c.Set(-1)
	if c.Value() != -1 {
		t.Errorf("Value() after Set = %d, expected -1", c.Value())
	}
}
