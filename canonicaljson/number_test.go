package canonicaljson

import (
	"encoding/json"
	"testing"
)

func TestFormatNumber_LiteralNormalization(t *testing.T) {
	cases := []struct {
		literal string
		want    string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"1.0", "1"},
		{"1678886400.00", "1678886400"},
		{"0.950", "0.95"},
		{"100.5", "100.5"},
		{"-0.5", "-0.5"},
		{"123456.789", "123456.789"},
		{"0.30000000000000004", "0.30000000000000004"},
		{"1E+2", "100"},
		{"42", "42"},
		{"-17", "-17"},
		{"9007199254740991", "9007199254740991"},
		{"-9007199254740991", "-9007199254740991"},
		// Beyond MaxSafeInteger literals collapse to the nearest float64.
		{"9007199254740993", "9007199254740992"},
		{"100000000000000000000", "100000000000000000000"},
	}
	for _, tc := range cases {
		got, err := CanonicalizeValue(json.Number(tc.literal))
		if err != nil {
			t.Errorf("literal %s: unexpected error: %v", tc.literal, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("literal %s: got %s, want %s", tc.literal, got, tc.want)
		}
	}
}

func TestFormatNumber_ScientificBounds(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{2.5e-10, "2.5e-10"},
		{ExpLowerBound, "0.000001"},
		{ExpUpperBound, "1e+21"},
		{2.5e22, "2.5e+22"},
		{-1e-7, "-1e-7"},
		{-1e21, "-1e+21"},
		{999999999999999900000, "999999999999999900000"},
	}
	for _, tc := range cases {
		got, err := CanonicalizeValue(tc.value)
		if err != nil {
			t.Errorf("value %v: unexpected error: %v", tc.value, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("value %v: got %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestFormatNumber_NativeGoTypes(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{float64(1.0), "1"},
		{float32(0.5), "0.5"},
		{int(42), "42"},
		{int8(-8), "-8"},
		{int64(9007199254740991), "9007199254740991"},
		{uint64(9007199254740991), "9007199254740991"},
		{uint8(255), "255"},
	}
	for _, tc := range cases {
		got, err := CanonicalizeValue(tc.value)
		if err != nil {
			t.Errorf("value %v (%T): unexpected error: %v", tc.value, tc.value, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("value %v (%T): got %s, want %s", tc.value, tc.value, got, tc.want)
		}
	}
}

func TestMaxSafeIntegerConstant(t *testing.T) {
	if MaxSafeInteger != 1<<53-1 {
		t.Errorf("MaxSafeInteger = %d, want %d", int64(MaxSafeInteger), int64(1<<53-1))
	}
}
