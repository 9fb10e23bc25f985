package validator

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-02-29", "2000-12-31"}
	invalid := []string{"2023-02-29", "2023-13-01", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestCoordinates(t *testing.T) {
	for _, v := range []float64{-90, 0, 45.5, 90} {
		if !IsValidLatitude(v) {
			t.Errorf("IsValidLatitude(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-90.0001, 91, math.NaN(), math.Inf(1)} {
		if IsValidLatitude(v) {
			t.Errorf("IsValidLatitude(%v) = true, want false", v)
		}
	}
	for _, v := range []float64{-180, 0, 106.8, 180} {
		if !IsValidLongitude(v) {
			t.Errorf("IsValidLongitude(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{-181, 180.5, math.NaN(), math.Inf(-1)} {
		if IsValidLongitude(v) {
			t.Errorf("IsValidLongitude(%v) = true, want false", v)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"asc", "desc"}
	if !IsInSlice("asc", slice) {
		t.Errorf("IsInSlice('asc') = false, want true")
	}
	if IsInSlice("up", slice) {
		t.Errorf("IsInSlice('up') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "lat", Message: "lat is required"},
		{Field: "lng", Message: "lng is required"},
	}
	got := errs.Error()
	want := "lat: lat is required; lng: lng is required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "year is required"},
		{Field: "month", Message: "month must be a number between 1 and 12"},
	}
	got := errs.ToMap()
	want := map[string]string{"year": "year is required", "month": "month must be a number between 1 and 12"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
