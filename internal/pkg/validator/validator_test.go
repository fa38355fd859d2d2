package validator

import (
	"testing"
	"time"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate accepted 2025-02-30")
	}
	d, ok := IsValidDate("2025-02-28")
	if !ok {
		t.Fatal("IsValidDate rejected 2025-02-28")
	}
	if d.Year() != 2025 || d.Month() != time.February || d.Day() != 28 {
		t.Errorf("parsed date = %v", d)
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || IsValidLatitude(90.5) {
		t.Error("latitude range check broken")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) || IsValidLongitude(-180.5) {
		t.Error("longitude range check broken")
	}
}

func TestParseWallClock(t *testing.T) {
	cases := []struct {
		input   string
		want    WallClock
		wantErr bool
	}{
		{"09:00", WallClock{Hour: 9}, false},
		{"15:04:05", WallClock{Hour: 15, Minute: 4, Second: 5}, false},
		{"23:59", WallClock{Hour: 23, Minute: 59}, false},
		{"24:00", WallClock{}, true},
		{"9am", WallClock{}, true},
		{"", WallClock{}, true},
	}
	for _, c := range cases {
		got, err := ParseWallClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseWallClock(%q) expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWallClock(%q) error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseWallClock(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestWallClockOnKeepsUTCVerbatim(t *testing.T) {
	// The whole point of WallClock: "14:30" on 2025-03-10 is
	// 2025-03-10T14:30:00Z regardless of server timezone.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	w, err := ParseWallClock("14:30")
	if err != nil {
		t.Fatal(err)
	}
	got := w.On(date)
	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("On() = %v, want %v", got, want)
	}
}

func TestWallClockMinutesFromMidnight(t *testing.T) {
	w := WallClock{Hour: 9, Minute: 20}
	if got := w.MinutesFromMidnight(); got != 560 {
		t.Errorf("MinutesFromMidnight = %d, want 560", got)
	}
}
