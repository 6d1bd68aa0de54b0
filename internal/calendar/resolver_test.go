package calendar

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

func TestNewResolver(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		wantName string
		wantErr  bool
	}{
		{name: "empty selects default", zone: "", wantName: DefaultTimeZone},
		{name: "whitespace selects default", zone: "   ", wantName: DefaultTimeZone},
		{name: "utc", zone: "UTC", wantName: "UTC"},
		{name: "vladivostok", zone: "Asia/Vladivostok", wantName: "Asia/Vladivostok"},
		{name: "unknown zone", zone: "Mars/Olympus", wantErr: true},
		{name: "host zone", zone: "Local", wantErr: true},
		{name: "host zone padded", zone: " Local ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.zone)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidTimeZone) {
					t.Fatalf("NewResolver(%q) error = %v, want ErrInvalidTimeZone", tt.zone, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewResolver(%q) unexpected error: %v", tt.zone, err)
			}
			if r.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.wantName)
			}
		})
	}
}

func TestResolver_DateOf(t *testing.T) {
	instant := time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		zone string
		want civil.Date
	}{
		{zone: "UTC", want: civil.Date{Year: 2024, Month: time.January, Day: 1}},
		{zone: "Europe/Kaliningrad", want: civil.Date{Year: 2024, Month: time.January, Day: 1}},
		{zone: "Europe/Moscow", want: civil.Date{Year: 2024, Month: time.January, Day: 2}},
		{zone: "Asia/Kamchatka", want: civil.Date{Year: 2024, Month: time.January, Day: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			r, err := NewResolver(tt.zone)
			if err != nil {
				t.Fatalf("NewResolver: %v", err)
			}
			if got := r.DateOf(instant); got != tt.want {
				t.Errorf("DateOf(%v) = %v, want %v", instant, got, tt.want)
			}
		})
	}
}

func TestResolver_Today(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC) }

	r, err := NewResolver("Europe/Moscow", WithClock(clock))
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	want := civil.Date{Year: 2024, Month: time.March, Day: 6}
	if got := r.Today(); got != want {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}

func TestResolver_Midnight(t *testing.T) {
	r, err := NewResolver("Europe/Moscow")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	d := civil.Date{Year: 2024, Month: time.March, Day: 6}
	got := r.Midnight(d)

	want := time.Date(2024, 3, 5, 21, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", d, got.UTC(), want)
	}
	if back := r.DateOf(got); back != d {
		t.Errorf("DateOf(Midnight(%v)) = %v", d, back)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input  string
		want   civil.Date
		wantOK bool
	}{
		{input: "2024-03-06", want: civil.Date{Year: 2024, Month: time.March, Day: 6}, wantOK: true},
		{input: "  2024-03-06\n", want: civil.Date{Year: 2024, Month: time.March, Day: 6}, wantOK: true},
		{input: "2024-02-29", want: civil.Date{Year: 2024, Month: time.February, Day: 29}, wantOK: true},
		{input: "2023-02-29", wantOK: false},
		{input: "2024-3-6", wantOK: false},
		{input: "06.03.2024", wantOK: false},
		{input: "2024-03-06T00:00:00Z", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolver_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(20240306, 1))
	start := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(2040, 12, 31, 0, 0, 0, 0, time.UTC).Unix()

	for _, zone := range SupportedZones() {
		r, err := NewResolver(zone.Name)
		if err != nil {
			t.Fatalf("NewResolver(%q): %v", zone.Name, err)
		}

		for i := 0; i < 1000; i++ {
			instant := time.Unix(start+rng.Int64N(end-start), 0)
			d := r.DateOf(instant)

			parsed, ok := ParseDate(d.String())
			if !ok || parsed != d {
				t.Fatalf("%s: ParseDate(%q) = %v, %v; want %v", zone.Name, d.String(), parsed, ok, d)
			}
			if back := r.DateOf(r.Midnight(d)); back != d {
				t.Fatalf("%s: DateOf(Midnight(%v)) = %v", zone.Name, d, back)
			}
		}
	}
}

func TestSupportedZones(t *testing.T) {
	zones := SupportedZones()
	if len(zones) != 12 {
		t.Fatalf("SupportedZones() returned %d zones, want 12", len(zones))
	}
	if zones[0].Name != DefaultTimeZone {
		t.Errorf("first zone = %q, want %q", zones[0].Name, DefaultTimeZone)
	}

	zones[0].Name = "mutated"
	if SupportedZones()[0].Name != DefaultTimeZone {
		t.Error("SupportedZones() exposes internal slice")
	}
}
