package weekcycle

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

func TestISOWeek(t *testing.T) {
	tests := []struct {
		date civil.Date
		want int
	}{
		{date: civil.Date{Year: 2024, Month: time.January, Day: 1}, want: 1},
		{date: civil.Date{Year: 2024, Month: time.March, Day: 6}, want: 10},
		{date: civil.Date{Year: 2021, Month: time.January, Day: 3}, want: 53},
		{date: civil.Date{Year: 2020, Month: time.December, Day: 31}, want: 53},
		{date: civil.Date{Year: 2024, Month: time.December, Day: 30}, want: 1},
		{date: civil.Date{Year: 2023, Month: time.January, Day: 1}, want: 52},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := ISOWeek(tt.date); got != tt.want {
				t.Errorf("ISOWeek(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Frequency
	}{
		{raw: "", want: domain.FrequencyWeekly},
		{raw: "   ", want: domain.FrequencyWeekly},
		{raw: "1", want: domain.FrequencyWeekly},
		{raw: "2.1", want: domain.FrequencyOddWeek},
		{raw: "2,2", want: domain.FrequencyEvenWeek},
		{raw: " 4.3 ", want: domain.FrequencyCycle3},
		{raw: "4,4", want: domain.FrequencyCycle4},
		{raw: "Еженедельно", want: domain.FrequencyWeekly},
		{raw: "раз в 2 недели", want: domain.FrequencyOddWeek},
		{raw: "2.5", want: domain.FrequencyOddWeek},
		{raw: "раз в месяц", want: domain.FrequencyCycle1},
		{raw: "4.9", want: domain.FrequencyCycle1},
		{raw: "quarterly", want: domain.FrequencyWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "1", "2,2", "4.3", "раз в месяц", "еженедельно", "junk"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(string(once)); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestMatches_AllWeeks(t *testing.T) {
	for week := 1; week <= 53; week++ {
		t.Run(fmt.Sprintf("week %d", week), func(t *testing.T) {
			if !Matches(week, domain.FrequencyWeekly) {
				t.Error("weekly must always match")
			}

			odd := week%2 == 1
			if got := Matches(week, domain.FrequencyOddWeek); got != odd {
				t.Errorf("Matches(%d, 2.1) = %v, want %v", week, got, odd)
			}
			if got := Matches(week, domain.FrequencyEvenWeek); got != !odd {
				t.Errorf("Matches(%d, 2.2) = %v, want %v", week, got, !odd)
			}

			wantCycle3 := (week-1)%4 == 2
			if got := Matches(week, domain.FrequencyCycle3); got != wantCycle3 {
				t.Errorf("Matches(%d, 4.3) = %v, want %v", week, got, wantCycle3)
			}

			matched := 0
			for _, f := range []domain.Frequency{
				domain.FrequencyCycle1, domain.FrequencyCycle2,
				domain.FrequencyCycle3, domain.FrequencyCycle4,
			} {
				if Matches(week, f) {
					matched++
				}
			}
			if matched != 1 {
				t.Errorf("week %d matched %d cycle codes, want exactly 1", week, matched)
			}
		})
	}
}

func TestMatches_Cycle3Weeks(t *testing.T) {
	want := map[int]bool{3: true, 7: true, 11: true, 51: true}
	for _, week := range []int{1, 2, 3, 4, 5, 7, 11, 50, 51, 52, 53} {
		if got := Matches(week, domain.FrequencyCycle3); got != want[week] {
			t.Errorf("Matches(%d, 4.3) = %v, want %v", week, got, want[week])
		}
	}
}

func TestMatches_RequiresNormalizedCode(t *testing.T) {
	for _, raw := range []string{"garbage", "2,1", "", " 1 "} {
		for week := 1; week <= 8; week++ {
			if Matches(week, domain.Frequency(raw)) {
				t.Errorf("Matches(%d, %q) = true, want false for an unnormalized code", week, raw)
			}
		}
	}

	if f := Normalize("2,1"); !Matches(1, f) || Matches(2, f) {
		t.Errorf("normalized 2,1 = %q should match odd weeks only", f)
	}
}

func TestMatchesDate(t *testing.T) {
	// 2024-03-06 is in ISO week 10.
	d := civil.Date{Year: 2024, Month: time.March, Day: 6}

	if MatchesDate(d, domain.FrequencyOddWeek) {
		t.Error("week 10 should not match 2.1")
	}
	if !MatchesDate(d, domain.FrequencyEvenWeek) {
		t.Error("week 10 should match 2.2")
	}
	if !MatchesDate(d, domain.FrequencyCycle2) {
		t.Error("week 10 should match 4.2")
	}
}
