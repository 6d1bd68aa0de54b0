package sqlstore

import (
	"slices"
	"testing"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

func TestIntArrayScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    IntArray
		wantErr bool
	}{
		{name: "null", src: nil, want: nil},
		{name: "empty", src: "{}", want: IntArray{}},
		{name: "bytes", src: []byte("{1,3,5}"), want: IntArray{1, 3, 5}},
		{name: "string with spaces", src: "{2, 4}", want: IntArray{2, 4}},
		{name: "garbage element", src: "{1,x}", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IntArray
			err := got.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !slices.Equal(got, tt.want) || (got == nil) != (tt.want == nil) {
				t.Errorf("Scan() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestIntArrayValue(t *testing.T) {
	v, err := IntArray{1, 2, 7}.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != "{1,2,7}" {
		t.Errorf("Value() = %v, want {1,2,7}", v)
	}

	v, err = IntArray(nil).Value()
	if err != nil || v != nil {
		t.Errorf("Value() of nil = %v, %v, want nil, nil", v, err)
	}
}

func TestScheduleFromDays(t *testing.T) {
	if got := scheduleFromDays(nil); got != nil {
		t.Errorf("scheduleFromDays(nil) = %+v, want nil", got)
	}

	got := scheduleFromDays(IntArray{1, 5, 9})
	want := &domain.LegacySchedule{Mon: true, Fri: true}
	if got == nil || *got != *want {
		t.Errorf("scheduleFromDays() = %+v, want %+v", got, want)
	}
	if !slices.Equal(got.Days(), []int{1, 5}) {
		t.Errorf("Days() = %v, want [1 5]", got.Days())
	}
}
