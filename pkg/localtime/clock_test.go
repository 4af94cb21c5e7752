package localtime_test

import (
	"testing"
	"time"

	"github.com/yhoon3002/schedule-bot/pkg/localtime"
)

func TestNewClock(t *testing.T) {
	_, err := localtime.NewClock("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid clock: %v", err)
	}

	_, err = localtime.NewClock("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseInput(t *testing.T) {
	clock, _ := localtime.NewClock("Asia/Seoul")
	seoul := clock.Location()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "Plain input",
			in:   "2024-01-01T10:00",
			want: time.Date(2024, 1, 1, 10, 0, 0, 0, seoul),
		},
		{
			name: "With seconds",
			in:   "2024-01-01T10:00:30",
			want: time.Date(2024, 1, 1, 10, 0, 30, 0, seoul),
		},
		{
			name: "Surrounding whitespace",
			in:   " 2024-01-01T10:00 ",
			want: time.Date(2024, 1, 1, 10, 0, 0, 0, seoul),
		},
		{
			name:    "Date only",
			in:      "2024-01-01",
			wantErr: true,
		},
		{
			name:    "Empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.ParseInput(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseInput() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseISO(t *testing.T) {
	clock, _ := localtime.NewClock("Asia/Seoul")
	seoul := clock.Location()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC3339 with offset",
			in:   "2024-01-01T10:00:00+09:00",
			want: time.Date(2024, 1, 1, 10, 0, 0, 0, seoul),
		},
		{
			name: "RFC3339 UTC",
			in:   "2024-01-01T01:00:00Z",
			want: time.Date(2024, 1, 1, 10, 0, 0, 0, seoul),
		},
		{
			name: "Bare date is local midnight",
			in:   "2024-01-01",
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, seoul),
		},
		{
			name:    "Zoneless timestamp",
			in:      "2024-01-01T10:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.ParseISO(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseISO() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseISO() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputFromISO(t *testing.T) {
	clock, _ := localtime.NewClock("Asia/Seoul")

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "Offset converts to local wall clock",
			in:   "2024-01-01T01:00:00Z",
			want: "2024-01-01T10:00",
		},
		{
			name: "Bare date stays at midnight",
			in:   "2024-01-01",
			want: "2024-01-01T00:00",
		},
		{
			name: "Empty stays empty",
			in:   "",
			want: "",
		},
		{
			name:    "Garbage",
			in:      "not-a-time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.InputFromISO(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InputFromISO() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("InputFromISO() got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRFC3339AndDate(t *testing.T) {
	clock, _ := localtime.NewClock("Asia/Seoul")
	at := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)

	if got := clock.RFC3339(at); got != "2024-01-01T10:00:00+09:00" {
		t.Errorf("RFC3339() got = %q", got)
	}
	if got := clock.Date(at); got != "2024-01-01" {
		t.Errorf("Date() got = %q", got)
	}
}

func TestIsDateOnly(t *testing.T) {
	if !localtime.IsDateOnly("2024-01-01") {
		t.Errorf("IsDateOnly(date) = false, want true")
	}
	if localtime.IsDateOnly("2024-01-01T10:00") {
		t.Errorf("IsDateOnly(datetime) = true, want false")
	}
	if localtime.IsDateOnly("2024-01-01 10") {
		t.Errorf("IsDateOnly(spaced) = true, want false")
	}
}
