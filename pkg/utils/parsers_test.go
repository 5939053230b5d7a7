package utils_test

import (
	"testing"
	"time"

	"github.com/lirantal/railil/pkg/utils"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty passes through", input: "", want: ""},
		{name: "iso date", input: "2023-10-10", want: "2023-10-10"},
		{name: "dotted date", input: "10.10.2023", want: "2023-10-10"},
		{name: "garbage", input: "next thursday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseDateToday(t *testing.T) {
	got, err := utils.ParseDate("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Now().In(utils.HomeLocation()).Format("2006-01-02")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseTime(t *testing.T) {
	if got, err := utils.ParseTime("08:30"); err != nil || got != "08:30" {
		t.Errorf("expected 08:30, got %q (%v)", got, err)
	}
	if got, err := utils.ParseTime(""); err != nil || got != "" {
		t.Errorf("expected empty pass-through, got %q (%v)", got, err)
	}
	if _, err := utils.ParseTime("25:99"); err == nil {
		t.Error("expected error for out-of-range time")
	}
}
