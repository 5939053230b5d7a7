package stations_test

import (
	"strings"
	"testing"

	"github.com/lirantal/railil/pkg/stations"
)

func TestResolveExactID(t *testing.T) {
	for _, id := range []string{"3700", "680", "300"} {
		s, ok := stations.Resolve(id)
		if !ok {
			t.Fatalf("expected id %q to resolve", id)
		}
		if s.ID != id {
			t.Errorf("expected id %q, got %q", id, s.ID)
		}
	}
}

func TestResolveFuzzy(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantContains string
	}{
		{
			name:         "city name matches a station in that city",
			input:        "Tel Aviv",
			wantContains: "Tel Aviv",
		},
		{
			name:         "single token inside a longer name",
			input:        "Savidor",
			wantContains: "Savidor",
		},
		{
			name:         "missing apostrophe",
			input:        "Modiin",
			wantContains: "Modi'in",
		},
		{
			name:         "case insensitive",
			input:        "herzliya",
			wantContains: "Herzliya",
		},
		{
			name:         "hebrew name",
			input:        "באר שבע",
			wantContains: "Be'er Sheva",
		},
		{
			name:         "small typo within tolerance",
			input:        "Ashkelom",
			wantContains: "Ashkelon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := stations.Resolve(tt.input)
			if !ok {
				t.Fatalf("expected %q to resolve", tt.input)
			}
			if !strings.Contains(s.Name.EN, tt.wantContains) {
				t.Errorf("expected English name containing %q, got %q", tt.wantContains, s.Name.EN)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, input := range []string{"", "xzqvw", "99999999"} {
		if s, ok := stations.Resolve(input); ok {
			t.Errorf("expected %q not to resolve, got %q", input, s.Name.EN)
		}
	}
}

func TestByID(t *testing.T) {
	s, ok := stations.ByID("3500")
	if !ok {
		t.Fatal("expected station 3500 to exist")
	}
	if s.Name.HE != "הרצליה" {
		t.Errorf("unexpected Hebrew name %q", s.Name.HE)
	}
	if _, ok := stations.ByID("1"); ok {
		t.Error("expected id 1 to be unknown")
	}
}
