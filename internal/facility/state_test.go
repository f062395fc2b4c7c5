package facility

import "testing"

func TestResolveState(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "explicit state field wins",
			record: Record{State: "nj", Location: Place{Text: "Houston, TX"}},
			want:   "NJ",
		},
		{
			name:   "explicit full state name",
			record: Record{State: "New Jersey"},
			want:   "NJ",
		},
		{
			name:   "address state",
			record: Record{Address: Place{State: "tx"}},
			want:   "TX",
		},
		{
			name:   "structured location state",
			record: Record{Location: Place{State: "CO"}},
			want:   "CO",
		},
		{
			name:   "id token heuristic",
			record: Record{ID: "kessler-institute-for-rehabilitation-nj"},
			want:   "NJ",
		},
		{
			name:   "id short trailing token",
			record: Record{ID: "sunrise-rehabilitation-fla"},
			want:   "FLA",
		},
		{
			name:   "trailing two-letter suffix in location text",
			record: Record{Location: Place{Text: "West Orange, NJ"}},
			want:   "NJ",
		},
		{
			name:   "state name substring any case",
			record: Record{Location: Place{Text: "Somewhere in NEW JERSEY near the shore"}},
			want:   "NJ",
		},
		{
			name:   "district of columbia substring",
			record: Record{Location: Place{Text: "located in the District of Columbia"}},
			want:   "DC",
		},
		{
			name:   "west virginia not shadowed by virginia",
			record: Record{Location: Place{Text: "rural west virginia"}},
			want:   "WV",
		},
		{
			name:   "arkansas not shadowed by kansas",
			record: Record{Location: Place{Text: "central arkansas"}},
			want:   "AR",
		},
		{
			name:   "no state-bearing field and non-matching id",
			record: Record{ID: "some-long-facility-slug", Name: "Mystery Facility"},
			want:   UnknownState,
		},
		{
			name:   "empty record",
			record: Record{},
			want:   UnknownState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveState(tt.record); got != tt.want {
				t.Errorf("ResolveState() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveStateDeterministic(t *testing.T) {
	// Text mentioning several states must always resolve the same way.
	record := Record{Location: Place{Text: "between washington and oregon and idaho"}}

	first := ResolveState(record)
	for i := 0; i < 100; i++ {
		if got := ResolveState(record); got != first {
			t.Fatalf("run %d: ResolveState() = %q, previously %q", i, got, first)
		}
	}
}

func TestResolveStateKnownFalsePositive(t *testing.T) {
	// The substring scan reads "Georgia" out of a facility name on
	// purpose; this documents the accepted limitation.
	record := Record{Location: Place{Text: "Georgia Regional Rehabilitation Center"}}
	if got := ResolveState(record); got != "GA" {
		t.Errorf("ResolveState() = %q, want GA (documented heuristic behavior)", got)
	}
}

func TestStateFromID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "two letter token", id: "kessler-institute-for-rehabilitation-nj", want: "NJ"},
		{name: "underscore separators", id: "select_specialty_tx", want: "TX"},
		{name: "first two-letter token wins", id: "nv-desert-springs-ca", want: "NV"},
		{name: "short last token fallback", id: "facility-123", want: "123"},
		{name: "no match", id: "some-long-facility-slug", want: ""},
		{name: "empty", id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stateFromID(tt.id); got != tt.want {
				t.Errorf("stateFromID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
