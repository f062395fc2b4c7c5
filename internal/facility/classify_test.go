package facility

import "testing"

func TestIsLTACH(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{
			name:   "type contains ltach",
			record: Record{Type: "LTACH"},
			want:   true,
		},
		{
			name:   "type contains ltach as substring",
			record: Record{Type: "ltach / specialty hospital"},
			want:   true,
		},
		{
			name:   "tag set contains ltach",
			record: Record{Type: "hospital", Tags: []string{"acute", "LTACH"}},
			want:   true,
		},
		{
			name: "inpatient type with ltach name and no tbi program",
			record: Record{
				Type: "Inpatient Specialty",
				Name: "Regional LTACH of Springfield",
			},
			want: true,
		},
		{
			name: "tbi program blocks the name fallback",
			record: Record{
				Type:     "Inpatient Specialty",
				Name:     "Regional LTACH of Springfield",
				Programs: []string{"tbi"},
			},
			want: false,
		},
		{
			name:   "plain rehab hospital",
			record: Record{Type: "Inpatient Rehabilitation", Name: "General Rehab"},
			want:   false,
		},
		{
			name:   "empty record",
			record: Record{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLTACH(tt.record); got != tt.want {
				t.Errorf("IsLTACH() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTBI(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{
			name:   "program set contains tbi",
			record: Record{Programs: []string{"stroke", "TBI"}},
			want:   true,
		},
		{
			name:   "name mentions tbi",
			record: Record{Name: "TBI Recovery Center"},
			want:   true,
		},
		{
			name:   "name mentions traumatic brain",
			record: Record{Name: "Center for Traumatic Brain Injury"},
			want:   true,
		},
		{
			name:   "name mentions brain injury",
			record: Record{Name: "Regional Brain Injury Unit"},
			want:   true,
		},
		{
			name:   "unrelated record",
			record: Record{Name: "Cardiac Care Pavilion", Programs: []string{"cardiac"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTBI(tt.record); got != tt.want {
				t.Errorf("IsTBI() = %v, want %v", got, tt.want)
			}
		})
	}
}
