package risk

import (
	"testing"

	"github.com/digimosa/exposure-scan/internal/models"
)

func gps(s string) *string { return &s }

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		findings models.Findings
		want     int
	}{
		{
			name:     "empty findings",
			findings: models.Findings{},
			want:     0,
		},
		{
			name:     "single phone",
			findings: models.Findings{Phones: []string{"0901234567"}},
			want:     15,
		},
		{
			name:     "single email",
			findings: models.Findings{Emails: []string{"a@b.com"}},
			want:     15,
		},
		{
			name:     "faces only",
			findings: models.Findings{Faces: 3},
			want:     15,
		},
		{
			name:     "gps only",
			findings: models.Findings{GPS: gps("Miami, FL (25.7617° N, 80.1918° W)")},
			want:     25,
		},
		{
			name: "mixed categories",
			findings: models.Findings{
				Phones: []string{"0901234567", "+1 (555) 012-3456"},
				Emails: []string{"a@b.com"},
				Faces:  2,
				GPS:    gps("Chicago, IL (41.8781° N, 87.6298° W)"),
			},
			want: 30 + 15 + 10 + 25,
		},
		{
			name: "weighted sum clamped to 100",
			findings: models.Findings{
				Phones: []string{"1", "2", "3", "4"},
				Emails: []string{"1", "2", "3", "4"},
				Faces:  5,
				GPS:    gps("somewhere"),
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.findings); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{20, models.RiskLow},
		{21, models.RiskMedium},
		{50, models.RiskMedium},
		{51, models.RiskHigh},
		{75, models.RiskHigh},
		{76, models.RiskCritical},
		{100, models.RiskCritical},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
