package risk

import "github.com/digimosa/exposure-scan/internal/models"

// Per-category weights applied when scoring findings
const (
	phoneWeight = 15
	emailWeight = 15
	faceWeight  = 5
	gpsWeight   = 25

	maxScore = 100
)

// Score computes the exposure risk score for a set of findings.
// Pure and total: empty categories contribute zero and the result
// is clamped to 100 even when the weighted sum exceeds it.
func Score(f models.Findings) int {
	score := len(f.Phones)*phoneWeight + len(f.Emails)*emailWeight + f.Faces*faceWeight
	if f.GPS != nil {
		score += gpsWeight
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// Classify maps a risk score to its qualitative level.
// Bands are inclusive on the lower side: >=76 Critical, >=51 High, >=21 Medium.
func Classify(score int) models.RiskLevel {
	switch {
	case score >= 76:
		return models.RiskCritical
	case score >= 51:
		return models.RiskHigh
	case score >= 21:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
