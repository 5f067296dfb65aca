package detectors

import (
	"regexp"

	"github.com/digimosa/exposure-scan/internal/models"
)

// Detector defines the interface for exposure detection strategies
type Detector interface {
	Detect(content string) []string
	Type() models.FindingType
}

// BaseRegexDetector implements common regex scanning logic.
// Matches are returned in left-to-right occurrence order, non-overlapping,
// with duplicates preserved.
type BaseRegexDetector struct {
	Pattern *regexp.Regexp
	Label   models.FindingType
}

func (d *BaseRegexDetector) Detect(content string) []string {
	if d.Pattern == nil {
		return nil
	}
	return d.Pattern.FindAllString(content, -1)
}

func (d *BaseRegexDetector) Type() models.FindingType {
	return d.Label
}
