package detectors

import (
	"regexp"

	"github.com/digimosa/exposure-scan/internal/models"
)

// PhoneRegex: Vietnamese local (0...) or +84 formats, NANP-style +1 with
// optional punctuation, or parenthesized US area codes like (555) 012-3456
var phonePattern = regexp.MustCompile(`(0|\+84)[0-9]{8,10}|\+1[\s.\-]?\(?[0-9]{3}\)?[\s.\-]?[0-9]{3}[\s.\-]?[0-9]{4}|\([0-9]{3}\)\s?[0-9]{3}-[0-9]{4}`)

type PhoneDetector struct {
	BaseRegexDetector
}

func NewPhoneDetector() *PhoneDetector {
	return &PhoneDetector{
		BaseRegexDetector: BaseRegexDetector{
			Pattern: phonePattern,
			Label:   models.TypePhone,
		},
	}
}
