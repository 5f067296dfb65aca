package analyzer

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/digimosa/exposure-scan/internal/analyzer/detectors"
	"github.com/digimosa/exposure-scan/internal/models"
	"github.com/digimosa/exposure-scan/internal/risk"
)

const (
	// DefaultPlatform is assumed when the client omits the platform field
	DefaultPlatform = "instagram"

	unknownUser = "unknown_user"
)

// Sample corpus standing in for fetched bio and caption content.
// The analyzer never fetches the submitted URL; every analysis scans
// this fixed text.
const (
	sampleBio      = "Contact me at john.doe@email.com or call +1 (555) 012-3456. Based in San Francisco."
	sampleCaptions = "Check out my new home! Email: backup@gmail.com Phone: 0901234567"
)

// locationPool has 8 slots: 5 concrete city strings and 3 empty slots
// meaning "no location detected" (~62.5% chance of a hit).
var locationPool = []string{
	"San Francisco, CA (37.7749° N, 122.4194° W)",
	"New York, NY (40.7128° N, 74.0060° W)",
	"Los Angeles, CA (34.0522° N, 118.2437° W)",
	"Chicago, IL (41.8781° N, 87.6298° W)",
	"Miami, FL (25.7617° N, 80.1918° W)",
	"", "", "",
}

var avatarPool = []string{
	"https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=200&h=200&fit=crop",
	"https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
	"https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=200&h=200&fit=crop",
}

// Analyzer runs the simulated exposure analysis for a profile URL.
// Randomness comes from the injected source so tests can seed it.
type Analyzer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	phones detectors.Detector
	emails detectors.Detector
}

func New(rng *rand.Rand) *Analyzer {
	return &Analyzer{
		rng:    rng,
		phones: detectors.NewPhoneDetector(),
		emails: detectors.NewEmailDetector(),
	}
}

// Analyze produces an AnalysisResult for the given profile URL. It does not
// persist anything. An empty platform falls back to DefaultPlatform; the URL
// must be non-empty (the API layer validates that before calling).
func (a *Analyzer) Analyze(url, platform string) models.AnalysisResult {
	if platform == "" {
		platform = DefaultPlatform
	}

	fullText := sampleBio + " " + sampleCaptions

	findings := models.Findings{
		Phones: a.phones.Detect(fullText),
		Emails: a.emails.Detect(fullText),
	}

	// Draws below share one rng; serialize so concurrent requests don't race it
	a.mu.Lock()
	findings.Faces = a.rng.Intn(5)
	if loc := locationPool[a.rng.Intn(len(locationPool))]; loc != "" {
		findings.GPS = &loc
	}
	avatar := avatarPool[a.rng.Intn(len(avatarPool))]
	stats := models.ProfileStats{
		Posts:     a.rng.Intn(500),
		Followers: a.rng.Intn(5000),
		Following: a.rng.Intn(1000),
	}
	a.mu.Unlock()

	score := risk.Score(findings)

	return models.AnalysisResult{
		Platform:        platform,
		Username:        usernameFromURL(url),
		ProfileURL:      url,
		AvatarURL:       avatar,
		RiskScore:       score,
		RiskLevel:       risk.Classify(score),
		Stats:           stats,
		Leaks:           buildLeaks(findings),
		Findings:        findings,
		Recommendations: buildRecommendations(findings),
	}
}

// usernameFromURL takes the substring after the final "/" of the raw URL.
// A trailing slash yields an empty segment, which becomes the sentinel.
func usernameFromURL(url string) string {
	username := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		username = url[idx+1:]
	}
	if username == "" {
		return unknownUser
	}
	return username
}

// buildLeaks emits one summary line per non-empty category, in fixed order:
// phones, emails, faces, gps.
func buildLeaks(f models.Findings) []string {
	var leaks []string
	if len(f.Phones) > 0 {
		leaks = append(leaks, fmt.Sprintf("%d phone number(s) exposed", len(f.Phones)))
	}
	if len(f.Emails) > 0 {
		leaks = append(leaks, fmt.Sprintf("%d email address(es) exposed", len(f.Emails)))
	}
	if f.Faces > 0 {
		leaks = append(leaks, fmt.Sprintf("%d face(s) detected in photos", f.Faces))
	}
	if f.GPS != nil {
		leaks = append(leaks, fmt.Sprintf("Location data exposed: %s", *f.GPS))
	}
	return leaks
}

// buildRecommendations appends a fixed advisory block per triggered category,
// in the same order as buildLeaks. The result is never empty: when nothing
// triggered, a single reassurance message is emitted instead.
func buildRecommendations(f models.Findings) []string {
	var recs []string

	if len(f.Phones) > 0 {
		recs = append(recs,
			"Remove phone numbers from public bio and posts immediately.",
			"Use a business phone or virtual number for public contact.",
		)
	}
	if len(f.Emails) > 0 {
		recs = append(recs,
			"Hide email addresses from public view.",
			"Create a separate public email for social media contacts.",
		)
	}
	if f.Faces > 0 {
		recs = append(recs,
			"Review photos for identifiable faces, especially of minors.",
			"Consider blurring faces in public posts.",
		)
	}
	if f.GPS != nil {
		recs = append(recs,
			"Disable location services for your camera app.",
			"Remove EXIF metadata before posting photos.",
			"Avoid posting photos that reveal your home location.",
		)
	}

	if len(recs) == 0 {
		recs = append(recs, "Your profile looks secure. Keep monitoring regularly.")
	}
	return recs
}
