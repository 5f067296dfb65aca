package models

import "time"

// RiskLevel is the qualitative severity bucket derived from a risk score
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// FindingType labels one category of detected exposure
type FindingType string

const (
	TypePhone FindingType = "Phone"
	TypeEmail FindingType = "Email"
)

// Findings holds the per-category matches produced by one analysis pass.
// Phones and emails keep first-match order from the scanned text; duplicates
// are possible. GPS is nil when no location was detected.
type Findings struct {
	Phones []string `json:"phones"`
	Emails []string `json:"emails"`
	Faces  int      `json:"faces"`
	GPS    *string  `json:"gps"`
}

// ProfileStats are the public counters shown on the profile card
type ProfileStats struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// AnalysisResult is the outcome of analyzing a single profile URL.
// It carries no identity or timestamp; those are assigned by the store.
type AnalysisResult struct {
	Platform        string       `json:"platform"`
	Username        string       `json:"username"`
	ProfileURL      string       `json:"profileUrl"`
	AvatarURL       string       `json:"avatarUrl"`
	RiskScore       int          `json:"riskScore"`
	RiskLevel       RiskLevel    `json:"riskLevel"`
	Stats           ProfileStats `json:"stats"`
	Leaks           []string     `json:"leaks"`
	Findings        Findings     `json:"findings"`
	Recommendations []string     `json:"recommendations"`
}

// Scan is a persisted analysis record. Records are immutable once created;
// the store only appends new ones and wipes all on clear.
type Scan struct {
	ID string `json:"id"`
	AnalysisResult
	ScannedAt time.Time `json:"scannedAt"`
}
