package models

// Tier is the qualitative strength bucket derived from entropy bits.
type Tier string

const (
	TierWeak       Tier = "Weak"
	TierMedium     Tier = "Medium"
	TierStrong     Tier = "Strong"
	TierVeryStrong Tier = "VeryStrong"
)

// StrengthAssessment describes how strong a generated secret is expected to be.
type StrengthAssessment struct {
	EntropyBits        int    `json:"entropy_bits"`
	Tier               Tier   `json:"tier"`
	EstimatedCrackTime string `json:"estimated_crack_time"`
}

// BreachResult is the outcome of a k-anonymity breach lookup.
//
// OccurrenceCount is 0 both when the secret was not found and when the
// lookup failed. Checked is false when no lookup was performed at all.
type BreachResult struct {
	OccurrenceCount int  `json:"occurrence_count"`
	Checked         bool `json:"checked"`
}

// Breached reports whether the secret appeared in at least one breach.
func (b BreachResult) Breached() bool {
	return b.OccurrenceCount > 0
}
