package types

import "fmt"

// RiskTier classifies a reporting entity's risk level. Tiers are supplied
// by configuration, never derived by the workflow engine itself.
type RiskTier string

const (
	RiskTierLow    RiskTier = "LOW"
	RiskTierMedium RiskTier = "MEDIUM"
	RiskTierHigh   RiskTier = "HIGH"
)

// AllRiskTiers returns all risk tiers from lowest to highest
func AllRiskTiers() []RiskTier {
	return []RiskTier{
		RiskTierLow,
		RiskTierMedium,
		RiskTierHigh,
	}
}

// IsValid checks if the risk tier is valid
func (r RiskTier) IsValid() bool {
	switch r {
	case RiskTierLow, RiskTierMedium, RiskTierHigh:
		return true
	default:
		return false
	}
}

// Rank returns a sortable weight, higher means riskier. Unknown tiers
// rank lowest so a config gap never promotes a submission.
func (r RiskTier) Rank() int {
	switch r {
	case RiskTierHigh:
		return 3
	case RiskTierMedium:
		return 2
	case RiskTierLow:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of the risk tier
func (r RiskTier) String() string {
	return string(r)
}

// ParseRiskTier parses a string into a RiskTier
func ParseRiskTier(s string) (RiskTier, error) {
	r := RiskTier(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid risk tier: %s", s)
	}
	return r, nil
}
