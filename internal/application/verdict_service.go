package application

import (
	"math"

	"github.com/voltcheck/voltcheck/internal/domain"
)

// Verdict values, in descending priority of the conditions that
// produce them.
const (
	VerdictRejected = "REJECTED"
	VerdictReview   = "REVIEW"
	VerdictApproved = "APPROVED"
)

// Default decision thresholds. Callers may override the score floor
// (CI gates typically do); the confidence floor is fixed.
const (
	DefaultMinScore      = 95.0
	MinConfidenceApprove = 0.7
)

// Severity weights for the compliance score.
const (
	penaltyCritical = 25.0
	penaltyMajor    = 10.0
	penaltyMinor    = 2.0
)

// Assessment is the full outcome for one report: the merged findings
// plus the derived score, confidence, and verdict.
type Assessment struct {
	Result          *domain.ValidationResult `json:"result"`
	ComplianceScore float64                  `json:"complianceScore"`
	Confidence      float64                  `json:"confidence"`
	Verdict         string                   `json:"verdict"`
	Profile         domain.StandardProfile   `json:"profile"`
}

// VerdictService derives scores and accept/review/reject verdicts from
// validation results. It is stateless and deterministic.
type VerdictService struct {
	minScore float64
}

// NewVerdictService builds a verdict service with the default score
// floor.
func NewVerdictService() *VerdictService {
	return &VerdictService{minScore: DefaultMinScore}
}

// WithMinScore overrides the score floor below which a verdict drops to
// REVIEW. Returns the service for chaining.
func (s *VerdictService) WithMinScore(min float64) *VerdictService {
	s.minScore = min
	return s
}

// ComplianceScore maps severity counts to a 0-100 score: each critical
// costs 25 points, each major 10, each minor 2. Informational findings
// are free. The score clamps at zero and rounds to two decimals.
func (s *VerdictService) ComplianceScore(result *domain.ValidationResult) float64 {
	score := 100.0 -
		penaltyCritical*float64(result.CriticalCount) -
		penaltyMajor*float64(result.MajorCount) -
		penaltyMinor*float64(result.MinorCount)
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}

// ConfidenceScore estimates how much to trust the extraction behind the
// report: the extractor's overall confidence when stated, otherwise the
// mean of the field-level confidences, otherwise zero (which forces a
// human review).
func (s *VerdictService) ConfidenceScore(report *domain.Report) float64 {
	if report.OverallConfidence > 0 {
		return report.OverallConfidence
	}
	vals := report.ConfidenceValues()
	if len(vals) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Verdict applies the decision chain in priority order: any critical
// finding rejects outright; a score below the floor or a shaky
// extraction demands review; everything else is approved.
func (s *VerdictService) Verdict(result *domain.ValidationResult, score, confidence float64) string {
	switch {
	case result.CriticalCount > 0:
		return VerdictRejected
	case score < s.minScore || confidence < MinConfidenceApprove:
		return VerdictReview
	default:
		return VerdictApproved
	}
}

// Assess bundles the score, confidence, and verdict for a validated
// report into a single outcome.
func (s *VerdictService) Assess(report *domain.Report, result *domain.ValidationResult, profile domain.StandardProfile) *Assessment {
	score := s.ComplianceScore(result)
	confidence := s.ConfidenceScore(report)
	return &Assessment{
		Result:          result,
		ComplianceScore: score,
		Confidence:      confidence,
		Verdict:         s.Verdict(result, score, confidence),
		Profile:         profile,
	}
}
