// Package domain holds the pure core of the compliance engine: reports,
// findings, and the invariants connecting them. Nothing here performs
// I/O; rule failures are data, and errors are reserved for malformed
// inputs at the adapter boundary.
package domain

// StandardReference cites the clause a rule enforces, so every finding
// is traceable to the standard that motivated it.
type StandardReference struct {
	Standard string `json:"standard,omitempty"`
	Section  string `json:"section,omitempty"`
}

// Finding is one rule evaluation outcome. Informational findings record
// checks that passed; everything else records a deviation with enough
// context to audit it: the extracted value, the threshold it was judged
// against, and the citation.
type Finding struct {
	RuleID         string            `json:"ruleId"`
	Severity       Severity          `json:"severity"`
	Message        string            `json:"message"`
	FieldPath      string            `json:"fieldPath,omitempty"`
	ExtractedValue string            `json:"extractedValue,omitempty"`
	Threshold      string            `json:"threshold,omitempty"`
	StandardRef    StandardReference `json:"standardRef,omitempty"`
	Remediation    string            `json:"remediation,omitempty"`
}

// ValidationResult aggregates the findings of one validator pass, or of
// several merged passes. Counts are derived once at construction and
// kept consistent by Merge.
type ValidationResult struct {
	TestType       string    `json:"testType"`
	EquipmentTag   string    `json:"equipmentTag,omitempty"`
	Findings       []Finding `json:"findings"`
	RulesEvaluated []string  `json:"rulesEvaluated"`
	IsValid        bool      `json:"isValid"`
	CriticalCount  int       `json:"criticalCount"`
	MajorCount     int       `json:"majorCount"`
	MinorCount     int       `json:"minorCount"`
	InfoCount      int       `json:"infoCount"`
}

// NewValidationResult builds a result with derived severity counts. A
// result is valid exactly when it carries no critical findings.
func NewValidationResult(testType, equipmentTag string, findings []Finding, rulesEvaluated []string) *ValidationResult {
	r := &ValidationResult{
		TestType:       testType,
		EquipmentTag:   equipmentTag,
		Findings:       findings,
		RulesEvaluated: rulesEvaluated,
	}
	for _, f := range findings {
		r.count(f.Severity)
	}
	r.IsValid = r.CriticalCount == 0
	return r
}

func (r *ValidationResult) count(s Severity) {
	switch s {
	case SeverityCritical:
		r.CriticalCount++
	case SeverityMajor:
		r.MajorCount++
	case SeverityMinor:
		r.MinorCount++
	default:
		r.InfoCount++
	}
}

// Merge appends another result into this one: findings and evaluated
// rules concatenate preserving order, with no deduplication. The
// equipment tag comes from the first populated result.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	if r.EquipmentTag == "" {
		r.EquipmentTag = other.EquipmentTag
	}
	r.Findings = append(r.Findings, other.Findings...)
	r.RulesEvaluated = append(r.RulesEvaluated, other.RulesEvaluated...)
	r.CriticalCount += other.CriticalCount
	r.MajorCount += other.MajorCount
	r.MinorCount += other.MinorCount
	r.InfoCount += other.InfoCount
	r.IsValid = r.CriticalCount == 0
}

// WorstSeverity returns the highest severity present, or SeverityInfo
// for a result without findings.
func (r *ValidationResult) WorstSeverity() Severity {
	switch {
	case r.CriticalCount > 0:
		return SeverityCritical
	case r.MajorCount > 0:
		return SeverityMajor
	case r.MinorCount > 0:
		return SeverityMinor
	}
	return SeverityInfo
}
