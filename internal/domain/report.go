package domain

import "strconv"

// Test type identifiers. Each validator exposes exactly one of these,
// and threshold references are resolved per test type.
const (
	TestTypeGrounding    = "grounding"
	TestTypeMegger       = "megger"
	TestTypeThermography = "thermography"
	TestTypeFAT          = "fat"
	TestTypeUnknown      = "unknown"
)

// FieldValue is a single AI-extracted value: the raw text as it appeared
// in the source document, the extractor's confidence in it, and optional
// source context. Values are kept raw so unparseable content surfaces as
// findings instead of being lost upstream.
type FieldValue struct {
	Raw        string  `json:"raw"`
	Confidence float64 `json:"confidence"`
	SourceText string  `json:"sourceText,omitempty"`
}

// IsEmpty reports whether nothing was extracted for this field.
func (f FieldValue) IsEmpty() bool { return f.Raw == "" }

// Float parses the raw value as a number. The second return is false for
// empty or non-numeric content.
func (f FieldValue) Float() (float64, bool) {
	if f.Raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(f.Raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equipment identifies the asset under test.
type Equipment struct {
	Tag  string `json:"tag"`
	Type string `json:"type,omitempty"`
}

// CalibrationCertificate is the instrument calibration block extracted
// from the report. Dates are ISO (YYYY-MM-DD) strings; parsing failures
// are rule findings, not errors.
type CalibrationCertificate struct {
	InstrumentModel   string `json:"instrumentModel,omitempty"`
	InstrumentSerial  string `json:"instrumentSerial,omitempty"`
	CertificateNumber string `json:"certificateNumber,omitempty"`
	CalibrationDate   string `json:"calibrationDate,omitempty"`
	ExpirationDate    string `json:"expirationDate,omitempty"`
}

// GroundingMeasurement is one ground-resistance test point.
type GroundingMeasurement struct {
	PointID       string     `json:"pointId"`
	Resistance    FieldValue `json:"resistance"`
	Unit          string     `json:"unit,omitempty"`
	EquipmentType string     `json:"equipmentType,omitempty"`
}

// GroundingPayload carries grounding test measurements.
type GroundingPayload struct {
	Measurements []GroundingMeasurement `json:"measurements"`
}

// MeggerCircuit is one insulation-resistance test circuit with timed
// readings. PolarizationIndex is precomputed by the extraction pipeline
// from the 10-minute and 1-minute readings; nil means it could not be
// established.
type MeggerCircuit struct {
	CircuitID         string     `json:"circuitId"`
	TestVoltage       float64    `json:"testVoltage"`
	IROneMin          FieldValue `json:"irOneMin"`
	IRTenMin          FieldValue `json:"irTenMin"`
	PolarizationIndex *float64   `json:"polarizationIndex,omitempty"`
	Unit              string     `json:"unit,omitempty"`
}

// MeggerPayload carries insulation (megger) test circuits.
type MeggerPayload struct {
	Circuits []MeggerCircuit `json:"circuits"`
}

// Hotspot is one thermographic anomaly with its reference point.
type Hotspot struct {
	Location string     `json:"location,omitempty"`
	Phase    string     `json:"phase,omitempty"`
	MaxTemp  FieldValue `json:"maxTemp"`
	RefTemp  FieldValue `json:"refTemp"`
}

// DeltaT returns the hotspot-to-reference temperature difference. The
// second return is false when either temperature is missing or
// non-numeric.
func (h Hotspot) DeltaT() (float64, bool) {
	maxT, ok := h.MaxTemp.Float()
	if !ok {
		return 0, false
	}
	refT, ok := h.RefTemp.Float()
	if !ok {
		return 0, false
	}
	return maxT - refT, true
}

// ThermographyPayload carries a thermographic inspection.
type ThermographyPayload struct {
	Hotspots         []Hotspot `json:"hotspots"`
	CameraSerial     string    `json:"cameraSerial,omitempty"`
	HygrometerSerial string    `json:"hygrometerSerial,omitempty"`
	InspectionDate   string    `json:"inspectionDate,omitempty"`
	AmbientTempC     *float64  `json:"ambientTempC,omitempty"`
	RelativeHumidity *float64  `json:"relativeHumidity,omitempty"`
}

// Checklist item states as reported in FAT protocols.
const (
	ChecklistPass    = "pass"
	ChecklistFail    = "fail"
	ChecklistPending = "pending"
)

// ChecklistItem is one FAT protocol checklist entry.
type ChecklistItem struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Signature is one sign-off on a FAT protocol. A role present but
// unsigned is distinct from a role missing entirely.
type Signature struct {
	Role   string `json:"role"`
	Name   string `json:"name,omitempty"`
	Signed bool   `json:"signed"`
}

// SpecCheck compares a measured value against a declared specification.
// IsCompliant is tri-state: nil means the comparison was not assessed.
type SpecCheck struct {
	Parameter   string `json:"parameter"`
	Declared    string `json:"declared,omitempty"`
	Measured    string `json:"measured,omitempty"`
	IsCompliant *bool  `json:"isCompliant,omitempty"`
}

// FATPayload carries a factory-acceptance-test protocol. A nil
// Signatures slice means the signature list was absent from the source
// document, as opposed to present but empty.
type FATPayload struct {
	Checklist      []ChecklistItem `json:"checklist"`
	Signatures     []Signature     `json:"signatures"`
	Specifications []SpecCheck     `json:"specifications"`
	OverallStatus  string          `json:"overallStatus,omitempty"`
	WitnessName    string          `json:"witnessName,omitempty"`
}

// Report is the structured extraction result for a single test document.
// Exactly one payload is expected to be non-nil; Kind derives the test
// type from which one it is, so dispatch never inspects runtime types.
type Report struct {
	Equipment         Equipment               `json:"equipment"`
	Calibration       *CalibrationCertificate `json:"calibration,omitempty"`
	TestDate          string                  `json:"testDate,omitempty"`
	OverallConfidence float64                 `json:"overallConfidence,omitempty"`

	Grounding    *GroundingPayload    `json:"grounding,omitempty"`
	Megger       *MeggerPayload       `json:"megger,omitempty"`
	Thermography *ThermographyPayload `json:"thermography,omitempty"`
	FAT          *FATPayload          `json:"fat,omitempty"`
}

// Kind returns the test type of the populated payload. FAT reports are
// identified but never auto-dispatched by the orchestrator.
func (r *Report) Kind() string {
	switch {
	case r.Grounding != nil:
		return TestTypeGrounding
	case r.Megger != nil:
		return TestTypeMegger
	case r.Thermography != nil:
		return TestTypeThermography
	case r.FAT != nil:
		return TestTypeFAT
	}
	return TestTypeUnknown
}

// ConfidenceValues enumerates every field-level confidence the report
// carries. Each payload lists its confidence-bearing fields explicitly;
// no reflection is involved, so the walk is deterministic.
func (r *Report) ConfidenceValues() []float64 {
	var vals []float64
	collect := func(f FieldValue) {
		if !f.IsEmpty() {
			vals = append(vals, f.Confidence)
		}
	}

	switch {
	case r.Grounding != nil:
		for _, m := range r.Grounding.Measurements {
			collect(m.Resistance)
		}
	case r.Megger != nil:
		for _, c := range r.Megger.Circuits {
			collect(c.IROneMin)
			collect(c.IRTenMin)
		}
	case r.Thermography != nil:
		for _, h := range r.Thermography.Hotspots {
			collect(h.MaxTemp)
			collect(h.RefTemp)
		}
	}
	return vals
}
