package domain

// CertificateOCR is the serial read from a photo of the calibration
// certificate by the OCR collaborator, with its recognition confidence.
type CertificateOCR struct {
	Serial     string  `json:"serial"`
	Confidence float64 `json:"confidence"`
}

// HygrometerOCR is the reading taken from a photo of the site
// hygrometer: instrument serial, displayed temperature, and recognition
// confidence.
type HygrometerOCR struct {
	Serial       string   `json:"serial"`
	TemperatureC *float64 `json:"temperatureC,omitempty"`
	Confidence   float64  `json:"confidence"`
}
