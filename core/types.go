// Package core defines the immutable spectral data model: peaks, peak
// sets, and spectra, together with the sentinel errors shared across the
// engine.
package core

// Peak is a single (m/z, intensity) measurement within a spectrum
type Peak struct {
	Mz        float64 `json:"mz"`
	Intensity float64 `json:"intensity"`
}

// Metadata maps string keys to arbitrary scalar or text values attached
// to a spectrum. The engine treats it as opaque; specific keys such as
// precursor masses are interpreted only by callers.
type Metadata map[string]interface{}

// MetadataKeyID is the metadata key read at construction to seed a
// spectrum's identifier.
const MetadataKeyID = "id"
