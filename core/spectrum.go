package core

import (
	"github.com/google/uuid"
)

// Spectrum combines one PeakSet with a metadata mapping and an identifier.
// Spectra are immutable: transformation methods return new instances and
// never touch the receiver, which makes them safe to share across
// concurrent score computations.
type Spectrum struct {
	id       string
	peaks    *PeakSet
	metadata Metadata
}

// NewSpectrum builds a spectrum around the given PeakSet. The metadata map
// is copied; a nil map is treated as empty. The spectrum ID is taken from
// the "id" metadata key when present, otherwise a fresh UUID is assigned.
func NewSpectrum(peaks *PeakSet, metadata Metadata) *Spectrum {
	if peaks == nil {
		peaks = &PeakSet{}
	}
	meta := make(Metadata, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	id := uuid.NewString()
	if v, ok := meta[MetadataKeyID]; ok {
		if s, ok := v.(string); ok && s != "" {
			id = s
		}
	}

	return &Spectrum{
		id:       id,
		peaks:    peaks,
		metadata: meta,
	}
}

// ID returns the spectrum identifier.
func (s *Spectrum) ID() string {
	return s.id
}

// Peaks returns the spectrum's peak set.
func (s *Spectrum) Peaks() *PeakSet {
	return s.peaks
}

// Get looks up a metadata value. Missing keys report ok=false rather
// than failing; absence of optional metadata is not an error.
func (s *Spectrum) Get(key string) (interface{}, bool) {
	v, ok := s.metadata[key]
	return v, ok
}

// GetFloat looks up a metadata value and coerces the common numeric types
// to float64. ok is false when the key is missing or not numeric.
func (s *Spectrum) GetFloat(key string) (float64, bool) {
	v, ok := s.metadata[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Metadata returns a copy of the metadata mapping.
func (s *Spectrum) Metadata() Metadata {
	meta := make(Metadata, len(s.metadata))
	for k, v := range s.metadata {
		meta[k] = v
	}
	return meta
}

// With returns a new Spectrum with one metadata entry set. The receiver
// and its peak set are shared unchanged.
func (s *Spectrum) With(key string, value interface{}) *Spectrum {
	meta := s.Metadata()
	meta[key] = value
	return &Spectrum{
		id:       s.id,
		peaks:    s.peaks,
		metadata: meta,
	}
}

// WithPeaks returns a new Spectrum carrying the given peak set and the
// receiver's metadata and ID.
func (s *Spectrum) WithPeaks(peaks *PeakSet) *Spectrum {
	if peaks == nil {
		peaks = &PeakSet{}
	}
	return &Spectrum{
		id:       s.id,
		peaks:    peaks,
		metadata: s.metadata,
	}
}
