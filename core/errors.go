package core

import "errors"

// Common errors
var (
	ErrInvalidPeaks    = errors.New("invalid peaks")
	ErrEmptySpectrum   = errors.New("empty spectrum")
	ErrEmptyCollection = errors.New("empty spectrum collection")
	ErrNotComputed     = errors.New("scores not computed")
)
