// Package constants provides shared constants used throughout the roofline codebase.
// This includes measurement conversions, matcher thresholds, tolerances, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Measurement constants define roofing measurement conversions
const (
	// SquareFeetPerSquare is the number of square feet in one roofing square (SQ)
	SquareFeetPerSquare = 100.0

	// MinPitch is the lowest pitch rise tracked in roof measurement reports (1/12)
	MinPitch = 1

	// MaxPitch is the highest discrete pitch rise tracked before the 12/12+ bucket
	MaxPitch = 12
)

// Matcher constants define fuzzy-matching behavior against the price catalog
const (
	// SimilarityThreshold is the minimum normalized similarity score for a
	// catalog suggestion to be reported
	SimilarityThreshold = 0.85

	// MaxSuggestions is the maximum number of catalog suggestions per item
	MaxSuggestions = 3
)

// Rounding constants define supplier bundle increments for shingle quantities
const (
	// LaminatedIncrement is the rounding increment for laminated shingle items (quarter square)
	LaminatedIncrement = 0.25

	// ThreeTabIncrement is the rounding increment for 3-tab shingle items (third of a square)
	ThreeTabIncrement = 1.0 / 3.0
)

// Tolerance constants define comparison epsilons
const (
	// MoneyTolerance is the maximum difference between two monetary amounts
	// still considered equal
	MoneyTolerance = 0.01

	// QuantityTolerance is the epsilon for quantity and increment-alignment
	// comparisons
	QuantityTolerance = 0.001
)

// Default values
const (
	// DefaultWastePercent is the default installation waste factor applied to
	// quantity floors (no waste unless configured)
	DefaultWastePercent = 0.0

	// DefaultCatalogFile is the conventional filename for the reference price catalog
	DefaultCatalogFile = "roof_master.csv"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants define various timeout durations used by the CLI
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format used in audit entries
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
