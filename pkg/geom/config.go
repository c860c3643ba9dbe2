package geom

// Config carries the tunable geometry and classification thresholds.
// It is threaded explicitly through every call that compares floats or
// classifies orientation, so tests can exercise alternate thresholds
// without recompiling.
type Config struct {
	// Epsilon is the tolerance for float comparisons, degenerate
	// normal detection and vertex merging on write.
	Epsilon float64

	// WallAngleThreshold is the cosine slack against the up vector:
	// |normal·up| below it means wall, above 1-it means horizontal.
	WallAngleThreshold float64

	// GroundHeightThreshold is the height band (in input units) above
	// the global minimum Z within which a horizontal face counts as
	// ground.
	GroundHeightThreshold float64

	// RoofHeightPercentile is the percentile used by the percentile
	// height estimator. 0.7 follows the 3DBAG convention.
	RoofHeightPercentile float64
}

// DefaultConfig returns the thresholds used by the CLI.
func DefaultConfig() Config {
	return Config{
		Epsilon:               1e-6,
		WallAngleThreshold:    0.01,
		GroundHeightThreshold: 1.0,
		RoofHeightPercentile:  0.7,
	}
}
