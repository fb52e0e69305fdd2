package tsp

// Test-only access to unexported Held–Karp internals.
var (
	ReconstructPathForTest  = reconstructPath
	HeldKarpFallbackForTest = heldKarpFallback
	NextPermutationForTest  = nextPermutation

	CanonicalizeOrientationForTest = canonicalizeOrientationInPlace
)

const (
	HomeSentinelForTest = homeSentinel
	UnsetParentForTest  = unsetParent
)
