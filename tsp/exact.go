package tsp

import (
	"fmt"
	"math"

	"github.com/malmiO/TSP/matrix"
)

const (
	// homeSentinel marks "predecessor is home" in the Held–Karp parent table.
	homeSentinel = -1

	// unsetParent marks a memo state that was never reached.
	unsetParent = -2

	// bruteForceFallbackLimit is the largest matrix order (home included) for
	// which an inconsistent Held–Karp run is recomputed by BruteForce.
	bruteForceFallbackLimit = 10
)

// HeldKarp solves the TSP exactly with the Held–Karp dynamic programme.
//
// Each non-home vertex cities[b] gets bit position b. The memo is a flat
// arena indexed by mask*m + last (m = n−1) holding
//
//	cost[mask][last]   = min cost of a path that leaves home, visits exactly
//	                     the vertices in mask and ends at cities[last];
//	parent[mask][last] = bit of the vertex visited before last, or
//	                     homeSentinel for singleton masks.
//
// Base: cost[{b}][b] = dist(home, cities[b]).
// Transition: cost[S][l] = min over p ∈ S\{l} of cost[S\{l}][p] + dist(cities[p], cities[l]).
// Close: min over l of cost[full][l] + dist(cities[l], home).
//
// Masks are processed in ascending numeric order, so every proper subset is
// final before any superset reads it. Predecessors are scanned in ascending
// bit order and replaced only on strict improvement.
//
// If no closing state is finite, or the parent walk is inconsistent (unset
// state, wrong length, repeated vertex), the result is recomputed with
// BruteForce when n ≤ 10 and reported as Infeasible otherwise. A correct run
// never takes this path.
//
// Degenerate case: n==1 yields Found([home, home], 0).
//
// Errors: validation sentinels (see validateInput) and ErrTooLarge when
// n−1 > MaxHeldKarpCities.
//
// Complexity: O(2^m·m²) time, O(2^m·m) memory.
func HeldKarp(dist matrix.Matrix, home int) (Outcome, error) {
	d, err := validateInput(dist, home)
	if err != nil {
		return Outcome{}, err
	}

	var (
		n      = len(d)
		cities = otherVertices(n, home)
		m      = len(cities)
	)
	if m == 0 {
		return Found([]int{home, home}, 0), nil
	}
	if m > MaxHeldKarpCities {
		return Outcome{}, fmt.Errorf("%w: held-karp over %d cities (max %d)", ErrTooLarge, m, MaxHeldKarpCities)
	}

	// --- 1. Allocate the arena ---
	var (
		states = 1 << m
		full   = states - 1
		inf    = math.Inf(1)
		cost   = make([]float64, states*m)
		parent = make([]int, states*m)
		i      int
	)
	for i = range cost {
		cost[i] = inf
		parent[i] = unsetParent
	}

	// --- 2. Base cases: singleton subsets ---
	var b int
	for b = 0; b < m; b++ {
		cost[(1<<b)*m+b] = d[home][cities[b]]
		parent[(1<<b)*m+b] = homeSentinel
	}

	// --- 3. Transitions over multi-element subsets ---
	var (
		mask, last, prev int
		prevMask         int
		best, cand, c    float64
		bestPrev         int
	)
	for mask = 1; mask <= full; mask++ {
		if mask&(mask-1) == 0 {
			continue // singleton, already seeded
		}
		for last = 0; last < m; last++ {
			if mask&(1<<last) == 0 {
				continue
			}
			prevMask = mask &^ (1 << last)
			best, bestPrev = inf, unsetParent
			for prev = 0; prev < m; prev++ {
				if prevMask&(1<<prev) == 0 {
					continue
				}
				c = cost[prevMask*m+prev]
				if math.IsInf(c, 1) {
					continue
				}
				cand = c + d[cities[prev]][cities[last]]
				if cand < best {
					best, bestPrev = cand, prev
				}
			}
			if bestPrev != unsetParent {
				cost[mask*m+last] = best
				parent[mask*m+last] = bestPrev
			}
		}
	}

	// --- 4. Close the tour by returning home ---
	var (
		bestTotal = inf
		bestLast  = -1
		total     float64
	)
	for last = 0; last < m; last++ {
		c = cost[full*m+last]
		if math.IsInf(c, 1) {
			continue
		}
		total = c + d[cities[last]][home]
		if total < bestTotal {
			bestTotal, bestLast = total, last
		}
	}
	if bestLast < 0 {
		return heldKarpFallback(dist, n, home)
	}

	// --- 5. Reconstruct from the parent table ---
	path, ok := reconstructPath(parent, m, full, bestLast, cities)
	if !ok {
		return heldKarpFallback(dist, n, home)
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, home)
	tour = append(tour, path...)
	tour = append(tour, home)

	return Found(tour, round1e9(bestTotal)), nil
}

// reconstructPath walks parent pointers back from (full, last) to the home
// sentinel and returns the visited vertices in travel order.
//
// ok is false when the walk reaches an unset state, does not consume every
// bit of full, never reaches home, or yields a repeated vertex.
//
// Complexity: O(m).
func reconstructPath(parent []int, m, full, last int, cities []int) (path []int, ok bool) {
	var (
		mask        = full
		cur         = last
		seen        = make([]bool, m)
		reachedHome bool
		p           int
	)
	path = make([]int, 0, m)
	for len(path) < m {
		if cur < 0 || cur >= m || mask&(1<<cur) == 0 || seen[cur] {
			return nil, false
		}
		seen[cur] = true
		path = append(path, cities[cur])

		p = parent[mask*m+cur]
		if p == unsetParent {
			return nil, false
		}
		mask &^= 1 << cur
		if p == homeSentinel {
			reachedHome = true
			break
		}
		cur = p
	}
	if !reachedHome || len(path) != m || mask != 0 {
		return nil, false
	}

	// Reverse into travel order.
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// heldKarpFallback is the safety net for an inconsistent DP run.
func heldKarpFallback(dist matrix.Matrix, n, home int) (Outcome, error) {
	if n <= bruteForceFallbackLimit {
		return BruteForce(dist, home)
	}

	return Infeasible(), nil
}
