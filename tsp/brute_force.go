package tsp

import (
	"fmt"
	"math"
	"slices"

	"github.com/malmiO/TSP/matrix"
)

// BruteForce solves the TSP exactly by enumerating every ordering of the
// non-home vertices.
//
// Orderings are visited in lexicographic order starting from the ascending
// sequence. For each ordering p the candidate tour is [home]+p+[home]; the
// first candidate with a strictly smaller cost replaces the incumbent, so
// among equal-cost tours the lexicographically smallest interior wins. Only
// the cost is part of the contract; the tie-break is an artifact of the
// enumeration order.
//
// Degenerate case: n==1 yields Found([home, home], 0).
//
// Errors: validation sentinels (see validateInput) and ErrTooLarge when
// n−1 > MaxBruteForceCities.
//
// Complexity: O((n−1)!·n) time, O(n) extra space.
func BruteForce(dist matrix.Matrix, home int) (Outcome, error) {
	d, err := validateInput(dist, home)
	if err != nil {
		return Outcome{}, err
	}

	var (
		n      = len(d)
		cities = otherVertices(n, home)
	)
	if len(cities) == 0 {
		return Found([]int{home, home}, 0), nil
	}
	if len(cities) > MaxBruteForceCities {
		return Outcome{}, fmt.Errorf("%w: brute force over %d cities (max %d)", ErrTooLarge, len(cities), MaxBruteForceCities)
	}

	// candidate is rewritten in place for every permutation; only the
	// incumbent is copied out.
	var (
		candidate = make([]int, n+1)
		best      = make([]int, n+1)
		bestCost  = math.Inf(1)
		cost      float64
	)
	candidate[0], candidate[n] = home, home
	for {
		copy(candidate[1:n], cities)
		cost = pathCost(d, candidate)
		if cost < bestCost {
			bestCost = cost
			copy(best, candidate)
		}
		if !nextPermutation(cities) {
			break
		}
	}

	return Found(best, round1e9(bestCost)), nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. On the last permutation p is left unchanged.
//
// Complexity: O(len(p)) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
