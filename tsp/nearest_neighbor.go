package tsp

import "github.com/malmiO/TSP/matrix"

// NearestNeighbor builds a tour greedily: starting at home it repeatedly
// moves to the closest unvisited vertex, then returns home.
//
// Ties are broken by the lowest vertex index, so the result is fully
// deterministic. The tour is always feasible on a valid matrix but carries
// no optimality guarantee.
//
// Degenerate cases:
//   - a 0×0 matrix yields Found([]int{}, 0) without checking home;
//   - n==1 yields Found([home, home], 0).
//
// Errors: validation sentinels (see validateInput).
//
// Complexity: O(n²) time, O(n) extra space.
func NearestNeighbor(dist matrix.Matrix, home int) (Outcome, error) {
	if dist != nil && dist.Rows() == 0 && dist.Cols() == 0 {
		return Found([]int{}, 0), nil
	}
	d, err := validateInput(dist, home)
	if err != nil {
		return Outcome{}, err
	}

	var (
		n       = len(d)
		visited = make([]bool, n)
		tour    = make([]int, 1, n+1)
		cur     = home
		total   float64
		step, j int
		next    int
		best    float64
	)
	visited[home] = true
	tour[0] = home

	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// Strict < keeps the lowest index among equal distances.
			if next < 0 || d[cur][j] < best {
				next, best = j, d[cur][j]
			}
		}
		total += best
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	// Return to home.
	total += d[cur][home]
	tour = append(tour, home)

	return Found(tour, round1e9(total)), nil
}
