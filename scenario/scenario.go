package scenario

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/malmiO/TSP/matrix"
	"github.com/malmiO/TSP/runner"
	"github.com/malmiO/TSP/tsp"
)

const (
	// MinCities is the smallest selection that makes a round worth playing.
	MinCities = 3

	// MaxCities is the largest selection the exact Held-Karp solver accepts.
	MaxCities = tsp.MaxHeldKarpCities

	// MinDistance and MaxDistance bound generated distances (inclusive).
	MinDistance = 50
	MaxDistance = 100

	// homeIndex is the matrix index of the home city.
	homeIndex = 0

	// symTol is the tolerance used when validating loaded tables.
	symTol = 1e-9
)

// Scenario is one round: Distances[i][j] is the distance between
// Names()[i] and Names()[j].
type Scenario struct {
	Home      string      `toml:"home" yaml:"home"`
	Cities    []string    `toml:"cities" yaml:"cities"`
	Distances [][]float64 `toml:"distances" yaml:"distances"`
}

// ParseList splits a comma-separated list of city names, trimming blanks,
// upper-casing every name and dropping empty entries.
func ParseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if name := strings.ToUpper(strings.TrimSpace(part)); name != "" {
			out = append(out, name)
		}
	}

	return out
}

// ValidateSelection checks that selected is a playable set of cities for home.
func ValidateSelection(selected []string, home string) error {
	if strings.TrimSpace(home) == "" {
		return fmt.Errorf("%w: home", ErrEmptyName)
	}
	if len(selected) == 0 {
		return ErrNoCities
	}
	if slices.Contains(selected, home) {
		return fmt.Errorf("%w: %s", ErrHomeSelected, home)
	}
	if len(selected) < MinCities {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCities, len(selected), MinCities)
	}
	if len(selected) > MaxCities {
		return fmt.Errorf("%w: got %d, at most %d", ErrTooManyCities, len(selected), MaxCities)
	}

	seen := make(map[string]bool, len(selected))
	for _, c := range selected {
		if strings.TrimSpace(c) == "" {
			return ErrEmptyName
		}
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCity, c)
		}
		seen[c] = true
	}

	return nil
}

// Generate builds a Scenario with random symmetric integer distances in
// [MinDistance, MaxDistance] drawn from rng.
func Generate(rng *rand.Rand, home string, selected []string) (*Scenario, error) {
	if err := ValidateSelection(selected, home); err != nil {
		return nil, err
	}

	n := len(selected) + 1
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := float64(MinDistance + rng.Intn(MaxDistance-MinDistance+1))
			dist[i][j], dist[j][i] = d, d
		}
	}

	return &Scenario{
		Home:      home,
		Cities:    slices.Clone(selected),
		Distances: dist,
	}, nil
}

// normalizeNames trims and upper-cases every city name, matching ParseList.
func (s *Scenario) normalizeNames() {
	s.Home = strings.ToUpper(strings.TrimSpace(s.Home))
	for i, c := range s.Cities {
		s.Cities[i] = strings.ToUpper(strings.TrimSpace(c))
	}
}

// Validate checks the selection rules and that Distances is a finite,
// symmetric, non-negative table with a zero diagonal sized to the cities.
func (s *Scenario) Validate() error {
	if err := ValidateSelection(s.Cities, s.Home); err != nil {
		return err
	}

	n := len(s.Cities) + 1
	if len(s.Distances) != n {
		return fmt.Errorf("%w: %d rows for %d cities", ErrBadDistances, len(s.Distances), n)
	}
	m, err := matrix.FromRows(s.Distances)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadDistances, err)
	}
	for _, check := range []func() error{
		func() error { return matrix.ValidateSquare(m) },
		func() error { return matrix.ValidateFinite(m) },
		func() error { return matrix.ValidateZeroDiagonal(m, symTol) },
		func() error { return matrix.ValidateSymmetric(m, symTol) },
	} {
		if err = check(); err != nil {
			return fmt.Errorf("%w: %w", ErrBadDistances, err)
		}
	}
	for i, row := range s.Distances {
		for j, d := range row {
			if d < 0 {
				return fmt.Errorf("%w: negative distance at (%d,%d)", ErrBadDistances, i, j)
			}
		}
	}

	return nil
}

// Names returns every city in matrix order: home first, then the selection.
func (s *Scenario) Names() []string {
	return append([]string{s.Home}, s.Cities...)
}

// Index returns the matrix index of name.
func (s *Scenario) Index(name string) (int, bool) {
	if name == s.Home {
		return homeIndex, true
	}
	if i := slices.Index(s.Cities, name); i >= 0 {
		return i + 1, true
	}

	return 0, false
}

// Matrix returns the distance table as a dense matrix.
func (s *Scenario) Matrix() (*matrix.Dense, error) {
	return matrix.FromRows(s.Distances)
}

// TourNames maps a tour of matrix indices to city names.
func (s *Scenario) TourNames(tour []int) ([]string, error) {
	names := s.Names()
	out := make([]string, len(tour))
	for i, v := range tour {
		if v < 0 || v >= len(names) {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownCity, v)
		}
		out[i] = names[v]
	}

	return out, nil
}

// Solve runs r on the scenario with the home city as the tour start.
func (s *Scenario) Solve(r *runner.Runner) ([]runner.AlgorithmResult, error) {
	m, err := s.Matrix()
	if err != nil {
		return nil, err
	}

	return r.RunAll(m, homeIndex), nil
}
