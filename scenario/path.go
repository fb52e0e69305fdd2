package scenario

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/malmiO/TSP/runner"
	"github.com/malmiO/TSP/tsp"
)

// optimalTolerance is the largest cost gap still counted as optimal.
const optimalTolerance = 0.001

// ValidatePath checks that path is a closed round trip from home visiting
// every selected city exactly once.
//
// Missing cities, extra cities and repeated visits are reported together
// through errors.Join.
func (s *Scenario) ValidatePath(path []string) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if len(path) < MinCities+1 {
		return fmt.Errorf("%w: got %d stops, need at least %d", ErrPathTooShort, len(path), MinCities+1)
	}
	if path[0] != s.Home || path[len(path)-1] != s.Home {
		return fmt.Errorf("%w (%s)", ErrPathEndpoints, s.Home)
	}

	interior := path[1 : len(path)-1]
	if len(interior) != len(s.Cities) {
		return fmt.Errorf("%w: visit exactly %d cities excluding home, got %d", ErrWrongStopCount, len(s.Cities), len(interior))
	}

	var (
		visits  = make(map[string]int, len(interior))
		missing []string
		extra   []string
		repeat  []string
	)
	for _, c := range interior {
		visits[c]++
		if visits[c] == 2 {
			repeat = append(repeat, c)
		}
	}
	for _, c := range s.Cities {
		if visits[c] == 0 {
			missing = append(missing, c)
		}
	}
	for _, c := range interior {
		if !slices.Contains(s.Cities, c) && !slices.Contains(extra, c) {
			extra = append(extra, c)
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingCities, strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrExtraCities, strings.Join(extra, ", ")))
	}
	if len(repeat) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateVisit, strings.Join(repeat, ", ")))
	}

	return errors.Join(errs...)
}

// PathCost returns the total distance of a path given by city names.
func (s *Scenario) PathCost(path []string) (float64, error) {
	tour := make([]int, len(path))
	for i, name := range path {
		idx, ok := s.Index(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCity, name)
		}
		tour[i] = idx
	}
	m, err := s.Matrix()
	if err != nil {
		return 0, err
	}

	return tsp.TourCost(m, tour)
}

// Evaluation compares a player's route with the best algorithm result.
type Evaluation struct {
	UserPath  []string
	UserCost  float64
	Best      runner.AlgorithmResult
	BestPath  []string
	IsOptimal bool
	// SameRoute is true when the player drove the best tour, in either direction.
	SameRoute bool
}

// Gap returns how much longer the player's route is than the best one.
func (e Evaluation) Gap() float64 { return e.UserCost - e.Best.Cost }

// Evaluate validates path, prices it and compares it with the cheapest of
// results. The route counts as optimal when the costs differ by less than
// 0.001.
func (s *Scenario) Evaluate(path []string, results []runner.AlgorithmResult) (Evaluation, error) {
	if err := s.ValidatePath(path); err != nil {
		return Evaluation{}, err
	}
	best, ok := runner.Best(results)
	if !ok {
		return Evaluation{}, ErrNoResults
	}

	cost, err := s.PathCost(path)
	if err != nil {
		return Evaluation{}, err
	}
	userTour := make([]int, len(path))
	for i, name := range path {
		userTour[i], _ = s.Index(name) // known after PathCost
	}
	bestPath, err := s.TourNames(best.Tour)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		UserPath:  path,
		UserCost:  cost,
		Best:      best,
		BestPath:  bestPath,
		IsOptimal: math.Abs(cost-best.Cost) < optimalTolerance,
		SameRoute: tsp.EqualToursModuloReversal(userTour, best.Tour),
	}, nil
}
