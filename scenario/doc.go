// Package scenario models a playable TSP round: a home city, the cities to
// visit, and the symmetric distance table between them.
//
// A Scenario maps names to matrix indices: index 0 is always the home city
// and the selected cities follow in selection order. Scenarios are generated
// with random integer distances, stored as TOML or YAML files, solved with
// the runner package, and used to score a player's own route against the
// best algorithm result.
package scenario
