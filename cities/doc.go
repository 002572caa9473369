// Package cities produces the city sets consumed by package tsp.
//
// Three sources are available:
//
//   - Generate — n cities placed uniformly at random on a width×height
//     rectangle, reproducible from a seed.
//   - Fixture  — small named, literal city sets for reproducible comparisons.
//   - Load     — a YAML city file ("cities: [{x: 1, y: 2}, …]").
//
// Every source assigns IDs so that cities sharing coordinates remain distinct.
// The package treats tsp only as a consumer: nothing here feeds back into the
// search algorithms.
package cities
