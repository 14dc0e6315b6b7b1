// Package metric computes the shortest-path metric graph G_m over building
// nodes: a complete graph whose edges carry road-following shortest-path
// length, the ordered underlying road-segment IDs, and a cost factor used
// by the density clusterer.
package metric
