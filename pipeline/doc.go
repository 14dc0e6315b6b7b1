// Package pipeline orchestrates the full design run: road graph
// construction, the shortest-path metric graph, the coarse density pass,
// per-group k-means bootstrap and feasibility repair, warm-started BRKGA
// evolution, and the visualization-facing result, chaining the same
// stages in the same order a QGIS-plugin pipeline would, over Go values
// instead of QGIS layers.
package pipeline
