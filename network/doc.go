// Package network builds the road graph G_r from preprocessed road
// segments and building centroids.
//
// Three strategies are supported, selected by the `installation-strategy`
// configuration key: street-following (the default — buildings attach via
// projected access points and segment splitting), greenfield (G_r is the
// complete Euclidean graph over buildings, ignoring roads entirely), and
// adjacent (street-following plus a building-to-building Euclidean mesh on
// top).
package network
