// Package catalogue loads the pipe-diameter catalogue and the price table,
// and sizes a pipe run for a required mass flow against a pressure-loss
// threshold.
package catalogue
