// Package brkga decodes real-valued chromosomes into capacitated cluster
// assignments and evolves a population of them toward lower aggregate
// fitness, with an optional warm-started seed and a strictly serial
// generation loop whose per-chromosome evaluations run in parallel (spec
// §4.6, §4.8, §5).
package brkga
