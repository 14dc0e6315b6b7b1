// Package repair nudges a candidate partition into capacity feasibility by
// swapping over-capacity members to nearer clusters with spare residual,
// falling back to the NonMember bucket, then selects each cluster's center.
package repair
