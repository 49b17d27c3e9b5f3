// Package analyze provides diagnostics over tuning tables.
//
// The exact periodicity search in package period deliberately reports
// nothing for tunings whose repeat ratio is not a whole number. This
// package fills the diagnostic gap: [Steps] turns a table into per-step
// interval sizes in cents, [Describe] summarizes them, and [ScaleSizeHint]
// estimates the likely scale size from the autocorrelation of the step
// pattern. Hints are informational only and never feed table extension.
package analyze
