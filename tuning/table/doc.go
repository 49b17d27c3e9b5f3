// Package table extends a 128-note tuning table to arbitrary length.
//
// Instruments with more than 128 discrete pitched elements (tonewheel
// organs, large additive banks) need frequencies beyond the 128 notes a
// tuning source supplies. [Extend] infers the tuning's repeat structure
// with [period.Infer] and continues the table by that recurrence; when no
// structure can be inferred it holds the last canonical frequency.
// [Frequencies] is the caller-facing composition of sampling and
// extension.
package table
