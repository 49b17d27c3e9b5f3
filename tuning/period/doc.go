// Package period infers the repeat structure of a 128-note tuning table.
//
// [Infer] searches the table for evidence that the tuning repeats after a
// fixed number of steps at an integer frequency ratio: scale size 12 with
// period ratio 2 for any octave-repeating 12-note scale, 13 with ratio 3
// for Bohlen-Pierce, and so on. Tunings whose repeat ratio is not a whole
// number (stretched octaves, periods like 1190 cents) are reported as not
// found; that limitation is inherent to the exact-match search.
package period
