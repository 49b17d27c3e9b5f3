// Package mts defines the boundary to an MTS-ESP style tuning source and
// samples its 128-note frequency table.
//
// The tuning source is an injected capability: [Source] hands out a
// registered [Client], the client answers per-note frequency queries, and
// deregistration releases it. [Sample] drives one full query cycle. No
// concrete wire protocol lives here; embedding applications supply their
// own Source, and [Standard] and [Fixed] cover the no-source cases.
package mts
