// Package diag carries the structured accept/skip/warning records produced
// while ingesting and building a library.
//
// Every classification decision is reported as one Record through a Reporter.
// Diagnostics are a side channel: they never influence control flow, and no
// producer aborts on a skipped item. Reporters are deliberately dumb —
// WriterReporter prints one line per record, Bag collects records for tests
// and summaries, MultiReporter fans out to both.
package diag
