/*
Package earley implements a probabilistic variant of Earley's algorithm:
chart parsing with PREDICT, SCAN and ATTACH, best-first weight
relaxation, duplicate suppression, and back-pointer reconstruction of the
single lowest-weight derivation of an input token sequence.

The parser is grounded on the same three-rule dispatch as a classical
Earley recognizer — see Aycock and Horspool, "Practical Earley Parsing"
(2002) — extended so that every item carries an aggregate weight and
PREDICT/SCAN/ATTACH relax that weight instead of merely deduplicating on
identity. A Chart is a slice of Columns, one per input position; a Parser
drives the chart to completion and, on acceptance, a Tree is built by
walking the accepted item's backpointers.

The package is single-threaded and synchronous: a Chart is not safe for
concurrent use, but a Grammar is immutable once built and a Parser holds
no per-sentence state, so one Parser may be shared by goroutines parsing
different sentences in parallel, each call to Parse building its own
Chart — see cmd/wearley for a batch runner that does exactly that.

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from.
*/
package earley
