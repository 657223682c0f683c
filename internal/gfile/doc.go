/*
Package gfile loads a weighted context-free grammar from the line-oriented
text format described in the engine's external interfaces: each
non-empty, non-comment line holds three tab-separated fields
(probability, lhs, rhs…), a '#' starts a comment running to end of line,
and blank or comment-only lines are ignored.

The reader is adapted from the toolbox's own scanner package, simplified
down from general Go-token scanning to tab-delimited grammar lines: a
Reader created by NewReader yields one rule per Next call and records the
first error it meets, which Err reports.

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from.
*/
package gfile
