/*
Package sentfile reads the sentence-batch input format described in the
engine's external interfaces: one sentence per non-empty line,
whitespace-separated tokens.

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from.
*/
package sentfile
