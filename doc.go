/*
Package wearley finds the minimum-weight derivation of a token sequence
under a weighted context-free grammar (WCFG), using a probabilistic
variant of Earley's algorithm.

Each production in the grammar carries a weight equal to the negative
base-2 logarithm of its probability; the weight of a derivation is the sum
of the weights of the productions it uses, so minimizing weight is
equivalent to maximizing the product of probabilities. Package structure:

■ grammar: the immutable grammar representation (Rule, Grammar).

■ earley: the chart-parsing engine (Item, Column, Parser) and the
derivation tree builder.

■ internal/gfile, internal/sentfile: line-oriented ingestion of grammar
and sentence files.

■ cmd/wearley: a batch command-line driver over the engine.

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from. License file may be found in the root folder of
this module.
*/
package wearley
