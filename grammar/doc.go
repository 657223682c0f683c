/*
Package grammar implements an immutable weighted context-free grammar
(WCFG).

A grammar is a mapping from left-hand-side symbols to the ordered rules
that expand them, together with a designated start symbol. A symbol is a
nonterminal iff the grammar carries at least one rule for it; there is no
separate lexicon. Rule insertion order is preserved, so that enumeration
(and therefore, indirectly, tie-breaking among equal-weight derivations)
is reproducible for a fixed grammar.

Weights are derived from probabilities via −log2(p); a probability must
lie in (0, 1], giving a weight in [0, ∞).

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from.
*/
package grammar
