/*
Package iteratable implements a small iteratable container, suitable for
the kind of "every item ever pushed, in push order" bookkeeping that
chart-parsing algorithms need.

Set is destructive even for duplicates: calling it again with a key
already present overwrites the stored value in place while the key keeps
its original position in iteration order. A column owns the decision of
whether a push is a genuine duplicate or a relaxation (and calls Set only
for new keys and relaxations); this container only owns "what is the latest value for
this key, and in what order were the keys first seen".

License

Governed by a 3-Clause BSD license, in the manner of the toolbox this
package was adapted from.
*/
package iteratable
