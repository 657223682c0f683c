package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wearley.earley', in the manner of the
// toolbox's own per-package trace selectors.
func tracer() tracing.Trace {
	return tracing.Select("wearley.earley")
}

func dumpColumn(col *Column, label string) {
	t := tracer()
	if t.GetTraceLevel() > tracing.LevelDebug {
		return
	}
	t.Debugf("--- column %04d (%s), %d item(s) ---", col.Index(), label, len(col.All()))
	for n, it := range col.All() {
		t.Debugf("[%3d] %s", n, it)
	}
}
