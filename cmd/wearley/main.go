/*
Wearley parses a batch of tokenized sentences against a weighted
context-free grammar and prints the minimum-weight derivation for each.

Usage:

	wearley [flags] GRAMMAR SENTENCES

The flags are:

	-s, --start-symbol SYMBOL
		The grammar's start symbol. Defaults to ROOT.

	-j, --jobs N
		Number of sentences to parse concurrently. Defaults to the
		number of available CPUs.

	--progress
		Show a progress bar while the batch runs.

	-v, --verbose
		Raise the trace level to Debug.

	-q, --quiet
		Lower the trace level to Error, suppressing informational
		output.

For each input sentence, wearley prints either the line "NONE" (no
derivation exists), or the derivation tree followed by its weight on the
next line.
*/
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/tracing"

	"github.com/justinb91011/wearley/earley"
	"github.com/justinb91011/wearley/grammar"
	"github.com/justinb91011/wearley/internal/gfile"
	"github.com/justinb91011/wearley/internal/sentfile"
)

const (
	// ExitSuccess indicates the batch ran to completion. Individual
	// sentences failing to parse is not a program error.
	ExitSuccess = iota

	// ExitUsageError indicates the command line was malformed.
	ExitUsageError

	// ExitGrammarError indicates the grammar file could not be loaded.
	ExitGrammarError

	// ExitSentenceError indicates the sentence batch could not be read.
	ExitSentenceError
)

var (
	returnCode  = ExitSuccess
	startSymbol = pflag.StringP("start-symbol", "s", "ROOT", "Grammar start symbol")
	jobs        = pflag.IntP("jobs", "j", runtime.NumCPU(), "Number of sentences to parse concurrently")
	progress    = pflag.Bool("progress", false, "Show a progress bar")
	verbose     = pflag.BoolP("verbose", "v", false, "Raise the trace level to Debug")
	quiet       = pflag.BoolP("quiet", "q", false, "Lower the trace level to Error")
)

func tracer() tracing.Trace {
	return tracing.Select("wearley.cmd")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	initDisplay()
	pflag.Parse()
	applyTraceLevel()

	if pflag.NArg() != 2 {
		pterm.Error.Println("usage: wearley [flags] GRAMMAR SENTENCES")
		returnCode = ExitUsageError
		return
	}
	grammarPath, sentencePath := pflag.Arg(0), pflag.Arg(1)

	runID := uuid.New()
	tracer().Infof("batch %s: loading grammar %s (start=%s)", runID, grammarPath, *startSymbol)

	g, err := gfile.Load(grammarPath, grammar.Symbol(*startSymbol))
	if err != nil {
		pterm.Error.Printfln("loading grammar: %v", err)
		returnCode = ExitGrammarError
		return
	}

	sentences, err := sentfile.Load(sentencePath)
	if err != nil {
		pterm.Error.Printfln("loading sentences: %v", err)
		returnCode = ExitSentenceError
		return
	}
	tracer().Infof("batch %s: %d sentences, %d rules, %d workers", runID, len(sentences), g.Len(), *jobs)

	results := runBatch(g, sentences)

	for _, r := range results {
		printResult(r)
	}
}

// We use pterm for moderately fancy output, matching the prefix styling
// used elsewhere in this codebase's lineage.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
}

func applyTraceLevel() {
	level := tracing.LevelInfo
	switch {
	case *verbose:
		level = tracing.LevelDebug
	case *quiet:
		level = tracing.LevelError
	}
	tracing.Select("wearley.cmd").SetTraceLevel(level)
	tracing.Select("wearley.earley").SetTraceLevel(level)
	tracing.Select("wearley.gfile").SetTraceLevel(level)
}

// batchResult pairs a sentence with its parse outcome, keeping results
// ordered the way they were read in spite of concurrent parsing.
type batchResult struct {
	sentence sentfile.Sentence
	result   earley.Result
}

// runBatch parses every sentence against g, fanning the work out across
// jobs worker goroutines that share the immutable Grammar and Parser.
// Each worker builds its own Chart per sentence, so no mutable state
// crosses goroutine boundaries.
func runBatch(g *grammar.Grammar, sentences []sentfile.Sentence) []batchResult {
	p := earley.NewParser(g)
	results := make([]batchResult, len(sentences))

	var bar *pterm.ProgressbarPrinter
	if *progress {
		started, _ := pterm.DefaultProgressbar.WithTotal(len(sentences)).WithTitle("parsing").Start()
		bar = started
	}

	work := make(chan int)
	var wg sync.WaitGroup
	workers := *jobs
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				s := sentences[i]
				res := p.Parse(s.Tokens)
				results[i] = batchResult{sentence: s, result: res}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}
	for i := range sentences {
		work <- i
	}
	close(work)
	wg.Wait()

	if bar != nil {
		bar.Stop()
	}
	return results
}

func printResult(r batchResult) {
	if !r.result.Accepted {
		fmt.Println("NONE")
		return
	}
	fmt.Println(r.result.Tree.String())
	fmt.Println(formatWeight(r.result.Weight))
}

// formatWeight renders a weight the way the worked examples show it:
// always with a decimal point, and without a signed zero (−log2(1) comes
// out as floating-point −0, which reads as a typo next to "0.0").
func formatWeight(w float64) string {
	if w == 0 {
		w = 0
	}
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
