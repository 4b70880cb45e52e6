// Command langid-eval compares the heuristic against lingua over a corpus
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"langid/internal/adapters/reference"
	"langid/internal/core/langpack"
	"langid/internal/platform/logger"
	evalsvc "langid/internal/services/eval/service"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		corpus  = flag.String("corpus", "", "corpus path, '-' for stdin")
		labeled = flag.Bool("labeled", false, "corpus lines are code<TAB>text")
		limit   = flag.Int("limit", 0, "max lines to read (0 = all)")
		asJSON  = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	if *corpus == "" {
		must(fmt.Errorf("-corpus is required ('-' reads stdin)"))
	}

	var in io.Reader = os.Stdin
	if *corpus != "-" {
		f, err := os.Open(*corpus)
		must(err)
		defer f.Close()
		in = f
	}

	lines, err := evalsvc.LoadCorpus(in, *labeled, *limit)
	must(err)

	p, err := langpack.Load()
	must(err)

	log := logger.Get().With().Str("component", "eval").Logger()
	svc := evalsvc.New(log, p, reference.New())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := svc.Run(ctx, lines)
	must(err)

	if *asJSON {
		enc, err := json.MarshalIndent(rep, "", "  ")
		must(err)
		fmt.Println(string(enc))
		return
	}

	fmt.Printf("lines:     %d\n", rep.Total)
	fmt.Printf("agreement: %d (%.1f%%)\n", rep.Agreement, rep.AgreeRate*100)
	if rep.Labeled {
		fmt.Printf("heuristic: %.1f%% correct\n", rep.HeuristicAccuracy*100)
		fmt.Printf("reference: %.1f%% correct\n", rep.ReferenceAccuracy*100)
	}
	fmt.Println("confusion (heuristic -> reference):")
	for _, pr := range rep.Pairs {
		fmt.Printf("  %-4s -> %-4s %d\n", pr.Heuristic, pr.Reference, pr.Count)
	}
	if rep.Labeled {
		fmt.Println("per label:")
		for _, lc := range rep.Labels {
			fmt.Printf("  %-4s total=%d heuristic=%d reference=%d\n",
				lc.Label, lc.Total, lc.HeuristicRight, lc.ReferenceRight)
		}
	}
}
