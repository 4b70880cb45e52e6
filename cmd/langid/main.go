// Command langid classifies one text from a flag, a file, or stdin
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"langid/internal/core/langpack"
	"langid/internal/core/scripthint"
	"langid/internal/platform/logger"
	"langid/internal/services/classifier/service"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type result struct {
	Lang    string `json:"lang"`
	Script  string `json:"script,omitempty"`
	TextLen int    `json:"text_len,omitempty"`
	Handle  int64  `json:"handle,omitempty"`
}

func main() {
	var (
		text    = flag.String("text", "", "text to classify")
		file    = flag.String("file", "", "file to classify, '-' for stdin")
		handle  = flag.Int64("handle", 0, "opaque handle carried into debug logs")
		asJSON  = flag.Bool("json", false, "print the result as JSON")
		verbose = flag.Bool("verbose", false, "include script hint and byte length")
	)
	flag.Parse()

	if *text != "" && *file != "" {
		must(fmt.Errorf("use either -text or -file, not both"))
	}

	input := *text
	if *text == "" {
		var r io.Reader = os.Stdin
		if *file != "" && *file != "-" {
			f, err := os.Open(*file)
			must(err)
			defer f.Close()
			r = f
		}
		b, err := io.ReadAll(r)
		must(err)
		input = string(b)
	}

	p, err := langpack.Load()
	must(err)

	log := logger.Get().With().Str("component", "langid").Logger()
	svc := service.New(log, p)

	code := svc.Detect(context.Background(), *handle, &input)

	out := result{Lang: code.String()}
	if *verbose {
		out.Script = scripthint.Sniff(input)
		out.TextLen = len(input)
		out.Handle = *handle
	}

	if *asJSON {
		enc, err := json.Marshal(out)
		must(err)
		fmt.Println(string(enc))
		return
	}
	if *verbose {
		fmt.Printf("lang=%s script=%s bytes=%d\n", out.Lang, out.Script, out.TextLen)
		return
	}
	fmt.Println(out.Lang)
}
