// Command restlerctl is a thin example CLI over the results-analysis
// core: it parses one or two fuzzing transcripts (plain text or gzip,
// detected automatically), bucketizes failing responses, and prints
// either a RunSummary or a log-level diff as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/microsoft/restler-fuzzer-sub003/bucketizer"
	"github.com/microsoft/restler-fuzzer-sub003/diff"
	"github.com/microsoft/restler-fuzzer-sub003/httpdiff"
	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
	"github.com/microsoft/restler-fuzzer-sub003/internal/logging"
	"github.com/microsoft/restler-fuzzer-sub003/logparser"
	"github.com/microsoft/restler-fuzzer-sub003/pairing"
	"github.com/microsoft/restler-fuzzer-sub003/summary"
)

func main() {
	var (
		logLevel = flag.String("log-level", "info", "structured log level: debug, info, warn, error")
		diffWith = flag.String("diff", "", "path to a second transcript; when set, print a log diff instead of a summary")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <transcript>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.New(*logLevel)
	defer logger.Sync()

	a, err := parseTranscript(flag.Arg(0), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "restlerctl:", err)
		os.Exit(1)
	}

	if *diffWith == "" {
		runSummary(a)
		return
	}

	b, err := parseTranscript(*diffWith, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "restlerctl:", err)
		os.Exit(1)
	}
	runDiff(a, b)
}

func parseTranscript(path string, logger *zap.Logger) (httpmodel.Log[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lr, err := logparser.NewLineReader(f, logger, nil)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}
	return pairing.Pair(lr, logger)
}

func runSummary(log httpmodel.Log[string]) {
	buckets := bucketizer.Bucketize(log, nil, nil)
	rs := summary.Summarize(buckets)

	out := struct {
		FailedRequestsCount int            `json:"failedRequestsCount"`
		BugCount            int            `json:"bugCount"`
		CodeCounts          map[int]int    `json:"codeCounts"`
		ErrorBuckets        map[string]int `json:"errorBuckets"`
	}{
		FailedRequestsCount: rs.FailedRequestsCount,
		BugCount:            rs.BugCount,
		CodeCounts:          rs.CodeCounts,
		ErrorBuckets:        make(map[string]int, len(rs.ErrorBuckets)),
	}
	for k, v := range rs.ErrorBuckets {
		out.ErrorBuckets[k.String()] = v
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func runDiff(a, b httpmodel.Log[string]) {
	edit := httpdiff.DiffLog(a, b, func(x, y string) diff.Edit[string, diff.Replace[string]] {
		return diff.DiffPrimitive(x, y)
	})
	data, err := diff.MarshalEdit(edit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "restlerctl: marshal diff:", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
