package cli

import (
	"flag"
	"fmt"
	"strings"
)

// CLIArgs are the command-line arguments controlling a single scan run.
// Keep this small for now — add fields as modules need them.
type CLIArgs struct {
	// URL is the target to scan (required).
	URL string

	// JSONOut emits the export envelope on stdout instead of the
	// human-readable report.
	JSONOut bool

	// NoBanner suppresses the ASCII banner (implied by JSONOut).
	NoBanner bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not read
// os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("linkscope", flag.ContinueOnError)
	var (
		url      = fs.String("url", "", "URL to scan (required)")
		jsonOut  = fs.Bool("json", false, "Print the export envelope as JSON")
		noBanner = fs.Bool("no-banner", false, "Suppress the startup banner")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(nil)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*url) == "" {
		return nil, fmt.Errorf("missing required -url argument")
	}

	return &CLIArgs{
		URL:      *url,
		JSONOut:  *jsonOut,
		NoBanner: *noBanner || *jsonOut,
		RawArgs:  args,
	}, nil
}
