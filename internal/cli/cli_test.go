package cli_test

import (
	"testing"

	"github.com/raysh454/linkscope/internal/cli"
)

func TestParseArgs_Valid(t *testing.T) {
	t.Parallel()

	args, err := cli.ParseArgs([]string{"-url", "https://example.com", "-no-banner"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.URL != "https://example.com" {
		t.Errorf("url = %q", args.URL)
	}
	if !args.NoBanner || args.JSONOut {
		t.Errorf("flags = %+v", args)
	}
}

func TestParseArgs_JSONImpliesNoBanner(t *testing.T) {
	t.Parallel()

	args, err := cli.ParseArgs([]string{"-url", "https://example.com", "-json"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !args.JSONOut || !args.NoBanner {
		t.Errorf("flags = %+v", args)
	}
}

func TestParseArgs_MissingURL(t *testing.T) {
	t.Parallel()

	if _, err := cli.ParseArgs(nil); err == nil {
		t.Fatal("expected error for missing -url")
	}
	if _, err := cli.ParseArgs([]string{"-url", "  "}); err == nil {
		t.Fatal("expected error for blank -url")
	}
}
