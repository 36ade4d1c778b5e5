package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/raysh454/linkscope/internal/app"
	"github.com/raysh454/linkscope/internal/banner"
	"github.com/raysh454/linkscope/internal/cli"
	"github.com/raysh454/linkscope/internal/export"
	"github.com/raysh454/linkscope/internal/logging"
	"github.com/raysh454/linkscope/internal/model"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !args.NoBanner {
		banner.PrintBanner()
	}

	var logger logging.Logger = logging.NewNopLogger()
	if !args.JSONOut {
		logger = logging.NewStdoutLogger("cli")
	}

	application, err := app.New(app.DefaultConfig(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result, insights, err := application.Scan(context.Background(), args.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if args.JSONOut {
		if err := export.Write(os.Stdout, result); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(result, insights)

	if result.Status == model.StatusUnsafe {
		os.Exit(2)
	}
}

func printReport(result *model.ScanResult, insights []model.Insight) {
	fmt.Println()
	fmt.Printf("  %s\n\n", result.URL)

	for _, check := range result.Checks {
		fmt.Printf("  %s %-22s %s\n", statusMark(check.Status), check.Name, check.Description)
	}

	fmt.Println()
	fmt.Printf("  Score:  %d/100\n", result.Score)
	fmt.Printf("  Status: %s\n", statusColor(result.Status).Sprint(string(result.Status)))

	if md := result.Metadata; md != nil {
		fmt.Printf("  Domain: %s (%s)\n", md.Domain, md.Protocol)
	}

	if len(insights) > 0 {
		fmt.Println()
		yellow := color.New(color.FgYellow)
		for _, in := range insights {
			_, _ = yellow.Printf("  advisory [%s/%s] %s\n", in.Type, in.Severity, in.Detail)
		}
	}
}

func statusMark(s model.CheckStatus) string {
	switch s {
	case model.CheckPass:
		return color.GreenString("✓")
	case model.CheckWarning:
		return color.YellowString("!")
	default:
		return color.RedString("✗")
	}
}

func statusColor(s model.ScanStatus) *color.Color {
	switch s {
	case model.StatusSafe:
		return color.New(color.FgGreen)
	case model.StatusSuspicious:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
