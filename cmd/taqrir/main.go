// Taqrir — daily student report generation.
//
// Usage:
//
//	taqrir -o <file.pdf> --input <input.json> [--font <path>]
//	taqrir message --input <input.json>
//	taqrir serve [--port 8080]
//	taqrir init
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mutabaa-app/taqrir/clients/server"
	"github.com/mutabaa-app/taqrir/pkg/domain"
	"github.com/mutabaa-app/taqrir/pkg/report"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "message":
		if err := runMessage(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := server.RunServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := run(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("taqrir", flag.ExitOnError)

	var (
		output    string
		inputPath string
		fontPath  string
		boldPath  string
		timeout   int
	)

	fs.StringVar(&output, "o", "", "Output PDF path")
	fs.StringVar(&output, "output", "", "Output PDF path")
	fs.StringVar(&inputPath, "input", "", "Path to report input JSON")
	fs.StringVar(&fontPath, "font", "", "Custom regular TTF (optional)")
	fs.StringVar(&boldPath, "bold-font", "", "Custom bold TTF (optional)")
	fs.IntVar(&timeout, "fetch-timeout", 5000, "Image fetch timeout in milliseconds")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}
	if inputPath == "" {
		printUsage()
		return fmt.Errorf("input file is required (--input)")
	}

	in, warnings, err := loadInput(inputPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	composer, err := report.NewComposer(report.Options{
		FontPath:     fontPath,
		BoldFontPath: boldPath,
		FetchTimeout: time.Duration(timeout) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("composer: %w", err)
	}

	fmt.Printf("Generating report for %s (%s)\n", in.Student.Name, in.Record.Date)
	pdf, err := composer.Generate(context.Background(), *in)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, pdf, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("Done: %s (%d bytes)\n", output, len(pdf))
	return nil
}

func runMessage(args []string) error {
	fs := flag.NewFlagSet("message", flag.ExitOnError)
	var inputPath string
	fs.StringVar(&inputPath, "input", "", "Path to report input JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if inputPath == "" {
		return fmt.Errorf("--input is required for message command")
	}

	in, _, err := loadInput(inputPath)
	if err != nil {
		return err
	}

	fmt.Println(report.SummaryText(in.Student, in.Record))
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "input", "input.json", "Output path for the sample input")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(out, []byte(domain.SampleInputJSON), 0644); err != nil {
		return fmt.Errorf("write sample input: %w", err)
	}

	fmt.Printf("Created: %s\n", out)
	fmt.Println("Run: taqrir -o report.pdf --input " + out)
	return nil
}

// loadInput reads and validates a report input bundle.
func loadInput(path string) (*domain.Input, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	var in domain.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, nil, fmt.Errorf("parse input JSON: %w", err)
	}
	in.Normalize()

	warnings, err := in.Validate()
	if err != nil {
		return nil, nil, err
	}
	return &in, warnings, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`Taqrir — Daily Student Report Generation

USAGE:
    taqrir -o <file.pdf> --input <input.json> [options]
    taqrir message --input <input.json>
    taqrir serve [--port 8080]
    taqrir init [--input input.json]

GENERATE:
    --input <path>         Report input JSON (student, record, settings, schedule)
    -o, --output <path>    Output PDF file
    --font <path>          Custom regular TTF font
    --bold-font <path>     Custom bold TTF font
    --fetch-timeout <ms>   Image fetch timeout (default: 5000)

MESSAGE:
    taqrir message --input <path>    Print the guardian chat message text

SERVER:
    taqrir serve [--port 8080]       Start the HTTP report service

EXAMPLES:
    taqrir init
    taqrir -o report.pdf --input input.json
    taqrir message --input input.json
    taqrir serve --port 9000
`)
}
