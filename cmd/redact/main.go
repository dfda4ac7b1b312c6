package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/privacyfilters/redact/internal/config"
	"github.com/privacyfilters/redact/internal/redactor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Fprintln(os.Stderr, "redact - create redacted derivatives of annotated image regions")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: redact [-config file.yaml] <anno_file> <out_dir>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Arguments:")
	fmt.Fprintln(os.Stderr, "  anno_file    Path to the VIA annotation file")
	fmt.Fprintln(os.Stderr, "  out_dir      Destination directory (created if missing)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables (override config file values):")
	fmt.Fprintln(os.Stderr, "  REDACT_OUTLINE_COLOR, REDACT_OUTLINE_WIDTH, REDACT_FILL_COLOR,")
	fmt.Fprintln(os.Stderr, "  REDACT_BLUR_RADIUS, REDACT_SKIP_UNREADABLE")
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("redact %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	configPath := flag.String("config", "", "optional YAML file overriding redaction defaults")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	summary, err := redactor.Run(flag.Arg(0), flag.Arg(1), opts)
	if err != nil {
		log.Fatalf("redaction failed: %v", err)
	}

	log.Printf("done: %d images, %d instances, %d artifacts written, %d skipped",
		summary.Images, summary.Instances, summary.Artifacts, summary.Skipped)
}
