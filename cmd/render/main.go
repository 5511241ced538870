package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/tempmap/internal/adapters/source"
	"github.com/okian/tempmap/internal/export"
	"github.com/okian/tempmap/pkg/logger"
)

func main() {
	defaults := export.DefaultConfig()
	var (
		url     = flag.String("url", defaults.URL, "Dataset URL")
		out     = flag.String("out", "", `Output file, "-" for stdout`)
		format  = flag.String("format", defaults.Format, "Output format: svg or html")
		timeout = flag.Duration("timeout", defaults.Timeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		export.ShowHelp(os.Stdout)
		return
	}

	if err := export.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := export.Config{
		URL:     *url,
		Out:     *out,
		Format:  *format,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	client := source.NewClient(
		source.WithURL(cfg.URL),
		source.WithTimeout(cfg.Timeout),
		source.WithLogger(logger.Named("source")),
	)

	if err := export.Run(context.Background(), cfg, client, os.Stdout); err != nil {
		os.Stderr.WriteString("render: " + err.Error() + "\n")
		os.Exit(1)
	}
}
