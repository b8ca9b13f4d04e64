// Command cutquote prints the price of cutting each of the profiles named
// on the command line.
//
// Usage:
//
//	cutquote [flags] profile.json...
//
// Cost parameters come from the configuration file and may be overridden
// with flags. With -xlsx, an itemized spreadsheet is written as well.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/cutquote"
	"honnef.co/go/cutquote/internal/config"
	applog "honnef.co/go/cutquote/internal/log"
	"honnef.co/go/cutquote/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cutquote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "configuration `file` (default $"+config.EnvConfigFile+")")
		margin     = fs.Float64("margin", -1, "margin added to each dimension of the bounding rectangle")
		area       = fs.Float64("area", -1, "cost per unit of area")
		speed      = fs.Float64("speed", -1, "cutting speed of straight edges")
		timeCost   = fs.Float64("time", -1, "cost per unit of cutting time")
		xlsx       = fs.String("xlsx", "", "write an itemized report to `file`")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cutquote [flags] profile.json...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "cutquote:", err)
		return 2
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
		Output:    stderr,
	})
	defer applog.Close()
	l := applog.WithComponent("cli")

	params := cfg.Cost.Params()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "margin":
			params.Margin = *margin
		case "area":
			params.CostPerArea = *area
		case "speed":
			params.BaseSpeed = *speed
		case "time":
			params.CostPerTime = *timeCost
		}
	})
	if err := params.Validate(); err != nil {
		fmt.Fprintln(stderr, "cutquote:", err)
		return 2
	}

	status := 0
	var rows []report.Row
	for _, path := range fs.Args() {
		est, err := quoteFile(path, params)
		if err != nil {
			applog.WithOperation(l, "quote").Error("quote failed", slog.String("file", path), slog.Any("err", err))
			fmt.Fprintf(stderr, "%s: %s\n", path, err)
			status = 1
			continue
		}
		l.Debug("quoted", slog.String("file", path), slog.Float64("rotation", est.Rotation), slog.String("cost", est.String()))
		fmt.Fprintf(stdout, "%s\t%s\n", path, est)
		rows = append(rows, report.Row{Profile: path, Estimate: est})
	}

	if *xlsx != "" {
		if err := report.Save(*xlsx, rows, params); err != nil {
			l.Error("writing report failed", slog.String("file", *xlsx), slog.Any("err", err))
			fmt.Fprintln(stderr, "cutquote:", err)
			return 1
		}
	}
	return status
}

func quoteFile(path string, params cutquote.CostParams) (cutquote.Estimate, error) {
	f, err := os.Open(path)
	if err != nil {
		return cutquote.Estimate{}, err
	}
	defer f.Close()
	q, err := cutquote.ParseReader(f)
	if err != nil {
		return cutquote.Estimate{}, err
	}
	return q.Estimate(params), nil
}
