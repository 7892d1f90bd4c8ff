package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/config"
	"github.com/yaoapp/agenda/render"
	"github.com/yaoapp/agenda/share"
	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
	"github.com/yaoapp/kun/exception"
	"github.com/yaoapp/kun/log"
)

var generateFlags = generateOptions{}
var generateWatch bool

type generateOptions struct {
	Source     string
	CSV        string
	First      string
	Last       string
	Output     string
	Background string
	Layout     string
	Preview    bool
	Strict     bool
}

// generateReport the result of one run
type generateReport struct {
	agenda.Result
	Output   string
	Pages    int
	Warnings int
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: L("Generate the agenda"),
	Long:  L("Generate the agenda"),
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		defer func() {
			err := exception.Catch(recover())
			if err != nil {
				fmt.Fprintln(os.Stderr, color.RedString(L("Fatal: %s"), err.Error()))
				os.Exit(exitError)
			}
		}()

		Boot()
		opts := generateFlags.withConfig(config.Conf)
		report, err := generate(opts, os.Stdout)
		fatal(err)
		printReport(report)

		if generateWatch {
			watchSource(opts)
		}
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&generateFlags.Source, "source", "s", "", L("Source file (.csv or .xlsx)"))
	flags.StringVar(&generateFlags.CSV, "csv", "", L("Deprecated, use --source"))
	flags.StringVar(&generateFlags.First, "first", "", L("First day (mm/dd/yyyy)"))
	flags.StringVar(&generateFlags.Last, "last", "", L("Last day (mm/dd/yyyy)"))
	flags.StringVarP(&generateFlags.Output, "output", "o", "", L("Output file (default agenda_out.pdf)"))
	flags.StringVarP(&generateFlags.Background, "background", "b", "", L("Background PDF"))
	flags.StringVarP(&generateFlags.Layout, "layout", "l", "", L("Layout file"))
	flags.BoolVarP(&generateFlags.Preview, "preview", "p", false, L("Print the agenda"))
	flags.BoolVar(&generateFlags.Strict, "strict", false, L("Malformed rows abort the run"))
	flags.BoolVarP(&generateWatch, "watch", "w", false, L("Regenerate when the source file changes"))
	flags.MarkDeprecated("csv", L("The --csv flag is deprecated, use --source"))
}

// withConfig fill the unset options from the configuration, paths are resolved against the root
func (opts generateOptions) withConfig(cfg config.Config) generateOptions {
	if opts.Source == "" && opts.CSV != "" {
		opts.Source = opts.CSV
	}
	if opts.Output == "" {
		opts.Output = cfg.Output
	}
	if opts.Layout == "" {
		opts.Layout = cfg.Layout
	}
	if opts.Background == "" {
		opts.Background = cfg.Background
	}
	if !opts.Strict {
		opts.Strict = cfg.Strict
	}

	opts.Source = cfg.Path(opts.Source)
	opts.Output = cfg.Path(opts.Output)
	opts.Layout = cfg.Path(opts.Layout)
	opts.Background = cfg.Path(opts.Background)
	return opts
}

// validate checks the command line before anything is read or written
func (opts generateOptions) validate() (first time.Time, last time.Time, err error) {
	if opts.Source == "" {
		return first, last, agenda.Usage(L("Missing required flag: %s"), "--source")
	}
	if opts.First == "" {
		return first, last, agenda.Usage(L("Missing required flag: %s"), "--first")
	}
	if opts.Last == "" {
		return first, last, agenda.Usage(L("Missing required flag: %s"), "--last")
	}
	if opts.Output == "" {
		return first, last, agenda.Usage(L("Missing required flag: %s"), "--output")
	}

	if _, err := source.Detect(opts.Source); err != nil {
		return first, last, agenda.UsageWrap(err, L("Unsupported source file, expect .csv, .xlsx"))
	}

	first, err = week.Parse(opts.First)
	if err != nil {
		return first, last, agenda.UsageWrap(err, "--first")
	}

	last, err = week.Parse(opts.Last)
	if err != nil {
		return first, last, agenda.UsageWrap(err, "--last")
	}

	return first, last, agenda.ValidateRange(first, last)
}

// generate parse the source and write the agenda, the transcript goes to stdout when previewing
func generate(opts generateOptions, stdout io.Writer) (*generateReport, error) {
	first, last, err := opts.validate()
	if err != nil {
		return nil, err
	}

	layout, err := config.LoadLayout(opts.Layout)
	if err != nil {
		return nil, err
	}
	if opts.Background != "" {
		layout.Background = opts.Background
	}

	data, err := source.Open(opts.Source, source.Options{Strict: opts.Strict})
	if err != nil {
		return nil, err
	}

	spread, err := render.NewSpread(layout)
	if err != nil {
		return nil, err
	}

	var renderer agenda.Renderer = spread
	if opts.Preview {
		renderer = agenda.Multi(spread, render.NewText(stdout))
	}

	result, err := agenda.Generate(data, first, last, renderer)
	if err != nil {
		return nil, err
	}

	if err := spread.Save(opts.Output); err != nil {
		return nil, fmt.Errorf("save %s: %w", opts.Output, err)
	}

	log.With(log.F{
		"source": opts.Source,
		"output": opts.Output,
		"weeks":  result.Weeks,
		"pages":  spread.PageCount(),
	}).Info("agenda generated")

	return &generateReport{
		Result:   result,
		Output:   opts.Output,
		Pages:    spread.PageCount(),
		Warnings: data.WarningCount(),
	}, nil
}

func printReport(report *generateReport) {
	if report.Warnings > 0 {
		fmt.Println(color.YellowString(L("Warning: %s"), fmt.Sprintf(L("%d rows skipped"), report.Warnings)))
	}
	fmt.Println(color.GreenString(L("✨DONE✨")))
	fmt.Printf("%s %s\n", color.WhiteString(L("Output")+":"), report.Output)
	fmt.Printf("%s %d (%s - %s)\n", color.WhiteString(L("Weeks")+":"), report.Weeks,
		report.First.Format("01/02/2006"), report.Last.Format("01/02/2006"))
	fmt.Printf("%s %d\n", color.WhiteString(L("Pages")+":"), report.Pages)
}

// watchSource regenerate on every change until interrupted
func watchSource(opts generateOptions) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	err := share.Watch(ctx, opts.Source, func(op string, file string) {
		if op != "write" && op != "create" {
			return
		}

		fmt.Println(color.CyanString(L("Regenerate: %s"), file))
		report, err := generate(opts, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString(L("Fatal: %s"), err.Error()))
			return
		}
		printReport(report)
	})
	fatal(err)
}
