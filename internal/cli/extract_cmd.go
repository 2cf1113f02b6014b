package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/shiftroster/internal/cli/formatter"
	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type extractFlags struct {
	out       string
	names     []string
	slots     int
	start     int
	config    string
	stdout    bool
	noHistory bool
}

func newExtractCmd(app *App) *cobra.Command {
	var f extractFlags

	cmd := &cobra.Command{
		Use:   "extract [FILE]",
		Short: "Extract the roster for the target staff into a JSON file",
		Long: `Extract reads the text layer of a roster PDF (or a .txt dump of one),
finds each target staff member's row and writes their shifts keyed by date.

Rows that do not yield a full set of shifts are skipped with a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.apply(cmd.Flags(), app.Config, args)
			if err != nil {
				return err
			}
			if cfg.InputPath == "" {
				return fmt.Errorf("no input file: pass FILE or set SHIFTROSTER_INPUT")
			}

			req := service.ExtractRequest{Config: cfg, SkipHistory: f.noHistory}
			if f.stdout {
				req.Stdout = cmd.OutOrStdout()
			}

			stop := func() {}
			if app.interactive() && !f.stdout {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Reading "+filepath.Base(cfg.InputPath))
			}
			res, err := app.Roster.Extract(cmd.Context(), req)
			stop()
			if err != nil {
				return err
			}
			if f.stdout {
				return nil
			}

			out := cmd.OutOrStdout()
			if !res.Written {
				fmt.Fprintln(out, formatter.Dim("No matching staff data found; nothing written."))
				return nil
			}

			fmt.Fprintf(out, "Saved schedule for %s to %s\n",
				formatter.Plural(res.Run.StaffCount, "staff member"), res.Run.OutputPath)
			if n := len(res.Outcome.Warnings); n > 0 {
				fmt.Fprintf(out, "%s\n", formatter.StyleYellow.Render(
					fmt.Sprintf("Skipped %s with too few shifts.", formatter.Plural(n, "row"))))
			}
			if app.interactive() {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatHeaders(res.Outcome.Result))
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatSchedule(res.Outcome.Result))
			}
			return nil
		},
	}

	f.bind(cmd.Flags())

	return cmd
}

func (f *extractFlags) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&f.out, "out", "o", "", "output JSON path (default "+config.DefaultOutputPath+")")
	flags.StringSliceVarP(&f.names, "names", "n", nil, "staff names to extract, comma separated")
	flags.IntVar(&f.slots, "slots", 0, "number of shifts per staff row")
	flags.IntVar(&f.start, "start", 0, "date index of the first shift")
	flags.StringVarP(&f.config, "config", "c", "", "YAML config file")
	flags.BoolVar(&f.stdout, "stdout", false, "write the JSON to stdout instead of a file")
	flags.BoolVar(&f.noHistory, "no-history", false, "do not record this run in the history database")
}

// apply layers the config file and explicitly set flags over base.
func (f *extractFlags) apply(flags *pflag.FlagSet, base config.Config, args []string) (config.Config, error) {
	cfg := base
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return config.Config{}, err
		}
		// History and logging are wired at startup and stay with base.
		loaded.DBPath = base.DBPath
		loaded.LogLevel = base.LogLevel
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.InputPath = args[0]
	}
	if flags.Changed("out") {
		cfg.OutputPath = f.out
	}
	if flags.Changed("names") {
		cfg = cfg.WithNames(f.names)
	}
	if flags.Changed("slots") {
		cfg.SlotCount = f.slots
	}
	if flags.Changed("start") {
		cfg.StartDate = f.start
	}
	return cfg, nil
}
