package main

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fooddash/internal/config"
	"fooddash/internal/logger"
	"fooddash/pkg/export"
	"fooddash/pkg/frame"
	"fooddash/pkg/pipeline"
	"fooddash/pkg/restaurant"
)

type app struct {
	envFile   string
	dataset   string
	separator string
	logLevel  string
	format    string
	countries []string
	cuisines  []string
	limit     int

	cfg    *config.Config
	log    *zap.Logger
	loader *pipeline.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fooddash",
		Short:         "Clean restaurant listings and print dashboard tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "env file to load before reading the environment (default .env)")
	pf.StringVar(&a.dataset, "dataset", "", "dataset path (.csv, .sqlite or .xlsx); overrides DATASET_PATH")
	pf.StringVar(&a.separator, "sep", "", "CSV separator; overrides DATASET_SEPARATOR")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error; overrides LOG_LEVEL")
	pf.StringVarP(&a.format, "format", "o", "table", "output format: table, json or yaml")
	pf.StringSliceVar(&a.countries, "country", nil, "only include these countries (repeatable)")
	pf.StringSliceVar(&a.cuisines, "cuisine", nil, "only include these cuisines (repeatable)")
	pf.IntVar(&a.limit, "limit", -1, "rows per table; defaults to TOP_N or CITY_CHART_SIZE")

	root.AddCommand(
		newCleanCmd(a),
		newMetricsCmd(a),
		newCountriesCmd(a),
		newCitiesCmd(a),
		newCuisinesCmd(a),
		newTopCmd(a),
		newMapCmd(a),
		newCompareCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.DatasetPath = a.dataset
	}
	if flags.Changed("sep") {
		cfg.DatasetSeparator = a.separator
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch a.format {
	case "table", "json", "yaml":
	default:
		return errors.Errorf("unknown format %q", a.format)
	}
	a.cfg = cfg

	a.log, err = logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.PrettyLogs, File: cfg.LogFile})
	if err != nil {
		return err
	}
	a.loader, err = pipeline.NewLoader(cfg.CacheSize, cfg.Separator(), readDataset(cfg.Separator()), pipeline.WithLogger(a.log))
	return err
}

// readDataset picks a reader from the file extension.
func readDataset(sep rune) pipeline.ReadFunc {
	return func(path string) (*frame.Frame, error) {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".sqlite", ".db":
			return export.ReadSQLite(path)
		case ".xlsx":
			return export.ReadXLSX(path)
		}
		return frame.LoadCSV(path, sep)
	}
}

func (a *app) load() (*pipeline.Loaded, error) {
	return a.loader.Load(a.cfg.DatasetPath)
}

// selection builds the filter from the flags. A flag that was not given
// includes everything.
func (a *app) selection(cmd *cobra.Command, defaultLimit int) (restaurant.Selection, error) {
	sel := restaurant.Selection{Limit: defaultLimit}
	flags := cmd.Flags()
	if flags.Changed("country") {
		sel.Countries = append([]string{}, a.countries...)
	}
	if flags.Changed("cuisine") {
		sel.Cuisines = append([]string{}, a.cuisines...)
	}
	if flags.Changed("limit") {
		sel.Limit = a.limit
	}
	return sel, sel.Validate()
}
