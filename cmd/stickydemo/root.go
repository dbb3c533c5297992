package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v3"
	"github.com/spf13/cobra"
	"github.com/xqrs/tview"
	"github.com/xqrs/tview/internal/catalog"
	"github.com/xqrs/tview/internal/config"
	"github.com/xqrs/tview/keybind"
)

type rootOptions struct {
	configPath string
	sections   int
	items      int
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	return (&rootOptions{}).command()
}

func (o *rootOptions) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "stickydemo",
		Short:        "Browse a sectioned list with a pinned section header",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			app, _ := newDemo(cfg, logger)
			logger.Info("starting", "sections", cfg.Sections, "items", cfg.ItemsPerSection)
			if err := app.Run(); err != nil {
				logger.Error("application stopped", "err", err)
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.IntVar(&o.sections, "sections", 0, "number of sections")
	flags.IntVar(&o.items, "items", 0, "number of items per section")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// load reads the config file and applies the flags the user set on top.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	path, allowMissing := o.configPath, false
	if path == "" {
		path, allowMissing = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, allowMissing)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("sections") {
		cfg.Sections = o.sections
	}
	if flags.Changed("items") {
		cfg.ItemsPerSection = o.items
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(o.logLevel)
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger opens the log file of cfg. Without a file, records are dropped
// since the terminal is owned by the UI.
func newLogger(cfg config.Log) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "stickydemo",
	})
	return logger, closeFn, nil
}

// newDemo wires the catalog into a bordered list with a sticky header.
func newDemo(cfg config.Config, logger *log.Logger) (*tview.Application, *tview.ScrollList) {
	items := catalog.New(catalog.Generate(cfg.Sections, cfg.ItemsPerSection), cfg.Leading, cfg.Trailing)

	list := tview.NewScrollList().
		SetBuilder(items.Build).
		SetGap(cfg.Gap)
	sticky := tview.NewStickyHeader(list.Layout(items.Leading())).
		SetOffsets(items.Leading(), items.Trailing()).
		SetHeaderHeight(cfg.HeaderHeight).
		SetLogger(logger.With("component", "sticky"))
	list.SetStickyHeader(sticky, items)
	list.SetChangedFunc(func(index int) {
		logger.Debug("cursor moved", "index", index, "section", items.SectionAt(index))
	})

	quit := keybind.NewKeybind(keybind.WithKeys("q", "esc", "ctrl+c"), keybind.WithHelp("q", "quit"))
	help := append(list.KeyMap().ShortHelp(), quit)
	list.SetBorders(tview.BordersAll).
		SetBorderSet(tview.BorderSetRound()).
		SetTitle(" stickydemo ").
		SetFooter(" " + keybind.ShortHelp(" • ", help...) + " ")

	app := tview.NewApplication().
		SetLogger(logger).
		SetRoot(list).
		SetInputCapture(func(event *tcell.EventKey) tview.Command {
			if keybind.Matches(event, quit) {
				return tview.QuitCommand{}
			}
			return nil
		})
	return app, list
}
