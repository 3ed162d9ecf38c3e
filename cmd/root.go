package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"github.com/trknhr/ghostfaker/internal/clipboard"
	"github.com/trknhr/ghostfaker/internal/config"
	"github.com/trknhr/ghostfaker/internal/extension"
	"github.com/trknhr/ghostfaker/internal/logger"
	"github.com/trknhr/ghostfaker/internal/provider"
	"github.com/trknhr/ghostfaker/internal/tui"
)

// OpenFileForTTY is replaced in tests to avoid touching a real terminal.
var OpenFileForTTY = os.OpenFile

type rootFlags struct {
	configPath  string
	logLevel    string
	logFile     string
	match       string
	noClipboard bool
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg       config.Config
	generator *provider.Generator
	ext       *extension.Extension
	copier    clipboard.Copier
}

func newApp(flags *rootFlags, quiet bool) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.match != "" {
		cfg.Match = flags.match
	}
	if flags.noClipboard {
		cfg.Clipboard = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.LogFile, cfg.LogLevel, quiet); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	gen := provider.NewGenerator()
	cat := catalog.New(provider.Names(), cfg.MatchMode())

	var copier clipboard.Copier = clipboard.Noop{}
	if cfg.Clipboard {
		copier = clipboard.NewSystem()
	}

	logger.Debug("loaded %d providers, match mode %s", cat.Len(), cfg.MatchMode())
	return &app{
		cfg:       cfg,
		generator: gen,
		ext:       extension.New(cat, gen, cfg.Icon),
		copier:    copier,
	}, nil
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ghostfaker [query]",
		Short:         "Browse fake data providers and copy sample values",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, true)
			if err != nil {
				return err
			}
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			model := tui.NewTuiModel(a.ext, a.copier, initial)

			opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
			tty, err := OpenFileForTTY("/dev/tty", os.O_RDWR, 0)
			if err != nil {
				logger.Warn("failed to open tty, reading from stdin: %v", err)
			} else {
				defer tty.Close()
				opts = append(opts, tea.WithInput(tty))
			}

			p := tea.NewProgram(model, opts...)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}

			if err := model.CopyErr(); err != nil {
				logger.WarnClipboardOnce(err)
			}
			if text := model.SelectedText(); text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config file (default: user config dir)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn, error or none")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.match, "match", "", "provider matching: substring or fuzzy")
	pf.BoolVar(&flags.noClipboard, "no-clipboard", false, "print values instead of copying them")

	cmd.AddCommand(
		newListCmd(flags),
		newGenerateCmd(flags),
		newServeCmd(flags),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
