// Package cli wires the hookdeck commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hookdeck/internal/config"
	"hookdeck/internal/deck"
	"hookdeck/internal/eventbus"
	"hookdeck/internal/logging"
	"hookdeck/internal/ui"
	"hookdeck/internal/ui/logic"
	"hookdeck/internal/watcher"
)

type rootOptions struct {
	configPath string
	start      string
	watch      bool
	logLevel   string
	noMouse    bool
}

// NewRootCommand builds the hookdeck command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hookdeck [deck.yaml]",
		Short: "Present a slide deck in the terminal",
		Long: `hookdeck presents a YAML slide deck in the terminal.

Without a deck file the builtin deck about hooks is shown. Slides are
navigated with the arrow keys; steps inside a slide with up/down or the
number keys.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresenter(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: .hookdeck.toml next to the deck, then the user config)")
	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "slide number, id or title to start on")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the deck when the file changes")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	cmd.AddCommand(
		newOutlineCommand(),
		newExportCommand(),
		newValidateCommand(),
		newConfigCommand(),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig resolves the config file for a deck and applies overrides
func loadConfig(configPath, deckPath string) (*config.Config, error) {
	if err := config.LoadDotEnv("."); err != nil {
		return nil, err
	}

	var svc config.ConfigService
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	} else {
		svc = config.ResolveService(deckPath, nil)
	}
	return svc.Load()
}

// loadDeck reads path, or the builtin deck when path is empty
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Default()
	}
	return deck.Load(path)
}

func runPresenter(cmd *cobra.Command, opts *rootOptions, args []string) error {
	deckPath := ""
	if len(args) > 0 {
		deckPath = args[0]
	}

	cfg, err := loadConfig(opts.configPath, deckPath)
	if err != nil {
		return err
	}
	if deckPath == "" {
		deckPath = cfg.Deck
	}
	if opts.start != "" {
		cfg.StartSlide = opts.start
	}
	if opts.watch {
		cfg.Watch = true
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noMouse {
		cfg.UISettings.Mouse = false
	}

	logger, logErr := logging.NewOrNop(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	if logErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", logErr)
	}

	bus := eventbus.New(logger)
	defer bus.(eventbus.Closer).Close()
	logging.ObserveEvents(bus, logger)

	d, err := loadDeck(deckPath)
	if err != nil {
		return err
	}
	bus.Publish(eventbus.DeckLoadedEvent{Path: d.Source, Slides: d.Len()})

	start := 0
	if cfg.StartSlide != "" {
		start, err = logic.ResolveSlide(d, cfg.StartSlide)
		if err != nil {
			return fmt.Errorf("start slide: %w", err)
		}
	}

	pres, err := deck.NewPresentation(d,
		deck.WithBus(bus),
		deck.WithRememberSteps(cfg.RememberSteps),
		deck.WithStartSlide(start),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(pres, bus, cfg, logger)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)
	defer ui.Bridge(bus, p.Send)()

	if cfg.Watch && deckPath != "" {
		w, err := startWatcher(ctx, deckPath, p, logger)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	logger.Info("starting presenter", zap.String("deck", d.Source), zap.Int("slides", d.Len()))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("presenter exited")
	return nil
}

func startWatcher(ctx context.Context, deckPath string, p *tea.Program, logger *zap.Logger) (*watcher.Watcher, error) {
	w, err := watcher.New(deckPath, func() {
		d, err := deck.Load(deckPath)
		p.Send(ui.DeckReloadedMsg{Path: deckPath, Deck: d, Err: err})
	}, watcher.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, fmt.Errorf("watch %s: %w", deckPath, err)
	}
	return w, nil
}
