package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"crosshair-overlay/appconfig"
	"crosshair-overlay/hotkey"
	"crosshair-overlay/input"
	"crosshair-overlay/instance"
	"crosshair-overlay/preset"
	"crosshair-overlay/reticle"
	"crosshair-overlay/settings"
	"crosshair-overlay/snapshot"
	"crosshair-overlay/tray"
)

type options struct {
	configPath string
	logLevel   string
	export     string
	noTray     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := flag.NewFlagSet(appconfig.AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "path to config.yaml (default: user config dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	flags.StringVar(&opts.export, "export", "", "write the startup reticle to this PNG file and exit")
	flags.BoolVar(&opts.noTray, "no-tray", false, "do not show a tray icon")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		return opts, fmt.Errorf("unexpected arguments")
	}
	return opts, nil
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if opts.logLevel != "" {
		if _, err := parseLogLevel(opts.logLevel); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	configPath := opts.configPath
	if configPath == "" {
		if configPath, err = appconfig.DefaultPath(); err != nil {
			configPath = appconfig.FileName
		}
	}
	cfg, cfgErr := appconfig.Load(configPath)

	levelRaw := cfg.LogLevel
	if opts.logLevel != "" {
		levelRaw = opts.logLevel
	}
	level, levelErr := parseLogLevel(levelRaw)
	logger := newSlogLogger(stderr, level)
	if levelErr != nil {
		logger.Warn("bad log_level in config, using info", "err", levelErr)
	}
	if cfgErr != nil {
		logger.Warn("config unusable, running with defaults", "path", configPath, "err", cfgErr)
	}
	gg.SetLogger(logger)

	if opts.export != "" {
		store := preset.Open(cfg.PresetsFile, logger, preset.WithClampOnLoad(cfg.ClampOnLoad))
		return exportReticle(opts.export, initialConfig(cfg, store, logger), logger)
	}

	// Held before the preset and settings files are read.
	lock, err := instance.Acquire(InstanceName)
	if errors.Is(err, instance.ErrAlreadyRunning) {
		fmt.Fprintln(stderr, WindowTitle+" is already running.")
		return 0
	}
	if err != nil {
		logger.Warn("single-instance check unavailable", "err", err)
	}
	defer lock.Release()

	store := preset.Open(cfg.PresetsFile, logger, preset.WithClampOnLoad(cfg.ClampOnLoad))
	initial := initialConfig(cfg, store, logger)
	session := settings.NewSession(store, settings.NewModel(cfg.SettingsFile, initial), cfg.Preview.Width, cfg.Preview.Height)

	candidates, err := hotkey.ParseCandidates(cfg.Hotkeys)
	if err != nil {
		logger.Warn("bad hotkeys in config, using defaults", "err", err)
		candidates, _ = hotkey.ParseCandidates(hotkey.DefaultCandidates)
	}
	bridge := hotkey.NewBridge(hotkey.NewSource(input.Held), candidates, logger)
	bridge.Start()
	defer bridge.Stop()

	var tr *tray.Tray
	if cfg.Tray && !opts.noTray {
		icon, err := snapshot.Icon(initial, IconSize)
		if err != nil {
			logger.Warn("tray icon render failed", "err", err)
		}
		tr = tray.New(WindowTitle, icon, logger)
		tr.Start()
		defer tr.Quit()
	}

	logger.Info(WindowTitle+" started",
		"config", configPath,
		"presets", cfg.PresetsFile,
		"settings", cfg.SettingsFile,
	)
	setupWindow()
	game := NewGame(logger, cfg, session, ebitenWindow{}, bridge, tr)
	if err := ebiten.RunGameWithOptions(game, runOptions()); err != nil {
		logger.Error("window system failed", "err", err)
		return 1
	}
	return 0
}

// initialConfig prefers the legacy settings file over the preset store.
func initialConfig(cfg appconfig.Config, store *preset.Store, logger *slog.Logger) reticle.Config {
	legacy, found, err := settings.LoadLegacy(cfg.SettingsFile, cfg.ClampOnLoad)
	if err != nil {
		logger.Warn("settings file unreadable, using default preset", "path", cfg.SettingsFile, "err", err)
	}
	if found {
		return legacy
	}
	return store.Get(preset.DefaultGreen)
}

func exportReticle(path string, c reticle.Config, logger *slog.Logger) int {
	if err := snapshot.SavePNG(path, c, ExportSize, ExportSize); err != nil {
		logger.Error("export failed", "err", err)
		return 1
	}
	logger.Info("reticle exported", "path", path)
	return 0
}
