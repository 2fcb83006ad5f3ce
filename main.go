package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"wumpus/pkg/config"
	"wumpus/pkg/game/content"
	"wumpus/pkg/game/devtools"
	"wumpus/pkg/game/gameplay"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/menu"
	"wumpus/pkg/game/renderer"
	ebitenrenderer "wumpus/pkg/game/renderer/ebiten"
	"wumpus/pkg/game/renderer/tui"
	"wumpus/pkg/game/save"
	"wumpus/pkg/game/setup"
	"wumpus/pkg/logger"
)

// runner is implemented by renderers that own the main goroutine
type runner interface {
	Run(loop func()) error
}

type flags struct {
	renderer string
	seed     string
	locale   string
	content  string
	saveDir  string
	logLevel string
	dump     string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.renderer, "renderer", "", "renderer to use: tui or ebiten")
	flag.StringVar(&f.seed, "seed", "", "random seed for the cave layout")
	flag.StringVar(&f.locale, "locale", "", "language for game messages, e.g. en_GB")
	flag.StringVar(&f.content, "content", "", "path to a content table (YAML)")
	flag.StringVar(&f.saveDir, "save-dir", "", "directory for the save file")
	flag.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.StringVar(&f.dump, "dump", "", "write a cave dump for a new game to this file and exit (for developer testing)")
	flag.Parse()
	return f
}

// apply overrides configuration with the flags that were given
func (f flags) apply(cfg *config.Config) error {
	if f.renderer != "" {
		cfg.Renderer = f.renderer
	}
	if f.seed != "" {
		seed, err := strconv.ParseInt(f.seed, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: -seed: %v", config.ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}
	if f.locale != "" {
		base, err := locale.Normalize(f.locale)
		if err != nil {
			return fmt.Errorf("%w: -locale: %v", config.ErrInvalidConfig, err)
		}
		cfg.Locale = base
	}
	if f.content != "" {
		cfg.Content = f.content
	}
	if f.saveDir != "" {
		cfg.SaveDir = f.saveDir
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg.Validate()
}

func loadContent(path string) (*content.Table, error) {
	if path == "" {
		return content.LoadDefault()
	}
	return content.Load(path)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	f := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if err := f.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logCloser, err := logger.Init(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Version: renderer.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	locale.Init(cfg.Locale)

	table, err := loadContent(cfg.Content)
	if err != nil {
		fatal("cannot load content", err)
	}

	store, err := save.NewFileStore(cfg.SaveDir)
	if err != nil {
		fatal("cannot open save store", err)
	}

	ctx := context.Background()
	s := gameplay.NewSession(ctx, table, store, setup.Config{
		Seed: cfg.Seed,
		Pits: cfg.Pits,
		Bats: cfg.Bats,
	})

	slog.Info("starting",
		"version", renderer.Version,
		"commit", renderer.Commit,
		"renderer", cfg.Renderer,
		"seed", cfg.Seed,
		"locale", cfg.Locale,
		"save", store.Path())

	if f.dump != "" {
		if err := s.NewGame(); err != nil {
			fatal("cannot set up game", err)
		}
		path, err := devtools.DumpCaveToFile(s.Game, f.dump)
		if err != nil {
			fatal("cannot write cave dump", err)
		}
		fmt.Println(path)
		return
	}

	switch cfg.Renderer {
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	default:
		renderer.SetRenderer(tui.New())
	}
	renderer.Init()

	if r, ok := renderer.Current.(runner); ok {
		if err := r.Run(func() { run(s) }); err != nil {
			fatal("renderer stopped", err)
		}
	} else {
		run(s)
	}

	renderer.ShowMessage("GT{GOODBYE}")
	renderer.Close()
}

// run alternates between the title screen and the hunt until the player quits
func run(s *gameplay.Session) {
	for {
		switch menu.RunMainMenu(s.HasSave()) {
		case menu.MainMenuActionNewGame:
			var err error
			if s.Game == nil {
				err = s.NewGame()
			} else {
				err = s.Restart()
			}
			if err != nil {
				slog.Error("cannot set up game", "error", err)
				return
			}
		case menu.MainMenuActionContinue:
			if err := s.LoadGame(); err != nil {
				slog.Warn("cannot continue", "error", err)
				continue
			}
			s.Game.AddMessage(renderer.ApplyMarkup("%s", locale.T("GAME_LOADED")))
			gameplay.Perceive(s.Game)
		default:
			return
		}

		play(s)
		if s.Quit {
			return
		}
	}
}

// play runs one hunt: draw, read, act
func play(s *gameplay.Session) {
	for !s.Quit && !s.ToTitle {
		renderer.RenderFrame(s.Game)
		s.ProcessIntent(renderer.GetInput())
	}
}
