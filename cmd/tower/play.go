package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/platform/tui"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/storage"
	"github.com/vovakirdan/tower-climber/internal/tower"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVariant    string
	flagPlayers    int
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map",
	Long: `Start a session on the given map (id or number from 'tower maps').
Without a map an interactive setup menu asks for mode, players and map.

Controls:
  Player 1   A/D move, W jump/climb, S climb down, Space shoot
  Player 2   Arrows move/jump/climb, / shoot
  P          Pause
  R          Restart (after victory or game over)
  Q/Ctrl+C   Quit

Variants:
  climb    - reach the exit (default)
  arena    - destroy every enemy
  endless  - climb a generated tower as high as you can

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  tower play
  tower play 2
  tower play level_1 --players 2
  tower play --variant endless --difficulty hard
  tower play test --config ./my-tower.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagVariant, "variant", "climb", "Game variant: climb, arena, endless")
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of local players (1 or 2)")
}

func runPlay(_ *cobra.Command, args []string) {
	variant, err := tower.ParseVariant(flagVariant)
	if err != nil {
		fail("%v", err)
	}
	if flagPlayers < 1 || flagPlayers > core.MaxPlayers {
		fail("--players must be 1 or %d", core.MaxPlayers)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fail("%v", err)
	}

	if _, err := tower.LoadTuning(flagConfig, flagDifficulty); err != nil {
		fail("invalid configuration: %v", err)
	}

	catalog, err := level.NewCatalog(flagMapsDir)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard, "tower")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size early for the setup menu
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	base := registry.SessionOptions{
		MapsDir:    flagMapsDir,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}

	sel := tui.Selection{Variant: variant, Players: flagPlayers}
	if len(args) == 1 {
		m, err := catalog.Lookup(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'tower maps' to see available maps.")
			closeLog()
			os.Exit(1)
		}
		sel.MapID = m.ID
		if err := playOnce(sel, base, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		return
	}

	runSetupLoop(catalog, sel, base, store, cfg)
}

// runSetupLoop alternates between the setup menu, the scoreboard and games
// until the user quits.
func runSetupLoop(catalog *level.Catalog, sel tui.Selection, base registry.SessionOptions, store *storage.Store, cfg core.RuntimeConfig) {
	for {
		result, err := tui.RunSetup(catalog, cfg, sel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = result.Config
		sel = result.Selection

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, false)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if err := playOnce(sel, base, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// New seed for the next game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
	}
}

func playOnce(sel tui.Selection, base registry.SessionOptions, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := tui.CreateGame(sel, base)
	if err != nil {
		return err
	}
	return tui.Run(game, store, cfg, base.Logger)
}
