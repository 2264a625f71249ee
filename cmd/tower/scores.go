package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tower-climber/internal/platform/tui"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/storage"
	"github.com/vovakirdan/tower-climber/internal/tower"
)

var (
	flagRuns   bool
	flagBrowse bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores or run history",
	Long: `Display the top scores of a variant (climb, arena, endless or a game id).
Without a variant a summary of every variant is shown.

Examples:
  tower scores
  tower scores arena
  tower scores endless --runs
  tower scores --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent run history instead of top scores")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
}

// resolveGameID accepts a variant name or a registered game id.
func resolveGameID(arg string) (string, error) {
	if registry.Exists(arg) {
		return arg, nil
	}
	v, err := tower.ParseVariant(arg)
	if err != nil {
		return "", err
	}
	return v.GameID(), nil
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open scores database: %v", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height, flagRuns); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	gameID := ""
	if len(args) == 1 {
		gameID, err = resolveGameID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'tower list' to see available variants.")
			store.Close()
			os.Exit(1)
		}
	}

	switch {
	case flagRuns:
		printRuns(store, gameID)
	case gameID == "":
		printSummary(store)
	default:
		printTopScores(store, gameID)
	}
}

func title(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

func printTopScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tower play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Victories: %d  |  Best climb: %d tiles\n",
			stats.HighScore, stats.GamesCount, stats.Victories, stats.BestClimb)
	}
}

func printRuns(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if gameID == "" {
		fmt.Println("Recent Runs")
	} else {
		fmt.Printf("Recent Runs - %s\n", title(gameID))
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-10s  %-10s  %-9s  %6s  %6s  %5s  %7s\n",
		"Date", "Variant", "Player", "Map", "Result", "Score", "Height", "Kills", "Time")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-14s  %-10s  %-10s  %-9s  %6d  %6d  %5d  %6.1fs\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Player, r.MapID, r.Outcome,
			r.Score, r.Climbed, r.Kills, r.Duration)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Tower Climber - Statistics")
	fmt.Println()
	fmt.Printf("  %-24s  %6s  %8s  %10s  %s\n", "Variant", "Games", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-24s  %6d  %8s  %10s  %s\n", g.Title, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-24s  %6d  %8d  %10.1f  %s\n",
			g.Title, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
