// tower is a terminal tower climber: one or two players climb a tower of
// platforms and ladders while patrolling enemies and machinegunners shoot back.
//
// Usage:
//
//	tower play [map]         - Play a map (setup menu when no map is given)
//	tower maps               - List available maps
//	tower list               - List game variants
//	tower scores [variant]   - Show high scores or run history
//	tower serve              - Start SSH server for remote play
//	tower config             - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 50)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tower/scores.db)
//	--maps-dir <dir>    - Add the maps found in a directory
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagMapsDir  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Tower Climber - climb, shoot and survive in your terminal",
	Long: `Tower Climber is a terminal platformer. Climb platforms and ladders to the
exit while patrolling enemies and machinegunners try to shoot you down.
Two players can share one keyboard.

Available commands:
  play     - Play a map
  maps     - Show all available maps
  list     - Show game variants
  scores   - View high scores and run history
  serve    - Start SSH server for remote play
  config   - Print the default tuning file

Examples:
  tower play
  tower play level_1 --players 2
  tower play --variant endless
  tower serve --ssh :2222
  tower scores arena --runs`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tower/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps-dir", "", "Directory of extra YAML maps")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. Without --log-file the
// output goes to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints an error the way every command does and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
