package commands

import (
	"fmt"
	"os"

	"github.com/serpentlabs/serpent/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "serpent",
	Short:   "serpent runs a snake game in your terminal",
	Version: version.Version,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var verbose bool

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
