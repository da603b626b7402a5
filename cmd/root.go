package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "beacon",
	Short: "Maritime SAR simulation tooling for Gazebo",
	Long: `Beacon drives a Gazebo maritime search-and-rescue simulation:
it generates SDF worlds from environment presets and spawns SAR targets
(rafts, persons, debris) into the running world.`,
}

// setupLogging applies the --log flag before a subcommand runs.
func setupLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
