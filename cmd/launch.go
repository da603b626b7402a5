package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Nanda128/Beacon/maritime"
	"github.com/Nanda128/Beacon/maritime/gz"
)

var (
	// CLI flags for the launcher
	launchEnv      string // Environment preset name
	launchGUI      bool   // Accepted for interface compatibility; the sim always starts with GUI
	launchConfig   string // Directory holding env_<name>.yaml presets
	launchModels   string // Directory holding SAR target models
	launchOut      string // World file destination (default: temp path)
	launchDryRun   bool   // Render and print the launch command without starting gz
	launchLogLevel string // Log verbosity level
)

// validEnv checks the preset name against the shipped presets.
func validEnv(name string) bool {
	for _, p := range maritime.Presets {
		if p == name {
			return true
		}
	}
	return false
}

// worldFilePath picks the destination for the rendered world.
func worldFilePath(out, env string) string {
	if out != "" {
		return out
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("maritime_%s.sdf", env))
}

// launchCmd generates the SDF world for a preset and starts gz sim on it.
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Generate a maritime world from a preset and start the simulator",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(launchLogLevel)

		if !validEnv(launchEnv) {
			logrus.Fatalf("Unknown environment %q (available: calm, moderate, rough)", launchEnv)
		}

		logrus.Infof("Loading environment: %s", launchEnv)
		cfg, err := maritime.LoadEnvConfig(launchConfig, launchEnv)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Environment: %s", cfg.Environment.Description)
		logrus.Infof("Wave height: %gm", cfg.Ocean.WaveHeight)
		logrus.Infof("Wind speed: %g m/s", cfg.Wind.SpeedMean)

		logrus.Info("Generating world file from configuration...")
		sdf, err := maritime.RenderWorld(cfg)
		if err != nil {
			logrus.Fatalf("Failed to render world: %v", err)
		}

		worldFile := worldFilePath(launchOut, launchEnv)
		if err := os.WriteFile(worldFile, []byte(sdf), 0o644); err != nil {
			logrus.Fatalf("Failed to write world file: %v", err)
		}
		logrus.Infof("World file created: %s", worldFile)

		client := gz.NewClient()
		fmt.Printf("\n[LAUNCH] %s\n\n", client.LaunchCommand(worldFile, launchModels))
		if launchDryRun {
			return
		}

		if err := client.LaunchSim(context.Background(), worldFile, launchModels); err != nil {
			logrus.Warnf("gz sim exited with error: %v", err)
		}

		printSpawnHints(cfg)
	},
}

// printSpawnHints tells the user how to populate the world with
// targets once the simulator is up.
func printSpawnHints(cfg *maritime.EnvConfig) {
	if !cfg.Targets.SpawnEnabled {
		return
	}
	fmt.Println("\nTo spawn targets, use the Gazebo GUI (Insert tab) or:")
	fmt.Println("  beacon spawn --scenario basic")
	fmt.Println("  beacon spawn --model sar_target_raft --pos 10,5")
	fmt.Println("  beacon spawn --random 10 --area 200")
}

// init sets up CLI flags for the launch subcommand
func init() {
	launchCmd.Flags().StringVarP(&launchEnv, "env", "e", "calm", "Environment preset to load (calm, moderate, rough)")
	launchCmd.Flags().BoolVar(&launchGUI, "gui", true, "Launch with GUI (default: true)")
	launchCmd.Flags().StringVar(&launchConfig, "config-dir", "config", "Directory containing env_<name>.yaml presets")
	launchCmd.Flags().StringVar(&launchModels, "models-dir", "models", "Directory containing SAR target models")
	launchCmd.Flags().StringVar(&launchOut, "out", "", "World file destination (default: <tmp>/maritime_<env>.sdf)")
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "Render the world and print the launch command without starting gz")
	launchCmd.Flags().StringVar(&launchLogLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(launchCmd)
}
