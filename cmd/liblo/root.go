package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/libloadorder"
	"github.com/NeilSeligmann/libloadorder/internal/probe"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	gameFlag     string
	gameDirFlag  string
	stateDirFlag string
	jsonOutput   bool
)

var gameIDs = map[string]domain.GameID{
	"morrowind": domain.TES3,
	"oblivion":  domain.TES4,
	"skyrim":    domain.TES5,
	"fallout3":  domain.FO3,
	"falloutnv": domain.FNV,
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "liblo",
	Short: "Inspect and edit a Bethesda game's plugin load order",
	Long: `liblo is a thin command-line wrapper around the load-order engine:
listing, activating, deactivating, and reordering plugins for Morrowind,
Oblivion, Skyrim, Fallout 3, and Fallout: New Vegas.

Use subcommands for operations. Run 'liblo --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&gameFlag, "game", "g", "", "game id: morrowind, oblivion, skyrim, fallout3, falloutnv")
	rootCmd.PersistentFlags().StringVar(&gameDirFlag, "game-dir", "", "path to the game's installation directory")
	rootCmd.PersistentFlags().StringVar(&stateDirFlag, "state-dir", "", "path to the directory holding plugins.txt/loadorder.txt")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output errors and sync-status in JSON format")
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// openHandle resolves the persistent flags into a loaded libloadorder.Handle.
func openHandle() (*libloadorder.Handle, error) {
	id, ok := gameIDs[strings.ToLower(gameFlag)]
	if !ok {
		return nil, fmt.Errorf("unknown or missing --game (%s); choose one of morrowind, oblivion, skyrim, fallout3, falloutnv", gameFlag)
	}
	if gameDirFlag == "" {
		return nil, fmt.Errorf("--game-dir is required")
	}
	if stateDirFlag == "" {
		return nil, fmt.Errorf("--state-dir is required")
	}

	profile := libloadorder.NewProfile(id, gameDirFlag, stateDirFlag)
	h := libloadorder.New(profile, probe.NewHeaderProbe())
	if err := h.Load(); err != nil {
		return nil, fmt.Errorf("loading load order: %w", err)
	}
	return h, nil
}
