package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <plugin>",
	Short: "Mark a plugin active",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <plugin>",
	Short: "Mark a plugin inactive",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeactivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	h, err := openHandle()
	if err != nil {
		return err
	}

	if err := h.Activate(args[0]); err != nil {
		return fmt.Errorf("activating %s: %w", args[0], err)
	}
	if err := h.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	fmt.Printf("Activated %s\n", args[0])
	return nil
}

func runDeactivate(cmd *cobra.Command, args []string) error {
	h, err := openHandle()
	if err != nil {
		return err
	}

	if err := h.Deactivate(args[0]); err != nil {
		return fmt.Errorf("deactivating %s: %w", args[0], err)
	}
	if err := h.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	fmt.Printf("Deactivated %s\n", args[0])
	return nil
}
