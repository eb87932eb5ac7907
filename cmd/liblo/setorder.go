package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setOrderCmd = &cobra.Command{
	Use:   "set-order <plugin...>",
	Short: "Replace the entire load order",
	Long: `Replace the entire load order with the given plugin names, in the
order given. Fails atomically if the result would violate the master
partition, duplicate a name, or fail plugin validation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSetOrder,
}

var setPositionCmd = &cobra.Command{
	Use:   "set-position <plugin> <index>",
	Short: "Move a single plugin to a position in the load order",
	Args:  cobra.ExactArgs(2),
	RunE:  runSetPosition,
}

func init() {
	rootCmd.AddCommand(setOrderCmd)
	rootCmd.AddCommand(setPositionCmd)
}

func runSetOrder(cmd *cobra.Command, args []string) error {
	h, err := openHandle()
	if err != nil {
		return err
	}

	if err := h.SetLoadOrder(args); err != nil {
		return fmt.Errorf("setting load order: %w", err)
	}
	if err := h.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	fmt.Println("Load order updated.")
	return nil
}

func runSetPosition(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}

	h, err := openHandle()
	if err != nil {
		return err
	}

	if err := h.LoadOrder().SetPosition(args[0], index); err != nil {
		return fmt.Errorf("setting position: %w", err)
	}
	if err := h.Save(); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	fmt.Printf("Moved %s to position %d\n", args[0], index)
	return nil
}
