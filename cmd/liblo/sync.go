package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncStatusCmd = &cobra.Command{
	Use:   "sync-status",
	Short: "Report whether the load-order and active-plugins files agree",
	Long: `For Textfile games (Skyrim), report whether loadorder.txt and
plugins.txt are synchronised. Timestamp games are always synchronised,
since they have only one on-disk mechanism.`,
	RunE: runSyncStatus,
}

func init() {
	rootCmd.AddCommand(syncStatusCmd)
}

func runSyncStatus(cmd *cobra.Command, args []string) error {
	h, err := openHandle()
	if err != nil {
		return err
	}

	ok, err := h.IsSynchronised()
	if err != nil {
		return fmt.Errorf("checking synchronisation: %w", err)
	}

	if jsonOutput {
		fmt.Printf(`{"synchronised":%v}`+"\n", ok)
		return nil
	}

	if ok {
		fmt.Println("synchronised")
	} else {
		fmt.Println("NOT synchronised")
	}
	return nil
}
