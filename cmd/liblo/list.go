package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins in load order",
	Long: `List every plugin the engine currently tracks, in load order, marking
which are active.

Examples:
  liblo list --game skyrim --game-dir ~/Skyrim --state-dir ~/.config/skyrim`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	h, err := openHandle()
	if err != nil {
		return err
	}

	names := h.GetLoadOrder()
	if len(names) == 0 {
		fmt.Println("No plugins tracked.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tACTIVE\tPLUGIN")
	for i, name := range names {
		active := "no"
		if h.IsActive(name) {
			active = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, active, name)
	}
	return w.Flush()
}
