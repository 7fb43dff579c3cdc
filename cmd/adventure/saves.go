package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Inspect and manage save slots",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every save slot",
	Args:  cobra.NoArgs,
	RunE:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Print the saved state in a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesShow,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete the save in a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSavesList(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := openSaveSystem(cmd.Context(), appConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	for _, info := range svc.ListSlots(cmd.Context()) {
		switch {
		case info.Error != "":
			fmt.Fprintf(out, "Slot %d: %s\n", info.Slot, info.Error)
		case info.Empty:
			fmt.Fprintf(out, "Slot %d: Empty\n", info.Slot)
		default:
			fmt.Fprintf(out, "Slot %d: %s (Level %d) - %s\n", info.Slot, info.PlayerName, info.Level, info.LastSave)
		}
	}
	return nil
}

func runSavesShow(cmd *cobra.Command, args []string) error {
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := openSaveSystem(cmd.Context(), appConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	state := svc.LoadGame(cmd.Context(), slot)
	if len(state) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Slot %d is empty\n", slot)
		return nil
	}

	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, formatValue(state[k]))
	}
	return nil
}

func runSavesDelete(cmd *cobra.Command, args []string) error {
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := openSaveSystem(cmd.Context(), appConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	if !svc.DeleteSave(cmd.Context(), slot) {
		return fmt.Errorf("slot %d could not be deleted", slot)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %d\n", slot)
	return nil
}

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 {
		return 0, fmt.Errorf("invalid slot %q", arg)
	}
	return slot, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.ReplaceAll(val, "\n", "; ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
