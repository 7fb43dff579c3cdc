package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/rpgtoolkit"
	dicesvc "github.com/KirkDiggler/rpg-adventure/internal/orchestrators/dice"
)

var dropLowest int

var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice, e.g. 4d6, d20+2 or 100",
	Long:  `Roll dice using XdY notation with an optional +N/-N modifier. A bare number rolls one die of that size. Defaults to d20.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().IntVar(&dropLowest, "drop-lowest", 0, "Drop this many of the lowest dice")
}

func runRoll(cmd *cobra.Command, args []string) error {
	notation := "d20"
	if len(args) == 1 {
		notation = args[0]
	}

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Rules:      appConfig.Rules(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := dicesvc.NewOrchestrator(&dicesvc.Config{Engine: eng})
	if err != nil {
		return fmt.Errorf("failed to create dice service: %w", err)
	}

	output, err := svc.Roll(cmd.Context(), &dicesvc.RollInput{
		Notation:   notation,
		DropLowest: dropLowest,
	})
	if err != nil {
		return err
	}

	printRoll(cmd.OutOrStdout(), output.Roll)
	return nil
}

func printRoll(w io.Writer, roll *dicesvc.Roll) {
	fmt.Fprintf(w, "%s: %s", roll.Notation, joinInts(roll.Dice))
	if len(roll.Dropped) > 0 {
		fmt.Fprintf(w, " (dropped %s)", joinInts(roll.Dropped))
	}
	fmt.Fprintf(w, " = %d\n", roll.Total)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
