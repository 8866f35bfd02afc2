package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"flipd/internal/config"
	"flipd/internal/registry"
	"flipd/internal/slotpool"
	"flipd/pkg/types"
)

func buildWalkCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "walk [step...]",
		Short: "Drive a pool over a synthetic sequence and print each plan as JSON",
		Long: "Each step is a position to show, or one of next, prev and refresh.\n" +
			"One JSON object per step is written to stdout.",
		Example: "  flipd walk --count 10 --window 3 --offset 1 5 next next 0\n" +
			"  flipd walk --count 2 --window 3 --offset 1 --loop 0 next next",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runWalk(cmd.OutOrStdout(), cfg, count, args)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "Number of items in the synthetic sequence")
	return cmd
}

// walkLine is one output record of the walk command.
type walkLine struct {
	Step  string              `json:"step"`
	Plan  *types.PlanResponse `json:"plan,omitempty"`
	Error string              `json:"error,omitempty"`
}

func syntheticItems(count int) []types.Item {
	items := make([]types.Item, 0, max(0, count))
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("item-%03d", i)
		items = append(items, types.Item{ID: id, Name: id})
	}
	return items
}

func runWalk(w io.Writer, cfg config.Config, count int, steps []string) error {
	if count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", count)
	}
	pool, err := slotpool.NewWithConfig(slotpool.PoolConfig{
		Window:       cfg.Window(),
		Source:       registry.NewListSource(syntheticItems(count)),
		AnimateFirst: cfg.AnimateFirst,
	})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, step := range steps {
		var (
			plan types.PlanResponse
			err  error
		)
		switch step {
		case "next":
			plan, err = pool.Step(1)
		case "prev":
			plan, err = pool.Step(-1)
		case "refresh":
			plan, err = pool.Rescan()
		default:
			pos, perr := strconv.Atoi(step)
			if perr != nil {
				return fmt.Errorf("step %q: want a position, next, prev or refresh", step)
			}
			plan, err = pool.Show(pos)
		}
		line := walkLine{Step: step}
		switch {
		case err == nil:
			line.Plan = &plan
		case slotpool.IsEmptySequence(err):
			line.Plan = &plan
			line.Error = err.Error()
		default:
			return fmt.Errorf("step %q: %w", step, err)
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
