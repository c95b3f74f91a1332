package cmd

import (
	"context"
	"fmt"
	"time"

	"timeflow/internal/assist"
	"timeflow/internal/schedule"

	"github.com/spf13/cobra"
)

var (
	suggestFocus  string
	suggestPrompt bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print a suggested plan for the day and exit",
	Long: `Ask the schedule assistant for a plan that fills the free slots
of the working day around the events already in the schedule file.
The plan is printed but not saved; use the TUI to accept suggestions.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestFocus, "focus", "", "Theme for the first suggested block")
	suggestCmd.Flags().BoolVar(&suggestPrompt, "prompt", false, "Also print the prompt sent to the assistant")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	store := schedule.NewStore()
	if cfg.ScheduleFile != "" {
		if err := seedStore(store, cfg.ScheduleFile); err != nil {
			return err
		}
	}

	req := assist.Request{
		Day:    time.Now(),
		Events: store.List(),
		Focus:  suggestFocus,
	}

	if suggestPrompt {
		fmt.Println(assist.BuildPrompt(req))
		fmt.Println()
	}

	planner := assist.NewSimulator()
	planner.WorkdayStart = cfg.WorkdayStart
	planner.WorkdayEnd = cfg.WorkdayEnd

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	plan, err := planner.Plan(ctx, req)
	if err != nil {
		return fmt.Errorf("planner failed: %w", err)
	}

	fmt.Println(plan)

	drafts := schedule.ParseSuggestion(plan)
	fmt.Printf("\n%d events parsed from this plan\n", len(drafts))

	return nil
}
