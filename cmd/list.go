package cmd

import (
	"fmt"
	"time"

	"timeflow/internal/schedule"

	"github.com/spf13/cobra"
)

var showBands bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the schedule file's events and exit",
	Long: `List the events from the configured schedule file in a simple
text format and exit. With --bands, also print the computed layout
geometry for each event.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&showBands, "bands", false, "Print layout geometry (top/height/lane) per event")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	store := schedule.NewStore()
	if cfg.ScheduleFile != "" {
		if err := seedStore(store, cfg.ScheduleFile); err != nil {
			return err
		}
	}

	fmt.Printf("Events for %s:\n", time.Now().Format("Mon Jan 02"))

	events := store.List()
	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	for _, event := range events {
		timeStr := event.StartTime + " – " + event.EndTime
		if event.IsReminder() {
			timeStr = event.StartTime + " (reminder)"
		}

		priorityStr := ""
		switch event.Priority {
		case schedule.PriorityHigh:
			priorityStr = " !!!"
		case schedule.PriorityMedium:
			priorityStr = " !!"
		case schedule.PriorityLow:
			priorityStr = " !"
		}

		fmt.Printf("  %s - %s%s\n", timeStr, event.Title, priorityStr)
		if event.Location != "" {
			fmt.Printf("    at %s\n", event.Location)
		}
	}

	if showBands {
		layout := schedule.NewLayout(store)
		bands, err := layout.Bands(cfg.PixelsPerMinute())
		if err != nil {
			return fmt.Errorf("layout failed: %w", err)
		}
		bands = schedule.AssignLanes(bands)

		fmt.Println("\nLayout:")
		for _, band := range bands {
			fmt.Printf("  %-30s top=%.1f height=%.1f lane=%d\n",
				band.Event.Title, band.Top, band.Height, band.Lane)
		}
	}

	return nil
}
