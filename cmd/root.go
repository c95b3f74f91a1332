package cmd

import (
	"fmt"
	"os"

	"timeflow/internal/assist"
	"timeflow/internal/config"
	"timeflow/internal/feed"
	"timeflow/internal/log"
	"timeflow/internal/schedule"
	"timeflow/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	scheduleFile string
	noWatch      bool
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "timeflow",
	Short: "A terminal day planner with a scrolling timeline",
	Long: `Timeflow renders the current day as a timeline of events and
reminders, with a moving now indicator and an assistant that can
suggest a plan for the free slots.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&scheduleFile, "file", "f", "", "Schedule file to load events from")
	rootCmd.PersistentFlags().BoolVar(&noWatch, "no-watch", false, "Do not reload when the schedule file changes")
}

func initConfig() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if scheduleFile != "" {
		cfg.ScheduleFile = scheduleFile
	}
}

// seedStore loads the schedule file into the store, replacing whatever
// was there. Used both at startup and on file-change reloads.
func seedStore(store *schedule.Store, path string) error {
	events, err := feed.Load(path)
	if err != nil {
		return err
	}

	for _, event := range store.List() {
		store.Remove(event.ID)
	}
	store.AddBatch(events)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	store := schedule.NewStore()

	if cfg.ScheduleFile != "" {
		if err := seedStore(store, cfg.ScheduleFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}

		if !noWatch {
			watcher, err := feed.NewWatcher(func(path string) {
				if err := seedStore(store, path); err != nil {
					log.Error("reload failed", err, "path", path)
				}
			})
			if err != nil {
				log.Error("watcher unavailable", err)
			} else {
				defer watcher.Close()
				if err := watcher.Add(cfg.ScheduleFile); err != nil {
					log.Error("cannot watch schedule file", err, "path", cfg.ScheduleFile)
				}
			}
		}
	}

	clock := schedule.NewClock(cfg.RefreshRate)
	clock.Start()
	defer clock.Stop()

	model := ui.NewModel(cfg, store, clock, assist.NewSimulator())
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
