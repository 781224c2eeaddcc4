package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cunycal/calendar"
	"cunycal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or change the stored export settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored reminder lead time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Open(conf.SettingsDB)
		if err != nil {
			return err
		}
		defer store.Close()

		s := store.Get(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "reminder minutes: %d\n", s.ReminderMinutes)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <minutes>",
	Short: "Store the reminder lead time (0 disables reminders)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes < 0 {
			return fmt.Errorf("minutes must be zero or a positive integer, got %q", args[0])
		}

		store, err := settings.Open(conf.SettingsDB)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Put(cmd.Context(), calendar.ExportSettings{ReminderMinutes: minutes})
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
