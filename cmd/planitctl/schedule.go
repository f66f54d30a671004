package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planit-app/planit-server/client"
	"github.com/planit-app/planit-server/internal/conflict"
)

func init() {
	// check-conflicts
	var kind, date, startDate, endDate, startTime, endTime, excludeID string
	checkCmd := &cobra.Command{
		Use:   "check-conflicts",
		Short: "Check a candidate item against the user's calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			cand := conflict.Candidate{
				Kind:      conflict.Kind(kind),
				Date:      date,
				StartDate: startDate,
				EndDate:   endDate,
				StartTime: startTime,
				EndTime:   endTime,
			}
			report, err := client.New(apiFlag).CheckConflicts(cmd.Context(), userFlag, cand, excludeID)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
	checkCmd.Flags().StringVarP(&kind, "kind", "k", "activity", "Candidate kind: activity, timeline or meeting")
	checkCmd.Flags().StringVarP(&date, "date", "d", "", "Date YYYY-MM-DD (activity/meeting)")
	checkCmd.Flags().StringVar(&startDate, "startDate", "", "Start date YYYY-MM-DD (timeline)")
	checkCmd.Flags().StringVar(&endDate, "endDate", "", "End date YYYY-MM-DD (timeline)")
	checkCmd.Flags().StringVar(&startTime, "startTime", "", "Start time HH:MM")
	checkCmd.Flags().StringVar(&endTime, "endTime", "", "End time HH:MM")
	checkCmd.Flags().StringVar(&excludeID, "exclude", "", "ID to exclude (own id, or goal id for timelines)")
	rootCmd.AddCommand(checkCmd)

	// layout day
	var layoutDate string
	layoutDayCmd := &cobra.Command{
		Use:   "layout-day",
		Short: "Print positioned blocks for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" || layoutDate == "" {
				return fmt.Errorf("--user and --date required")
			}
			blocks, err := client.New(apiFlag).LayoutDay(cmd.Context(), userFlag, layoutDate)
			if err != nil {
				return err
			}
			return printJSON(blocks)
		},
	}
	layoutDayCmd.Flags().StringVarP(&layoutDate, "date", "d", "", "Date YYYY-MM-DD (required)")
	rootCmd.AddCommand(layoutDayCmd)

	// layout month
	var month string
	layoutMonthCmd := &cobra.Command{
		Use:   "layout-month",
		Short: "Print spanning timeline bars for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" || month == "" {
				return fmt.Errorf("--user and --month required")
			}
			blocks, err := client.New(apiFlag).LayoutMonth(cmd.Context(), userFlag, month)
			if err != nil {
				return err
			}
			return printJSON(blocks)
		},
	}
	layoutMonthCmd.Flags().StringVarP(&month, "month", "m", "", "Month YYYY-MM (required)")
	rootCmd.AddCommand(layoutMonthCmd)

	// export
	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the user's calendar as ICS",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			ics, err := client.New(apiFlag).ExportCalendar(cmd.Context(), userFlag)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = fmt.Fprint(os.Stdout, ics)
				return err
			}
			return os.WriteFile(outPath, []byte(ics), 0o644)
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
