package main

import (
	"fmt"
	"os"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/services"
	"case_desk_app_go/services/jobs"

	"github.com/spf13/cobra"
)

var (
	exportOut string
	docketOut string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := openDatabase(cfg); err != nil {
			return err
		}
		defer db.Close()

		result, err := services.SeedDemoData(db.DB, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d clients, %d cases, %d court dates\n",
			result.Users, result.Clients, result.Cases, result.CourtDates)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the case and court date workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := openDatabase(cfg); err != nil {
			return err
		}
		defer db.Close()

		buf, err := services.GenerateCaseWorkbook(db.DB)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOut)
		return nil
	},
}

var docketCmd = &cobra.Command{
	Use:   "docket",
	Short: "Render the upcoming court docket as PDF",
	Long:  `Render the court dates of the next 30 days as a PDF. Requires Chrome or Chromium (CHROME_PATH).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := openDatabase(cfg); err != nil {
			return err
		}
		defer db.Close()

		now := time.Now()
		dates, err := services.GetUpcomingCourtDates(db.DB, now)
		if err != nil {
			return err
		}
		pdf, err := services.GenerateDocketPDF(cmd.Context(), dates, now.In(cfg.Location()), services.DefaultPDFOptions(cfg.ChromePath))
		if err != nil {
			return err
		}
		if err := os.WriteFile(docketOut, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", docketOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d court dates)\n", docketOut, len(dates))
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send court date reminders once",
	Long:  `Email each attorney the court dates of their cases in the next 24 hours that were not reminded yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := openDatabase(cfg); err != nil {
			return err
		}
		defer db.Close()

		sent, err := jobs.SendCourtDateReminders(db.DB, time.Now(), func(email *services.Email) error {
			return services.SendEmail(cfg, email)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent %d reminder emails\n", sent)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "cases.xlsx", "output file")
	docketCmd.Flags().StringVarP(&docketOut, "out", "o", "docket.pdf", "output file")

	rootCmd.AddCommand(seedCmd, exportCmd, docketCmd, remindCmd)
}
