package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Query saved analysis sessions",
	Long: `Query analysis sessions recorded with "analyze --save" or through
the dashboard.

Subcommands:
  list - List recent sessions, newest first
  show - Show one session by ID

Examples:
  gridcalc sessions list
  gridcalc sessions list --limit 5
  gridcalc sessions show 01J8Z3V7R9T0M4Q2W6Y8B1N5KD`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsLimit int

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)

	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "maximum number of sessions to list")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.ListSessions(sessionsLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Record one with: gridcalc analyze --save")
		return nil
	}

	fmt.Printf("%-26s  %-16s %10s %12s %9s %-8s\n",
		"ID", "Created", "Price", "Equity", "Margin%", "Tier")
	for _, sess := range sessions {
		fmt.Printf("%-26s  %-16s %10.2f %12.2f %8.2f%% %-8s\n",
			sess.ID, sess.CreatedAt.Local().Format("2006-01-02 15:04"),
			sess.Params.CurrentPrice, sess.Equity, sess.MarginPercent, sess.Tier)
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := store.GetSession(args[0])
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	fmt.Printf("Session: %s\n", sess.ID)
	if sess.PresetName != "" {
		fmt.Printf("  Preset: %s\n", sess.PresetName)
	}
	fmt.Printf("  Created: %s\n", sess.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Grid: %d levels from %.2f, step %.2f, lot %.4f\n",
		sess.Params.LevelCount, sess.Params.StartPrice, sess.Params.Step, sess.Params.LotSize)
	fmt.Printf("  Price: %.2f (balance %.2f, leverage 1:%d)\n",
		sess.Params.CurrentPrice, sess.Params.Balance, sess.Params.Leverage)
	fmt.Printf("  Triggered: %d, avg entry %.2f\n", sess.NumTriggered, sess.AvgEntry)
	fmt.Printf("  Floating P/L: %.2f\n", sess.FloatingPL)
	fmt.Printf("  Equity: %.2f\n", sess.Equity)
	fmt.Printf("  Used Margin: %.2f (%.2f%%) [%s]\n", sess.UsedMargin, sess.MarginPercent, sess.Tier)
	if sess.MarginCallPrice > 0 {
		fmt.Printf("  Margin Call: %.2f\n", sess.MarginCallPrice)
	}
	return nil
}
