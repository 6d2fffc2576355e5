package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SamratSK/better-bites/client"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "betterctl",
		Short: "CLI client for the tracker service REST API",
	}
)

func newClient() *client.Client {
	return client.New(apiFlag, tokenFlag)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Tracker service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Bearer token (required)")
	_ = rootCmd.MarkPersistentFlagRequired("token")

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Show user counts and registered users (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := newClient().Admin().Overview(cmd.Context(), true)
			if !ok {
				return fmt.Errorf("overview unavailable")
			}
			return printJSON(os.Stdout, out)
		},
	}
	rootCmd.AddCommand(overviewCmd)

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := newClient().Admin().Overview(cmd.Context(), true)
			if !ok {
				return fmt.Errorf("overview unavailable")
			}
			for _, u := range out.Users {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", u.UserID, u.Role, u.DisplayName)
			}
			return nil
		},
	}
	rootCmd.AddCommand(usersCmd)

	flaggedCmd := &cobra.Command{
		Use:   "flagged",
		Short: "List recently flagged items (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := newClient().Admin().Flagged(cmd.Context(), true)
			return printJSON(os.Stdout, items)
		},
	}
	rootCmd.AddCommand(flaggedCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Build a user's progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			admin, _ := cmd.Flags().GetBool("admin")
			c := newClient()
			var (
				out client.Report
				err error
			)
			if admin {
				out, err = c.AdminReport(cmd.Context(), user)
			} else {
				out, err = c.Report(cmd.Context(), user)
			}
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, out)
		},
	}
	reportCmd.Flags().StringP("user", "u", "", "User ID (required)")
	reportCmd.Flags().Bool("admin", false, "Use the admin endpoint to read another user's report")
	_ = reportCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(reportCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a user's daily summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = time.Now().UTC().Format(time.DateOnly)
			}
			out, err := newClient().Summary(cmd.Context(), user, date)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, out)
		},
	}
	summaryCmd.Flags().StringP("user", "u", "", "User ID (required)")
	summaryCmd.Flags().StringP("date", "d", "", "Date as YYYY-MM-DD (defaults to today UTC)")
	_ = summaryCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(summaryCmd)

	deleteUserCmd := &cobra.Command{
		Use:   "delete-user",
		Short: "Delete a member account and all of its data (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			if err := newClient().AdminDeleteUser(cmd.Context(), user); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "deleted %s\n", user)
			return nil
		},
	}
	deleteUserCmd.Flags().StringP("user", "u", "", "User ID (required)")
	_ = deleteUserCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(deleteUserCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
