package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/langfuse"
	"github.com/blaisecz/cogni-tracker/internal/render"
	"github.com/spf13/cobra"
)

func newSeedCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo users with 40 days of check-ins and sessions",
		Long: `Create four demo users in different timezones and fill their history.
Record IDs are stable per user and day, so running seed again is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, open, func(env *Env) error {
				res, err := env.Seed(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users: %d check-ins, %d sessions appended\n",
					res.Users, res.EMAs, res.Sessions)
				return nil
			})
		},
	}
}

func newReportCmd(open Opener, global *globalFlags) *cobra.Command {
	var (
		user      string
		period    int
		asJSON    bool
		narrative bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a 7, 14 or 30 day report for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			p := domain.ReportPeriod(period)
			if !p.Valid() {
				return fmt.Errorf("--period must be 7, 14 or 30, got %d", period)
			}
			return withEnv(cmd, open, func(env *Env) error {
				report, err := env.Analytics.Report(cmd.Context(), userID, p, narrative)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(report)
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Report(report, render.Options{Color: !global.noColor}))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	cmd.Flags().IntVar(&period, "period", 7, "Report period in days (7, 14 or 30)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&narrative, "narrative", false, "Attach an AI narrative")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newExportCmd(open Opener) *cobra.Command {
	var user, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's records as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			return withEnv(cmd, open, func(env *Env) error {
				doc, err := env.Export.Export(cmd.Context(), userID)
				if err != nil {
					return err
				}

				var w io.Writer = cmd.OutOrStdout()
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(doc); err != nil {
					return err
				}
				if out != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d check-ins and %d sessions to %s\n",
						len(doc.EMAs), len(doc.Sessions), out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newImportCmd(open Opener, global *globalFlags) *cobra.Command {
	var user, file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append records from an export document",
		Long: `Append every check-in and session from an export document whose ID is
not stored yet. A single malformed record rejects the whole document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			doc, err := domain.ParseDataExport(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
			return withEnv(cmd, open, func(env *Env) error {
				res, err := env.Export.Import(cmd.Context(), userID, doc)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						return fmt.Errorf("user %s does not exist", userID)
					}
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), render.ImportResult(res, render.Options{Color: !global.noColor}))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	cmd.Flags().StringVar(&file, "file", "", "Export document to import")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newLangfusePingCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "langfuse-ping",
		Short: "Send a test trace to Langfuse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, open, func(env *Env) error {
				if !env.Langfuse.IsEnabled() {
					return errors.New("langfuse client is disabled, check LANGFUSE_* settings")
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), langfuse.SendTimeout)
				defer cancel()

				traceID, err := env.Langfuse.CreateTrace(ctx, langfuse.TraceInput{
					UserID: "cogctl",
					Name:   "connectivity-check",
					Input:  map[string]any{"time": time.Now().UTC().Format(time.RFC3339)},
					Output: map[string]any{"status": "ok"},
					Tags:   []string{"cogctl"},
				})
				if err != nil {
					return fmt.Errorf("create trace: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Trace %s sent to %s\n", traceID, env.Config.LangfuseBaseURL)
				return nil
			})
		},
	}
}
