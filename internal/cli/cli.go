package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/orgmeta/internal/app"
	"github.com/specialistvlad/orgmeta/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Execute runs the orgmeta command line with args. Usage problems are
// returned as *ExitError with code 2; any other failure means exit code 1.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return usageError(err)
	}

	cmd := newRootCmd(stdout, stderr, cfg)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgmeta",
		Short: "Load organization metadata records and derive their relationship graph",
		Long: `orgmeta reads contributor and team records (TOML or HCL, one record per
file, file name = record name) and either emits the membership graph as JSON
or checks the records against the schema key order and team membership.

Every flag can also be set through an ORGMETA_* environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return usageError(err)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ContributorsPattern, "contributors", cfg.ContributorsPattern, "Glob pattern selecting contributor record files.")
	flags.StringVar(&cfg.TeamsPattern, "teams", cfg.TeamsPattern, "Glob pattern selecting team record files.")
	flags.BoolVar(&cfg.StrictDuplicates, "strict", cfg.StrictDuplicates, "Fail when two files resolve to the same record name.")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")

	cmd.AddCommand(graphCmd(stdout, stderr, cfg), validateCmd(stdout, stderr, cfg))
	return cmd
}

func graphCmd(stdout, stderr io.Writer, cfg *config.Config) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "graph",
		Short: "Write the contributor/team membership graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orgApp := app.NewApp(stdout, stderr, cfg)
			if out == "" || out == "-" {
				return orgApp.Graph(cmd.Context(), nil)
			}

			// Render fully before touching out, so a failed run leaves an
			// existing file as it was.
			var buf bytes.Buffer
			if err := orgApp.Graph(cmd.Context(), &buf); err != nil {
				return err
			}
			return writeFileAtomic(out, buf.Bytes())
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Write the document to this file instead of stdout.")
	return c
}

func validateCmd(stdout, stderr io.Writer, cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Check record key order against the schemas and team members against contributors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.NewApp(stdout, stderr, cfg).Validate(cmd.Context())
			if errors.Is(err, app.ErrViolations) {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			return err
		},
	}

	c.Flags().StringVar(&cfg.ContributorSchema, "contributor-schema", cfg.ContributorSchema, "Schema declaring the canonical contributor key order.")
	c.Flags().StringVar(&cfg.TeamSchema, "team-schema", cfg.TeamSchema, "Schema declaring the canonical team key order.")
	return c
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}
