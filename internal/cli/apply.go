package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/propedit/pkg/backup"
	"github.com/macropower/propedit/pkg/editor"
	"github.com/macropower/propedit/pkg/patch"
	"github.com/macropower/propedit/pkg/report"
	"github.com/macropower/propedit/pkg/request"
)

const (
	applyDesc = `Apply property updates and deletions to one or more properties files.

Existing keys are updated in place. Deleted keys are commented out with a
note recording when they were removed. Keys that do not exist yet are
appended at the end of the file in a marked block. All other lines are
left untouched.
`
	applyExample = `  # Update one key and delete another
  propedit apply app.properties --set user.name=jeff --delete user.password

  # Apply a request document to several files, keeping backups
  propedit apply -r request.yaml --backup conf/*.properties

  # Preview the changes without writing
  propedit apply -r request.hcl --dry_run --diff app.properties
`
)

var ErrApplyFailed = errors.New("apply failed")

// NewApplyCmd returns the apply command.
func NewApplyCmd() *cobra.Command {
	args := NewApplyArgs()

	cmd := &cobra.Command{
		Use:          "apply FILE...",
		Short:        "Update and delete properties in files",
		Long:         applyDesc,
		Example:      applyExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			props, err := args.Properties()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			reporter, err := report.New(args.GetOutput(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			opts := []editor.Option{
				editor.WithReporter(reporter),
				editor.WithDryRun(args.GetDryRun()),
				editor.WithDiff(args.GetDiff()),
				editor.WithConcurrency(args.GetConcurrency()),
				editor.WithPatchOptions(patch.WithTool(args.GetTool())),
			}

			if args.GetBackup() && !args.GetDryRun() {
				opts = append(opts, editor.WithSnapshotter(
					backup.NewSnapshotter(args.GetTool(), backup.WithCompression(args.GetBackupCompress())),
				))
			}

			slog.Debug("applying properties",
				slog.Int("files", len(files)),
				slog.Int("properties", len(props)),
				slog.Bool("dry_run", args.GetDryRun()),
			)

			_, err = editor.New(opts...).EditAll(cmd.Context(), files, props)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrApplyFailed, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(args.request, "request", "r", "", "Request document (yaml, json, toml or hcl)")
	must(cmd.MarkFlagFilename("request", "yaml", "yml", "json", "toml", "hcl"))

	cmd.Flags().StringArrayVarP(args.sets, "set", "s", nil, "Set a property, as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(args.deletes, "delete", "d", nil, "Delete a property by key (repeatable)")
	cmd.Flags().BoolVarP(args.backup, "backup", "b", false, "Snapshot each file before it is modified")
	cmd.Flags().BoolVar(args.backupCompress, "backup_compress", false, "Gzip backups")
	cmd.Flags().BoolVarP(args.dryRun, "dry_run", "n", false, "Report changes without writing")
	cmd.Flags().BoolVar(args.diff, "diff", false, "Include a diff of every change")
	cmd.Flags().StringVarP(args.output, "output", "o", report.FormatText, "Output format (text, json, yaml)")
	cmd.Flags().IntVar(args.concurrency, "concurrency", 4, "Maximum number of files edited at once")
	cmd.Flags().StringVar(args.tool, "tool", patch.DefaultTool, "Name recorded in comments and backup names")

	return cmd
}

// ApplyArgs holds the arguments for the apply command.
type ApplyArgs struct {
	request        *string
	output         *string
	tool           *string
	sets           *[]string
	deletes        *[]string
	concurrency    *int
	backup         *bool
	backupCompress *bool
	dryRun         *bool
	diff           *bool
}

// NewApplyArgs creates a new [ApplyArgs].
func NewApplyArgs() *ApplyArgs {
	return &ApplyArgs{
		request:        new(string),
		output:         new(string),
		tool:           new(string),
		sets:           new([]string),
		deletes:        new([]string),
		concurrency:    new(int),
		backup:         new(bool),
		backupCompress: new(bool),
		dryRun:         new(bool),
		diff:           new(bool),
	}
}

// Properties reads the request document, if any, followed by the --set
// and --delete flags.
func (a *ApplyArgs) Properties() ([]request.Property, error) {
	var props []request.Property

	if a.GetRequest() != "" {
		p, err := request.ReadFile(a.GetRequest())
		if err != nil {
			return nil, fmt.Errorf("read request: %w", err)
		}

		props = append(props, p...)
	}

	p, err := request.FromFlags(a.GetSets(), a.GetDeletes())
	if err != nil {
		return nil, err //nolint:wrapcheck // Already describes the flag.
	}

	return append(props, p...), nil
}

func (a *ApplyArgs) GetRequest() string {
	return *a.request
}

func (a *ApplyArgs) GetOutput() string {
	return *a.output
}

func (a *ApplyArgs) GetTool() string {
	return *a.tool
}

func (a *ApplyArgs) GetSets() []string {
	return *a.sets
}

func (a *ApplyArgs) GetDeletes() []string {
	return *a.deletes
}

func (a *ApplyArgs) GetConcurrency() int {
	return *a.concurrency
}

func (a *ApplyArgs) GetBackup() bool {
	return *a.backup
}

func (a *ApplyArgs) GetBackupCompress() bool {
	return *a.backupCompress
}

func (a *ApplyArgs) GetDryRun() bool {
	return *a.dryRun
}

func (a *ApplyArgs) GetDiff() bool {
	return *a.diff
}
