package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/propedit/pkg/diff"
	"github.com/macropower/propedit/pkg/fsutil"
	"github.com/macropower/propedit/pkg/patch"
	"github.com/macropower/propedit/pkg/properrors"
	"github.com/macropower/propedit/pkg/request"
	"github.com/macropower/propedit/pkg/syncs"
)

// Validator checks a request before any file is touched.
type Validator interface {
	Validate(props []request.Property) error
}

// Snapshotter copies a file before it is rewritten and returns the
// location of the copy.
type Snapshotter interface {
	Snapshot(path string) (string, error)
}

// Reporter is told about every completed edit.
type Reporter interface {
	Report(result *Result) error
}

// ValidatorFunc adapts a function to [Validator].
type ValidatorFunc func(props []request.Property) error

func (f ValidatorFunc) Validate(props []request.Property) error {
	return f(props)
}

// Result describes one edited file.
type Result struct {
	Path     string   `json:"path"`
	Backup   string   `json:"backup,omitempty"`
	Diff     string   `json:"diff,omitempty"`
	Updated  []string `json:"updated,omitempty"`
	Deleted  []string `json:"deleted,omitempty"`
	Appended []string `json:"appended,omitempty"`
	Changed  bool     `json:"changed"`
	DryRun   bool     `json:"dry_run,omitempty"`
}

// Editor applies requests to files. Create instances with [New].
type Editor struct {
	validator   Validator
	snapshotter Snapshotter
	reporter    Reporter
	locker      syncs.Locker
	logger      *slog.Logger
	patchOpts   []patch.Option
	concurrency int
	dryRun      bool
	diff        bool
}

// Option configures an [Editor].
type Option func(*Editor)

// WithValidator replaces the default [request.Validate]. Requests that
// pass it are applied as given.
func WithValidator(v Validator) Option {
	return func(e *Editor) {
		e.validator = v
	}
}

// WithSnapshotter enables snapshots before writing.
func WithSnapshotter(s Snapshotter) Option {
	return func(e *Editor) {
		e.snapshotter = s
	}
}

// WithReporter sets the [Reporter].
func WithReporter(r Reporter) Option {
	return func(e *Editor) {
		e.reporter = r
	}
}

// WithLocker replaces the per-path lock.
func WithLocker(l syncs.Locker) Option {
	return func(e *Editor) {
		e.locker = l
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// WithPatchOptions passes options to [patch.Apply].
func WithPatchOptions(opts ...patch.Option) Option {
	return func(e *Editor) {
		e.patchOpts = append(e.patchOpts, opts...)
	}
}

// WithDryRun computes results without writing or snapshotting.
func WithDryRun(dryRun bool) Option {
	return func(e *Editor) {
		e.dryRun = dryRun
	}
}

// WithDiff includes a unified diff in every [Result].
func WithDiff(d bool) Option {
	return func(e *Editor) {
		e.diff = d
	}
}

// WithConcurrency bounds how many files [Editor.EditAll] edits at once.
// Values below one mean no limit.
func WithConcurrency(n int) Option {
	return func(e *Editor) {
		e.concurrency = n
	}
}

// New creates an [Editor].
func New(opts ...Option) *Editor {
	e := &Editor{
		validator: ValidatorFunc(request.Validate),
		locker:    syncs.NewPathLock(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Edit applies props to the file at path.
func (e *Editor) Edit(ctx context.Context, path string, props []request.Property) (*Result, error) {
	if err := e.validator.Validate(props); err != nil {
		return nil, err //nolint:wrapcheck // Validation errors are reported as is.
	}

	req, err := request.Convert(props)
	if err != nil {
		return nil, fmt.Errorf("convert request: %w", err)
	}

	res, err := e.apply(ctx, path, req)
	if err != nil {
		return nil, err
	}

	if err := e.report(res); err != nil {
		return nil, err
	}

	return res, nil
}

// EditAll applies props to every path, at most [WithConcurrency] files at
// a time. Results are returned and reported in the order of paths.
//
// Every path must exist before any file is edited. After that, the first
// error cancels the remaining edits; edits that already completed are
// still reported and returned, with nil entries for the others.
func (e *Editor) EditAll(ctx context.Context, paths []string, props []request.Property) ([]*Result, error) {
	if err := e.validator.Validate(props); err != nil {
		return nil, err //nolint:wrapcheck // Validation errors are reported as is.
	}

	req, err := request.Convert(props)
	if err != nil {
		return nil, fmt.Errorf("convert request: %w", err)
	}

	if err := checkExist(paths); err != nil {
		return nil, err
	}

	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			res, err := e.apply(ctx, path, req)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	editErr := g.Wait()

	for _, res := range results {
		if res == nil {
			continue
		}

		if err := e.report(res); err != nil {
			return results, multierror.Append(err, editErr).ErrorOrNil()
		}
	}

	if editErr != nil {
		return results, fmt.Errorf("edit files: %w", editErr)
	}

	return results, nil
}

func checkExist(paths []string) error {
	var merr *multierror.Error

	for _, path := range paths {
		if !fsutil.FileExists(path) {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", properrors.ErrFileNotFound, path))
		}
	}

	return merr.ErrorOrNil()
}

func (e *Editor) apply(ctx context.Context, path string, req patch.Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	logger := e.logger.With(slog.String("path", path))

	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %q", properrors.ErrFileNotFound, path)
	}

	e.locker.Lock(path)
	defer e.locker.Unlock(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", properrors.ErrReadFile, path, err)
	}

	before := string(data)
	out := patch.Apply(before, req, e.patchOpts...)

	res := &Result{
		Path:     path,
		Changed:  out.Changed,
		DryRun:   e.dryRun,
		Updated:  out.Updated,
		Deleted:  out.Deleted,
		Appended: out.Appended,
	}

	if e.diff {
		res.Diff = diff.Unified(path, before, out.Content)
	}

	logger.Debug("patched",
		slog.Bool("changed", out.Changed),
		slog.Int("updated", len(out.Updated)),
		slog.Int("deleted", len(out.Deleted)),
		slog.Int("appended", len(out.Appended)),
	)

	if out.Changed && !e.dryRun {
		if e.snapshotter != nil {
			res.Backup, err = e.snapshotter.Snapshot(path)
			if err != nil {
				return nil, fmt.Errorf("snapshot %q: %w", path, err)
			}

			logger.Info("created backup", slog.String("backup", res.Backup))
		}

		if err := fsutil.WriteFileAtomic(path, []byte(out.Content), 0o644); err != nil {
			return nil, err //nolint:wrapcheck // Already names the file.
		}

		logger.Info("updated properties")
	}

	return res, nil
}

func (e *Editor) report(res *Result) error {
	if e.reporter == nil {
		return nil
	}

	if err := e.reporter.Report(res); err != nil {
		return fmt.Errorf("report %q: %w", res.Path, err)
	}

	return nil
}
