package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gib2sgf/internal/files"
	"gib2sgf/internal/usecase/convert"
)

type converterFunc func(ctx context.Context, gibText string) (string, error)

func localConverter(_ context.Context, gibText string) (string, error) {
	return convert.GibToSgf(gibText)
}

// runner converts every GIB file below a directory that has no SGF file next
// to it yet. In check mode nothing is written; existing SGF files are
// compared with a fresh conversion instead.
type runner struct {
	log     *zap.SugaredLogger
	convert converterFunc
	workers int
	check   bool

	outMu sync.Mutex
	out   io.Writer
}

type runStats struct {
	converted int64
	differ    int64
	failed    int64
}

func (r *runner) printf(format string, args ...any) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *runner) run(ctx context.Context, dir string) (runStats, error) {
	gibPaths, err := files.CollectFiles(dir)
	if err != nil {
		return runStats{}, err
	}

	var (
		converted, differ, failed atomic.Int64
		claimed                   sync.Map
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, gibPath := range gibPaths {
		gibPath := gibPath
		sgfPath := files.SgfPath(gibPath)
		// several junk names can normalise to the same output; the first wins
		if _, taken := claimed.LoadOrStore(sgfPath, gibPath); taken {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				done bool
				err  error
			)
			if r.check {
				done, err = r.checkFile(ctx, gibPath, sgfPath)
				if done {
					differ.Add(1)
				}
			} else {
				done, err = r.convertFile(ctx, gibPath, sgfPath)
				if done {
					converted.Add(1)
				}
			}
			if err != nil {
				failed.Add(1)
				r.log.Errorw("conversion failed", "file", gibPath, "error", err)
			}
			return nil
		})
	}
	err = g.Wait()

	stats := runStats{converted: converted.Load(), differ: differ.Load(), failed: failed.Load()}
	if !r.check && stats.converted == 0 && err == nil {
		r.printf("no unconverted files\n")
	}
	return stats, err
}

// convertFile writes sgfPath unless it exists and gives it the modification
// time of gibPath.
func (r *runner) convertFile(ctx context.Context, gibPath, sgfPath string) (bool, error) {
	if _, err := os.Stat(sgfPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	r.printf("Convert %q -> %q\n", gibPath, sgfPath)
	sgfText, err := r.convertPath(ctx, gibPath)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(sgfPath, []byte(sgfText), 0o644); err != nil {
		return false, err
	}

	info, err := os.Stat(gibPath)
	if err != nil {
		return true, err
	}
	return true, os.Chtimes(sgfPath, time.Time{}, info.ModTime())
}

// checkFile reports whether the existing sgfPath differs from a fresh
// conversion, ignoring the converter version.
func (r *runner) checkFile(ctx context.Context, gibPath, sgfPath string) (bool, error) {
	sgfText, err := r.convertPath(ctx, gibPath)
	if err != nil {
		return false, err
	}
	existing, err := os.ReadFile(sgfPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	old := convert.RemoveAppVersion(string(existing))
	fresh := convert.RemoveAppVersion(sgfText)
	if old == fresh {
		return false, nil
	}
	r.printf("Results differ on %q\n   old: %s\n   new: %s\n", gibPath, old, fresh)
	return true, nil
}

func (r *runner) convertPath(ctx context.Context, gibPath string) (string, error) {
	data, err := os.ReadFile(gibPath)
	if err != nil {
		return "", err
	}
	return r.convert(ctx, string(data))
}
