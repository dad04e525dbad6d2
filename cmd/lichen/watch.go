package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/athread/lichen/markup"
	"github.com/athread/lichen/view"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a text file and re-render it whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := termenv.NewOutput(cmd.OutOrStdout())
			r := a.renderer(markup.NewCache(markup.DefaultCacheEntries))
			return a.watch(ctx, args[0], func() {
				out.ClearScreen()
				if err := renderFile(out, r, args[0]); err != nil {
					a.log.Warn("render", "path", args[0], "err", err)
				}
			})
		},
	}
}

func renderFile(w io.Writer, r *view.Renderer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, r.Render(string(data)))
	return err
}

// watch calls render once, then again after the file settles from each
// change, until ctx is done. The parent directory is watched so editors
// that replace the file on save are still seen.
func (a *app) watch(ctx context.Context, path string, render func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	render()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.log.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watcher", "err", err)
		case <-timer.C:
			render()
		}
	}
}
