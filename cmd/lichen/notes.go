package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/athread/lichen/markup"
	"github.com/athread/lichen/notes"
	"github.com/athread/lichen/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	shortIDSize = 8
)

func (a *app) renderer(cache *markup.Cache) *view.Renderer {
	return view.New(view.Options{
		Width: a.cfg.View.Width,
		Style: view.DefaultStyle(),
		Cache: cache,
	})
}

func newShowCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *notes.Store) error {
				n, err := st.Find(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if raw {
					fmt.Fprintln(out, n.Body)
					return nil
				}
				fmt.Fprintln(out, titleStyle.Render(n.DisplayTitle()))
				fmt.Fprintln(out)
				fmt.Fprintln(out, a.renderer(nil).Render(n.Body))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored markup instead of rendering it")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var sortFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sortFlag == "" {
				sortFlag = a.cfg.Sort
			}
			order, err := notes.ParseSort(sortFlag)
			if err != nil {
				return err
			}
			return a.withStore(func(st *notes.Store) error {
				list, err := st.List(cmd.Context(), order)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, n := range list {
					fmt.Fprintf(out, "%s  %s  %s\n",
						idStyle.Render(n.ID.String()[:shortIDSize]),
						n.UpdatedAt.Local().Format(time.DateTime),
						n.DisplayTitle())
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sortFlag, "sort", "", "newest, oldest, title, or title-desc (default from config)")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *notes.Store) error {
				n, err := st.Find(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := st.Delete(cmd.Context(), n.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", n.DisplayTitle())
				return nil
			})
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <id> <line>",
		Short: "Toggle the checklist item on a line (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return fmt.Errorf("invalid line %q", args[1])
			}
			return a.withStore(func(st *notes.Store) error {
				return toggleCheck(cmd.Context(), st, args[0], line-1)
			})
		},
	}
}

func toggleCheck(ctx context.Context, st *notes.Store, ref string, lineIndex int) error {
	n, err := st.Find(ctx, ref)
	if err != nil {
		return err
	}
	s := notes.NewSession(n)
	if !s.ToggleChecklistItem(lineIndex) {
		return fmt.Errorf("line %d of %q is not a checklist item", lineIndex+1, n.DisplayTitle())
	}
	_, err = s.Commit(ctx, st)
	return err
}
