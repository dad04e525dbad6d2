package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/athread/lichen/notes"
)

const bundleFileName = "lichen-notes.txt"

func newExportCmd(a *app) *cobra.Command {
	var (
		all    bool
		asHTML bool
		dir    string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export one note, or all notes as a bundle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass a note id or --all")
			}
			if all && asHTML {
				return fmt.Errorf("--html exports a single note")
			}
			return a.withStore(func(st *notes.Store) error {
				ctx := cmd.Context()
				var (
					name string
					data bytes.Buffer
				)
				switch {
				case all:
					list, err := st.List(ctx, notes.SortOldest)
					if err != nil {
						return err
					}
					if err := notes.WriteBundle(&data, list); err != nil {
						return err
					}
					name = bundleFileName
				default:
					n, err := st.Find(ctx, args[0])
					if err != nil {
						return err
					}
					fileName, body, err := st.ExportNote(ctx, n.ID)
					if err != nil {
						return err
					}
					name = fileName
					if asHTML {
						if err := notes.WriteHTML(&data, body); err != nil {
							return err
						}
						name = strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".html"
					} else {
						data.WriteString(body)
					}
				}

				if stdout {
					_, err := cmd.OutOrStdout().Write(data.Bytes())
					return err
				}
				path := filepath.Join(dir, name)
				if err := os.WriteFile(path, data.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				a.log.Debug("exported", "path", path, "bytes", data.Len())
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "export every note as one bundle")
	cmd.Flags().BoolVar(&asHTML, "html", false, "render the note as HTML")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write into")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to stdout instead of a file")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import text files or an export bundle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st *notes.Store) error {
				ctx := cmd.Context()
				for _, path := range args {
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("read %s: %w", path, err)
					}
					if !notes.IsBundle(data) {
						n, err := st.ImportText(ctx, path, string(data))
						if err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "imported %q\n", n.DisplayTitle())
						continue
					}

					list, err := notes.ReadBundle(bytes.NewReader(data))
					if err != nil {
						return fmt.Errorf("read bundle %s: %w", path, err)
					}
					for i := range list {
						if err := st.Save(ctx, &list[i]); err != nil {
							return err
						}
					}
					fmt.Fprintf(cmd.OutOrStdout(), "imported %d notes from %s\n", len(list), path)
				}
				return nil
			})
		},
	}
}
