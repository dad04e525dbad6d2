package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/athread/lichen/markup"
)

// blockDoc is the YAML shape of one parsed block.
type blockDoc struct {
	Kind      string          `yaml:"kind"`
	StartLine int             `yaml:"start"`
	EndLine   int             `yaml:"end"`
	Level     int             `yaml:"level,omitempty"`
	Text      string          `yaml:"text,omitempty"`
	Items     []string        `yaml:"items,omitempty"`
	Checklist []checklistItem `yaml:"checklist,omitempty"`
}

type checklistItem struct {
	Text    string `yaml:"text"`
	Checked bool   `yaml:"checked"`
	Line    int    `yaml:"line"`
}

func blockDocs(blocks []markup.Block) []blockDoc {
	docs := make([]blockDoc, 0, len(blocks))
	for _, b := range blocks {
		span := b.Lines()
		d := blockDoc{Kind: b.Kind().String(), StartLine: span.StartLine, EndLine: span.EndLine}
		switch b := b.(type) {
		case markup.TextBlock:
			d.Text = b.Text
		case markup.HeadingBlock:
			d.Level, d.Text = b.Level, b.Text
		case markup.BulletListBlock:
			d.Items = b.Items
		case markup.ChecklistBlock:
			for _, it := range b.Items {
				d.Checklist = append(d.Checklist, checklistItem{Text: it.Text, Checked: it.Checked, Line: it.LineIndex})
			}
		}
		docs = append(docs, d)
	}
	return docs
}

func writeBlocks(w io.Writer, text string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(blockDocs(markup.Parse(text))); err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	return enc.Close()
}

func newBlocksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [file]",
		Short: "Print the block structure of a text file (or stdin) as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			a.log.Debug("parsing", "path", path, "bytes", len(data))
			return writeBlocks(cmd.OutOrStdout(), string(data))
		},
	}
}
