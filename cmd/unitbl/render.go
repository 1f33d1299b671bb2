package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/unitbl/internal/config"
	"github.com/dkoosis/unitbl/internal/detect"
	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
	"github.com/dkoosis/unitbl/pkg/tabledoc"
)

var errNoInput = errors.New("no input")

func (a *app) renderCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table document or CSV file",
		Long: `Render reads a YAML or JSON table document, or CSV, from the named
file or from stdin, and writes the table to stdout. A style given with
--style wins over the document's own style.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, s, err := a.loadTable(args, title)
			if err != nil {
				return err
			}
			_, err = t.Stroke(a.stdout, s)
			return err
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "table title, replacing the document's")
	return cmd
}

// loadTable reads the input named by args and builds its table and style.
func (a *app) loadTable(args []string, title string) (*table.Table, style.Style, error) {
	data, err := a.readInput(args)
	if err != nil {
		return nil, 0, err
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil, 0, err
	}
	if title != "" {
		doc.Title = title
	}

	t, err := doc.Build(tabledoc.Defaults{
		InteriorVertical:   a.resolved.InteriorVertical,
		InteriorHorizontal: a.resolved.InteriorHorizontal,
		HeaderLine:         a.resolved.HeaderLine,
	}, table.WithConfig(a.cfg))
	if err != nil {
		return nil, 0, fmt.Errorf("building table: %w", err)
	}
	s, err := a.documentStyle(doc)
	if err != nil {
		return nil, 0, err
	}
	rows, cols := doc.Dimensions()
	a.logger.Debugf("rendering %d x %d table in %s", rows, cols, s)
	return t, s, nil
}

func (a *app) readInput(args []string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errNoInput
	}
	return data, nil
}

func parseDocument(data []byte) (*tabledoc.Document, error) {
	switch format := detect.Sniff(data); format {
	case detect.Document:
		return tabledoc.Parse(data)
	case detect.CSV:
		return tabledoc.ReadCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unrecognized input format %s (expected a table document or CSV)", format)
	}
}

// documentStyle applies --style > document style > env, file and default.
func (a *app) documentStyle(doc *tabledoc.Document) (style.Style, error) {
	if a.resolved.StyleSource == "cli" || doc.Style == "" {
		return a.resolved.Style, nil
	}
	s, err := config.ResolveStyle(doc.Style, isTTYWriter(a.stdout))
	if err != nil {
		return 0, fmt.Errorf("document style: %w", err)
	}
	return s, nil
}
