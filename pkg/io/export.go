package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/chartopt/pkg/chart"
)

// WriteDocument writes the option document of snap to w, followed by a
// newline. indent selects two-space indentation over the compact form.
func WriteDocument(w io.Writer, snap *chart.Snapshot, indent bool) error {
	doc := snap.Serialize()
	if indent {
		doc = snap.SerializeIndent("", "  ")
	}
	if _, err := w.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ExportDocument writes the option document of snap to a file at path.
// This is a convenience wrapper around [WriteDocument] for file-based output.
func ExportDocument(snap *chart.Snapshot, path string, indent bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteDocument(f, snap, indent); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
