// Package project reads and writes drawing files. A project file is a single
// JSON document holding the scene's primitives and the saved view transform,
// so reopening a drawing restores both the geometry and where the user was
// looking.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/draftcad/draftcad/pkg/render"
	"github.com/draftcad/draftcad/pkg/scene"
)

// FormatVersion is written into every saved file. Readers reject files with
// a newer version than they understand.
const FormatVersion = 1

// Document is the in-memory form of a project file.
type Document struct {
	Objects []scene.Primitive
	View    render.ViewState
}

type fileRecord struct {
	Version int               `json:"version"`
	Objects json.RawMessage   `json:"objects"`
	View    *render.ViewState `json:"view_state,omitempty"`
}

// Save writes the document as indented JSON.
func Save(w io.Writer, doc Document) error {
	objs, err := scene.MarshalPrimitives(doc.Objects)
	if err != nil {
		return fmt.Errorf("project: %w", err)
	}
	view := doc.View
	data, err := json.MarshalIndent(fileRecord{
		Version: FormatVersion,
		Objects: objs,
		View:    &view,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("project: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Load parses a project file. A missing view_state falls back to the
// identity view; range checks on the loaded values happen later, when the
// view is applied to a camera.
func Load(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("project: %w", err)
	}
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Document{}, fmt.Errorf("project: %w", err)
	}
	if rec.Version > FormatVersion {
		return Document{}, fmt.Errorf("project: unsupported format version %d", rec.Version)
	}

	doc := Document{View: render.IdentityView}
	if rec.View != nil {
		doc.View = *rec.View
	}
	if len(rec.Objects) > 0 {
		doc.Objects, err = scene.UnmarshalPrimitives(rec.Objects)
		if err != nil {
			return Document{}, fmt.Errorf("project: %w", err)
		}
	}
	return doc, nil
}

// SaveFile writes the document to path, creating or truncating it.
func SaveFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a project file from path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Load(f)
}
