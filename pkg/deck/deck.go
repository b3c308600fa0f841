// Package deck extracts structured content from pptx presentation
// files: slide text with indent levels, tables, pictures, speaker
// notes, and layout names. It reads the OOXML parts directly from the
// package zip.
package deck

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotPresentation indicates the input file is not a readable pptx
// package.
var ErrNotPresentation = errors.New("not a pptx presentation")

// Extract opens a pptx file and returns its structured content.
func Extract(p string) (*Deck, error) {
	r, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	defer r.Close()

	return extractReader(&r.Reader, filepath.Base(p))
}

func extractReader(r *zip.Reader, name string) (*Deck, error) {
	slidePaths, err := slideFiles(r)
	if err != nil {
		return nil, err
	}

	d := &Deck{SourceFile: name}
	for i, slidePath := range slidePaths {
		slide, err := parseSlide(r, slidePath, i+1)
		if err != nil {
			continue
		}
		d.Slides = append(d.Slides, slide)
	}
	d.SlideCount = len(d.Slides)
	return d, nil
}

// slideFiles returns the slide part paths in presentation order, by
// joining the sldIdLst relationship ids against the presentation rels.
func slideFiles(r *zip.Reader) ([]string, error) {
	presXML, err := readZipFile(r, "ppt/presentation.xml")
	if err != nil || presXML == nil {
		return nil, fmt.Errorf("%w: missing ppt/presentation.xml", ErrNotPresentation)
	}

	relIDs := parseSlideIDList(presXML)

	relsXML, err := readZipFile(r, "ppt/_rels/presentation.xml.rels")
	if err != nil || relsXML == nil {
		return nil, fmt.Errorf("%w: missing presentation rels", ErrNotPresentation)
	}

	targets := parseRelationships(relsXML)

	var result []string
	for _, rID := range relIDs {
		if target, ok := targets[rID]; ok {
			result = append(result, resolveTarget(target.target, "ppt"))
		}
	}
	return result, nil
}

// readZipFile returns the contents of the named archive entry, or nil
// when the entry does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveTarget resolves a relationship target against the directory
// of the part that declared it.
func resolveTarget(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
