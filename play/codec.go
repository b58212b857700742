package play

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a play file.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// File is the persisted shape of a play.
type File struct {
	PlayName    string  `json:"playName" yaml:"playName"`
	CourtType   Court   `json:"courtType" yaml:"courtType"`
	Frames      []Frame `json:"frames" yaml:"frames"`
	NextFrameID int     `json:"nextFrameId" yaml:"nextFrameId"`
}

// document mirrors File with pointer fields so missing keys can be detected.
type document struct {
	PlayName    *string  `json:"playName" yaml:"playName"`
	CourtType   *string  `json:"courtType" yaml:"courtType"`
	Frames      *[]Frame `json:"frames" yaml:"frames"`
	NextFrameID *int     `json:"nextFrameId" yaml:"nextFrameId"`
}

// ToFile converts a play to its persisted shape.
func (p *Play) ToFile() File {
	c := p.Clone()
	return File{
		PlayName:    c.Name,
		CourtType:   c.Court,
		Frames:      c.Frames,
		NextFrameID: c.NextFrameID,
	}
}

// Encode writes the play in the given format.
func Encode(w io.Writer, p *Play, format Format) error {
	f := p.ToFile()
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// Decode reads a play. Any failure is reported as ErrLoad wrapping the cause.
func Decode(r io.Reader, format Format) (*Play, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var doc document
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	p, err := doc.toPlay()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return p, nil
}

// toPlay checks the required fields and builds the play. Frame contents are
// trusted as-is.
func (d document) toPlay() (*Play, error) {
	if d.PlayName == nil {
		return nil, fmt.Errorf("missing playName")
	}
	if d.CourtType == nil {
		return nil, fmt.Errorf("missing courtType")
	}
	court, err := ParseCourt(*d.CourtType)
	if err != nil {
		return nil, err
	}
	if d.Frames == nil || len(*d.Frames) == 0 {
		return nil, fmt.Errorf("missing frames")
	}

	p := &Play{
		Name:   DefaultName,
		Court:  court,
		Frames: *d.Frames,
	}
	if *d.PlayName != "" {
		p.Name = *d.PlayName
	}

	maxID := 0
	for i := range p.Frames {
		if p.Frames[i].ID > maxID {
			maxID = p.Frames[i].ID
		}
		for j := range p.Frames[i].Players {
			if p.Frames[i].Players[j].Radius <= 0 {
				p.Frames[i].Players[j].Radius = DefaultRadius
			}
		}
	}
	p.NextFrameID = maxID + 1
	if d.NextFrameID != nil && *d.NextFrameID > maxID {
		p.NextFrameID = *d.NextFrameID
	}
	return p, nil
}

// LoadFile reads a play file, choosing the format by extension.
func LoadFile(path string) (*Play, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()
	return Decode(f, FormatFromPath(path))
}

// SaveFile writes a play file, choosing the format by extension.
func SaveFile(path string, p *Play) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p, FormatFromPath(path)); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write play file: %w", err)
	}
	return nil
}
