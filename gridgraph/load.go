package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a map.
type Format int

const (
	// FormatText is one grid row per line using the default symbols.
	FormatText Format = iota
	// FormatYAML is a document with optional name and symbols plus rows.
	FormatYAML
)

// FormatFromPath picks FormatYAML for .yaml/.yml files and FormatText otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// mapDocument is the YAML shape of a map:
//
//	name: serpentine
//	symbols: {start: S, goal: E, obstacle: "#", path: "*"}
//	rows:
//	  - "S..#"
//	  - "...E"
type mapDocument struct {
	Name    string `yaml:"name"`
	Symbols struct {
		Start    string `yaml:"start"`
		Goal     string `yaml:"goal"`
		Obstacle string `yaml:"obstacle"`
		Path     string `yaml:"path"`
	} `yaml:"symbols"`
	Rows []string `yaml:"rows"`
}

func (d *mapDocument) symbols() (Symbols, error) {
	var s Symbols
	fields := []struct {
		name string
		raw  string
		dst  *rune
	}{
		{"start", d.Symbols.Start, &s.Start},
		{"goal", d.Symbols.Goal, &s.Goal},
		{"obstacle", d.Symbols.Obstacle, &s.Obstacle},
		{"path", d.Symbols.Path, &s.Path},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		if utf8.RuneCountInString(f.raw) != 1 {
			return Symbols{}, fmt.Errorf("gridgraph: symbol %s must be a single character, got %q", f.name, f.raw)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.raw)
	}
	return s, nil
}

// LoadMap reads a whole map from r in the given format and parses it.
func LoadMap(r io.Reader, format Format) (*Map, error) {
	switch format {
	case FormatText:
		lines, err := readLines(r)
		if err != nil {
			return nil, err
		}
		return Parse(lines, DefaultSymbols())

	case FormatYAML:
		var doc mapDocument
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if err == io.EOF {
				return nil, ErrEmptyGrid
			}
			return nil, fmt.Errorf("gridgraph: decode yaml map: %w", err)
		}
		sym, err := doc.symbols()
		if err != nil {
			return nil, err
		}
		m, err := Parse(doc.Rows, sym)
		if err != nil {
			return nil, err
		}
		m.Name = doc.Name
		return m, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// LoadMapFile opens path, infers the format from its extension and loads it.
// A map without an explicit name is named after the file.
func LoadMapFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := LoadMap(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = filepath.Base(path)
	}
	return m, nil
}

// readLines returns the input lines with trailing "\r" removed and
// trailing blank lines dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
