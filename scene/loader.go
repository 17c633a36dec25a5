package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultScenePath is checked when no scene path is given
const DefaultScenePath = "config/scene.toml"

// ErrInvalidScene reports a document that cannot be built
var ErrInvalidScene = errors.New("invalid scene")

// Format selects the document encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: unsupported scene extension %q", ErrInvalidScene, filepath.Ext(path))
}

// Decode parses a document; unknown keys are rejected
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML scene: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidScene, undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %v", ErrInvalidScene, format)
	}
	return &doc, nil
}

// DecodeBytes is Decode over an in-memory document
func DecodeBytes(data []byte, format Format) (*Document, error) {
	return Decode(bytes.NewReader(data), format)
}

// Load reads and decodes a scene file, format chosen by extension
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene from %s: %w", path, err)
	}
	return doc, nil
}

// LoadAuto loads a scene with priority: customPath > DefaultScenePath > embedded TOML
func LoadAuto(customPath, embeddedFallback string) (*Document, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultScenePath) {
		return Load(DefaultScenePath)
	}
	return DecodeBytes([]byte(embeddedFallback), FormatTOML)
}

// Encode writes a document in the given format
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unknown format %v", ErrInvalidScene, format)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
