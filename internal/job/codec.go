package job

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is a serialization format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat maps a name or file extension ("yml", ".json", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Load reads and decodes the job file at path; the extension picks the format.
func Load(path string) (*File, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}

	return Decode(data, format)
}

// Decode parses data as a job file and validates every task.
func Decode(data []byte, format Format) (*File, error) {
	var (
		f   File
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSON:
		err = sonic.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("job: decode %s: %w", format, err)
	}

	for _, t := range f.Derivatives {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Integrals {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	return &f, nil
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *Report, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = sonic.MarshalIndent(r, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(r)
	case FormatTOML:
		data, err = toml.Marshal(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("job: encode %s: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}
