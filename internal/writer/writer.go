package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hogwarts-cloud/sandboxctl/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	Stdout     = "-"
	JSONIndent = "    "
	YAMLIndent = 4
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f *Format) UnmarshalText(text []byte) error {
	switch format := Format(strings.ToLower(string(text))); format {
	case FormatAuto, FormatJSON, FormatYAML:
		*f = format
	case "yml":
		*f = FormatYAML
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, text)
	}

	return nil
}

func (f Format) String() string {
	return string(f)
}

// FormatFromPath picks YAML for .yaml and .yml outputs and JSON for anything
// else, including the default sandbox.cfg.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func Marshal(cfg *models.Configuration, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", JSONIndent)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		buf := &bytes.Buffer{}

		encoder := yaml.NewEncoder(buf)
		encoder.SetIndent(YAMLIndent)

		if err := encoder.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to close yaml encoder: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func Write(path string, cfg *models.Configuration, format Format) error {
	if format == FormatAuto {
		format = FormatFromPath(path)
	}

	data, err := Marshal(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if path == Stdout {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
