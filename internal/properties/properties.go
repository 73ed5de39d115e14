package properties

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"unicode"

	"gopkg.in/ini.v1"
)

const DefaultSection = "DEFAULT"

var (
	ErrMissingSection       = errors.New("no such section")
	ErrMissingKey           = errors.New("no such option")
	ErrMissingSectionHeader = errors.New("file contains no section headers")
)

// Properties is a parsed setup file. Keys missing from a section are looked
// up in [DEFAULT]. Key names are case-insensitive and reported lowercased.
type Properties struct {
	file *ini.File
}

// Inline comments are handled by stripInlineComment: only "; ..." after
// whitespace starts one, "#" is part of the value.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	AllowPythonMultilineValues: true,
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
}

func Load(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}

	props, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties file %q: %w", path, err)
	}

	return props, nil
}

func Parse(data []byte) (*Properties, error) {
	if err := checkSectionHeader(data); err != nil {
		return nil, err
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties: %w", err)
	}

	for _, sec := range file.Sections() {
		for _, key := range sec.Keys() {
			key.SetValue(stripInlineComment(key.Value()))
		}
	}

	return &Properties{file: file}, nil
}

func (p *Properties) Get(section, key string) (string, error) {
	sec, err := p.section(section)
	if err != nil {
		return "", err
	}

	if sec.HasKey(key) {
		return sec.Key(key).String(), nil
	}

	if defaults := p.file.Section(DefaultSection); defaults.HasKey(key) {
		return defaults.Key(key).String(), nil
	}

	return "", fmt.Errorf("%w %q in section %q", ErrMissingKey, key, section)
}

// Items returns every key visible in the section, [DEFAULT] keys first.
// Keys defined in both places are yielded once with the section's value.
func (p *Properties) Items(section string) (iter.Seq2[string, string], error) {
	sec, err := p.section(section)
	if err != nil {
		return nil, err
	}

	keys := make([]*ini.Key, 0, len(sec.Keys()))
	if section != DefaultSection {
		for _, key := range p.file.Section(DefaultSection).Keys() {
			if !sec.HasKey(key.Name()) {
				keys = append(keys, key)
			}
		}
	}
	keys = append(keys, sec.Keys()...)

	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if !yield(key.Name(), key.String()) {
				return
			}
		}
	}, nil
}

func (p *Properties) section(name string) (*ini.Section, error) {
	sec, err := p.file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingSection, name)
	}

	return sec, nil
}

// checkSectionHeader rejects files whose first entry is not a section header,
// otherwise such keys would silently end up in [DEFAULT].
func checkSectionHeader(data []byte) error {
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] != '[' {
			return fmt.Errorf("%w: %q", ErrMissingSectionHeader, line)
		}

		return nil
	}

	return nil
}

// stripInlineComment drops a "; comment" from the first line of a value when
// the semicolon follows whitespace.
func stripInlineComment(value string) string {
	first, rest, multiline := strings.Cut(value, "\n")

	if i := strings.IndexByte(first, ';'); i > 0 && unicode.IsSpace(rune(first[i-1])) {
		first = strings.TrimSpace(first[:i])
	}

	if multiline {
		return first + "\n" + rest
	}

	return first
}
