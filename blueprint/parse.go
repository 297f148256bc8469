package blueprint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ASCII layout glyphs
const (
	GlyphBlank    = '.'
	GlyphFull     = '#'
	GlyphEntrance = 'E'
)

// Legacy numeric layout values; any value >= 0 is a full cell
const (
	LegacyBlank    = -1
	LegacyEntrance = -2
)

// Parse reads an ASCII layout: '.' or ' ' blank, '#' full, 'E' entrance.
// Empty lines before and after the grid are ignored
func Parse(name, text string) (*Template, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %q has no rows", ErrInvalidTemplate, name)
	}

	layout := make([][]CellKind, len(lines))
	for y, line := range lines {
		row := make([]CellKind, 0, len(line))
		for x, ch := range line {
			switch ch {
			case GlyphBlank, ' ':
				row = append(row, Blank)
			case GlyphFull:
				row = append(row, Full)
			case GlyphEntrance:
				row = append(row, Entrance)
			default:
				return nil, fmt.Errorf("%w: %q row %d col %d: unexpected %q", ErrInvalidTemplate, name, y, x, ch)
			}
		}
		layout[y] = row
	}

	if err := checkRectangular(name, layout); err != nil {
		return nil, err
	}
	return &Template{Name: name, Layout: layout}, nil
}

// MustParse is Parse for package-level built-ins
func MustParse(name, text string) *Template {
	t, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return t
}

// FromLegacy converts the numeric layout format: -1 blank, -2 entrance, >= 0 full
func FromLegacy(name string, layout [][]int) (*Template, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: %q has no rows", ErrInvalidTemplate, name)
	}
	out := make([][]CellKind, len(layout))
	for y, row := range layout {
		out[y] = make([]CellKind, len(row))
		for x, v := range row {
			switch {
			case v == LegacyBlank:
				out[y][x] = Blank
			case v == LegacyEntrance:
				out[y][x] = Entrance
			case v >= 0:
				out[y][x] = Full
			default:
				return nil, fmt.Errorf("%w: %q row %d col %d: unknown value %d", ErrInvalidTemplate, name, y, x, v)
			}
		}
	}
	if err := checkRectangular(name, out); err != nil {
		return nil, err
	}
	return &Template{Name: name, Layout: out}, nil
}

// String renders the template back to ASCII
func (t *Template) String() string {
	var sb strings.Builder
	for y, row := range t.Layout {
		for _, k := range row {
			switch k {
			case Full:
				sb.WriteRune(GlyphFull)
			case Entrance:
				sb.WriteRune(GlyphEntrance)
			default:
				sb.WriteRune(GlyphBlank)
			}
		}
		if y < len(t.Layout)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// templateFile is the TOML shape of a template
type templateFile struct {
	Name   string   `toml:"name"`
	Layout []string `toml:"layout"`
}

// Load decodes a TOML template: name = "...", layout = ["..##..", ...]
func Load(r io.Reader) (*Template, error) {
	var f templateFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidTemplate)
	}
	return Parse(f.Name, strings.Join(f.Layout, "\n"))
}

// LoadFile reads a TOML template from path
func LoadFile(path string) (*Template, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

func checkRectangular(name string, layout [][]CellKind) error {
	width := len(layout[0])
	if width == 0 {
		return fmt.Errorf("%w: %q has an empty first row", ErrInvalidTemplate, name)
	}
	for y, row := range layout {
		if len(row) != width {
			return fmt.Errorf("%w: %q row %d has %d cells, want %d", ErrInvalidTemplate, name, y, len(row), width)
		}
	}
	return nil
}
