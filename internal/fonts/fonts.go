// Package fonts resolves the four typefaces a hexcard is drawn with.
package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/arcanaland/hexcard/internal/assets"
)

// Role names what a typeface is used for on the card.
type Role string

const (
	Title        Role = "title"
	TitleReduced Role = "title_reduced"
	Rules        Role = "rules"
	Flavor       Role = "flavor"
)

// Roles lists every role in the order the card uses them.
var Roles = []Role{Title, TitleReduced, Rules, Flavor}

// Spec selects a font file and pixel size. An empty Path picks the
// embedded Go font for the role; a zero Size picks the role's default.
type Spec struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

// Config holds one Spec per role.
type Config struct {
	Title        Spec `toml:"title"`
	TitleReduced Spec `toml:"title_reduced"`
	Rules        Spec `toml:"rules"`
	Flavor       Spec `toml:"flavor"`
}

// DefaultConfig uses the embedded fonts at the card's standard sizes.
func DefaultConfig() Config {
	return Config{
		Title:        Spec{Size: defaultSize[Title]},
		TitleReduced: Spec{Size: defaultSize[TitleReduced]},
		Rules:        Spec{Size: defaultSize[Rules]},
		Flavor:       Spec{Size: defaultSize[Flavor]},
	}
}

func (c Config) spec(r Role) Spec {
	switch r {
	case Title:
		return c.Title
	case TitleReduced:
		return c.TitleReduced
	case Rules:
		return c.Rules
	default:
		return c.Flavor
	}
}

var defaultSize = map[Role]float64{
	Title:        20,
	TitleReduced: 15,
	Rules:        10,
	Flavor:       10,
}

var embedded = map[Role][]byte{
	Title:        gobold.TTF,
	TitleReduced: gobold.TTF,
	Rules:        goregular.TTF,
	Flavor:       goitalic.TTF,
}

// Typeface is a parsed font at a fixed size. It is safe to share between
// renders; faces made from it are not.
type Typeface struct {
	Font *opentype.Font
	Size float64
}

// NewFace makes a face for a single render.
func (t *Typeface) NewFace() (font.Face, error) {
	return opentype.NewFace(t.Font, &opentype.FaceOptions{
		Size:    t.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Loader turns a Spec into a Typeface.
type Loader interface {
	Load(role Role, spec Spec) (*Typeface, error)
}

// FileLoader reads Spec.Path from disk and falls back to the embedded
// Go fonts for empty paths.
type FileLoader struct {
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

func (l FileLoader) Load(role Role, spec Spec) (*Typeface, error) {
	size := spec.Size
	if size <= 0 {
		size = defaultSize[role]
	}

	data := embedded[role]
	if spec.Path != "" {
		read := l.ReadFile
		if read == nil {
			read = os.ReadFile
		}
		b, err := read(spec.Path)
		if err != nil {
			return nil, &assets.AssetLoadError{Kind: assets.KindFont, Name: string(role), Path: spec.Path, Err: err}
		}
		data = b
	}
	if data == nil {
		return nil, &assets.AssetLoadError{Kind: assets.KindFont, Name: string(role), Err: fmt.Errorf("no font for role")}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &assets.AssetLoadError{Kind: assets.KindFont, Name: string(role), Path: spec.Path, Err: err}
	}
	return &Typeface{Font: f, Size: size}, nil
}

// FontSet is the resolved set of typefaces.
type FontSet struct {
	Title        *Typeface
	TitleReduced *Typeface
	Rules        *Typeface
	Flavor       *Typeface
}

// Resolve loads every role of cfg through l.
func Resolve(cfg Config, l Loader) (*FontSet, error) {
	if l == nil {
		l = FileLoader{}
	}
	loaded := make(map[Role]*Typeface, len(Roles))
	for _, r := range Roles {
		tf, err := l.Load(r, cfg.spec(r))
		if err != nil {
			return nil, err
		}
		loaded[r] = tf
	}
	return &FontSet{
		Title:        loaded[Title],
		TitleReduced: loaded[TitleReduced],
		Rules:        loaded[Rules],
		Flavor:       loaded[Flavor],
	}, nil
}

// Faces are the per-render font faces.
type Faces struct {
	Title        font.Face
	TitleReduced font.Face
	Rules        font.Face
	Flavor       font.Face
}

// Faces makes a fresh set of faces. Close them when the render is done.
func (s *FontSet) Faces() (*Faces, error) {
	var f Faces
	var err error
	if f.Title, err = s.Title.NewFace(); err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}
	if f.TitleReduced, err = s.TitleReduced.NewFace(); err != nil {
		return nil, fmt.Errorf("reduced title face: %w", err)
	}
	if f.Rules, err = s.Rules.NewFace(); err != nil {
		return nil, fmt.Errorf("rules face: %w", err)
	}
	if f.Flavor, err = s.Flavor.NewFace(); err != nil {
		return nil, fmt.Errorf("flavor face: %w", err)
	}
	return &f, nil
}

func (f *Faces) Close() {
	for _, face := range []font.Face{f.Title, f.TitleReduced, f.Rules, f.Flavor} {
		if face != nil {
			face.Close()
		}
	}
}

// Measure returns the advance width of text in pixels.
func Measure(face font.Face, text string) float64 {
	return float64(font.MeasureString(face, text)) / 64
}

// Measurer binds Measure to a face.
func Measurer(face font.Face) func(string) float64 {
	return func(text string) float64 { return Measure(face, text) }
}
