package purfectedit

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontConfig holds the one-time font configuration consumed when the engine
// is created. The zero value yields an engine using the embedded fallback
// fonts with a locale taken from the environment.
type FontConfig struct {
	// Locale is a BCP 47 locale string. When empty, $LC_ALL / $LANG are
	// consulted, falling back to "en-US".
	Locale string

	// FontsDir is an optional directory of .ttf/.otf files to load.
	FontsDir string

	// LoadSystemFonts loads fonts from the platform font directories.
	LoadSystemFonts bool

	// EmbeddedFont is optional raw font data compiled into the host binary.
	EmbeddedFont []byte

	// EmbeddedIsDefault makes the embedded font the default face even when
	// other fonts are loaded.
	EmbeddedIsDefault bool

	// Family overrides. When set and a loaded font matches the family name,
	// that font is preferred for the corresponding generic family.
	MonospaceFamily string
	SansSerifFamily string
	SerifFamily     string
}

// FontSystem is the process-wide font database and face cache. Exactly one
// pass borrows it at a time; it is not safe for concurrent use and carries
// no locks by design (the frame driver is single-threaded).
type FontSystem struct {
	locale string
	fonts  map[string]*sfnt.Font // lowercased family name -> font
	def    *sfnt.Font
	faces  map[faceKey]font.Face
}

type faceKey struct {
	f    *sfnt.Font
	size float64
}

// systemFontDirs lists platform font directories scanned when
// LoadSystemFonts is enabled. Missing directories are skipped silently.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts"}
	case "windows":
		return []string{`C:\Windows\Fonts`}
	default:
		home, _ := os.UserHomeDir()
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// NewFontSystem builds the font database from the given configuration.
// The embedded Go fonts are always registered last as a fallback, so a
// usable default face exists even with an empty configuration.
func NewFontSystem(cfg FontConfig) (*FontSystem, error) {
	fs := &FontSystem{
		locale: resolveLocale(cfg.Locale),
		fonts:  make(map[string]*sfnt.Font),
		faces:  make(map[faceKey]font.Face),
	}

	var embedded *sfnt.Font
	if len(cfg.EmbeddedFont) > 0 {
		f, err := opentype.Parse(cfg.EmbeddedFont)
		if err != nil {
			return nil, err
		}
		fs.register(f)
		embedded = f
	}

	if cfg.FontsDir != "" {
		fs.loadDir(cfg.FontsDir)
	}

	if cfg.LoadSystemFonts {
		for _, dir := range systemFontDirs() {
			fs.loadDir(dir)
		}
	}

	// Embedded fallbacks, registered last so they never shadow a loaded
	// family of the same name.
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	fs.registerFallback(regular)
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	fs.registerFallback(mono)

	// Default face resolution: explicit embedded override, then the family
	// overrides in monospace/sans-serif/serif order, then the first loaded
	// font, then the embedded regular face.
	switch {
	case embedded != nil && cfg.EmbeddedIsDefault:
		fs.def = embedded
	case fs.lookup(cfg.MonospaceFamily) != nil:
		fs.def = fs.lookup(cfg.MonospaceFamily)
	case fs.lookup(cfg.SansSerifFamily) != nil:
		fs.def = fs.lookup(cfg.SansSerifFamily)
	case fs.lookup(cfg.SerifFamily) != nil:
		fs.def = fs.lookup(cfg.SerifFamily)
	case embedded != nil:
		fs.def = embedded
	default:
		fs.def = regular
	}

	return fs, nil
}

// Locale returns the locale the font system was initialized with.
func (fs *FontSystem) Locale() string {
	return fs.locale
}

// Families returns the loaded family names in no particular order.
func (fs *FontSystem) Families() []string {
	names := make([]string, 0, len(fs.fonts))
	for name := range fs.fonts {
		names = append(names, name)
	}
	return names
}

// Face returns a cached face of the default font at the given size.
func (fs *FontSystem) Face(size float64) (font.Face, error) {
	if fs == nil || fs.def == nil {
		return nil, ErrNotInitialized
	}
	key := faceKey{f: fs.def, size: size}
	if face, ok := fs.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fs.def, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fs.faces[key] = face
	return face, nil
}

// Ascent returns the default face's ascent in pixels at the given size.
// Glyph baselines sit this far below the top of a layout row.
func (fs *FontSystem) Ascent(size float64) (float64, error) {
	face, err := fs.Face(size)
	if err != nil {
		return 0, err
	}
	return float64(face.Metrics().Ascent) / 64.0, nil
}

func (fs *FontSystem) register(f *sfnt.Font) {
	fs.fonts[familyName(f)] = f
}

func (fs *FontSystem) registerFallback(f *sfnt.Font) {
	name := familyName(f)
	if _, exists := fs.fonts[name]; !exists {
		fs.fonts[name] = f
	}
}

func (fs *FontSystem) lookup(family string) *sfnt.Font {
	if family == "" {
		return nil
	}
	return fs.fonts[strings.ToLower(family)]
}

// loadDir parses every .ttf/.otf file in dir. Unreadable files and
// directories are skipped; font loading failures are not fatal.
func (fs *FontSystem) loadDir(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
		default:
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil
		}
		fs.register(f)
		return nil
	})
}

// familyName extracts the lowercased family name from a parsed font,
// falling back to "unknown" when the name table is unreadable.
func familyName(f *sfnt.Font) string {
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		return "unknown"
	}
	return strings.ToLower(name)
}

func resolveLocale(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, env := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if i := strings.IndexByte(v, '.'); i >= 0 {
				v = v[:i]
			}
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return "en-US"
}
