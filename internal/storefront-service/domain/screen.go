package domain

import (
	"strings"

	"github.com/go-faster/errors"
)

var ErrInvalidAppearance = errors.New("invalid appearance")

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case. An empty string falls
// back to def.
func ParseTheme(s string, def Theme) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case string(ThemeLight):
		return ThemeLight, nil
	case string(ThemeDark):
		return ThemeDark, nil
	}
	return "", errors.Wrapf(ErrInvalidAppearance, "%q", s)
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Intensity is the strength of a haptic pulse.
type Intensity string

const (
	IntensityNone   Intensity = ""
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
)

// Palette is the set of colors the client paints the screen with.
type Palette struct {
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	CardBg        string
}

var (
	darkPalette = Palette{
		Background:    "#000000",
		Surface:       "#1C1C1E",
		Text:          "#FFFFFF",
		TextSecondary: "#8E8E93",
		Border:        "#38383A",
		CardBg:        "#1C1C1E",
	}
	lightPalette = Palette{
		Background:    "#F9FAFB",
		Surface:       "#FFFFFF",
		Text:          "#1C1C1E",
		TextSecondary: "#8E8E93",
		Border:        "#F2F2F7",
		CardBg:        "#FFFFFF",
	}
)

func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

type Toast struct {
	Message string
	Visible bool
}

// CatalogCard is one tile of the product grid.
type CatalogCard struct {
	ProductID int
	Name      string
	Image     string
	Rating    float64
	Price     string
	Category  string
}

// CartLine is one row of the cart overlay.
type CartLine struct {
	ProductID int
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
}

type CartView struct {
	Lines        []CartLine
	Empty        bool
	EmptyTitle   string
	EmptyMessage string
	Subtotal     string
	Shipping     string
	Total        string
}

// Screen is a render-ready snapshot of a session.
type Screen struct {
	SessionID    string
	Title        string
	SectionTitle string
	Theme        Theme
	Palette      Palette
	Badge        int
	CartOpen     bool
	Toast        Toast
	LastHaptic   Intensity
	Catalog      []CatalogCard
	Cart         CartView
}
