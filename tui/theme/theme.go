// Package theme holds the palettes and lipgloss styles shared by the TUI,
// the log formatter and the CLI output.
package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaDarkGreen              = "#98BB6C"
	kanagawaDarkYellow             = "#FF9E3B"
	kanagawaDarkRed                = "#FF5D62"
	kanagawaDarkOrange             = "#FFA066"
	kanagawaDarkCyan               = "#7E9CD8"
	kanagawaDarkBlue               = "#7FB4CA"
	kanagawaDarkViolet             = "#957FB8"
	kanagawaDarkPink               = "#D27E99"
	kanagawaDarkLightText          = "#DCD7BA"
	kanagawaDarkMutedText          = "#727169"
	kanagawaDarkDarkText           = "#1D1C19"
	kanagawaDarkBorder             = "#363646"
	kanagawaDarkSelectedBackground = "#223249"
	kanagawaDarkSubtleBackground   = "#1F1F28"
)

// --- Kanagawa Wave (light-inspired) palette ---
const (
	kanagawaLightGreen              = "#4E7C5A"
	kanagawaLightYellow             = "#A68A64"
	kanagawaLightRed                = "#C34043"
	kanagawaLightOrange             = "#CC6B4E"
	kanagawaLightCyan               = "#5B8BBE"
	kanagawaLightBlue               = "#4F7CAC"
	kanagawaLightViolet             = "#674D7A"
	kanagawaLightPink               = "#B35C74"
	kanagawaLightLightText          = "#2B2F42"
	kanagawaLightMutedText          = "#6C7086"
	kanagawaLightDarkText           = "#E6E9EF"
	kanagawaLightBorder             = "#B5BDC5"
	kanagawaLightSelectedBackground = "#E2E6F3"
	kanagawaLightSubtleBackground   = "#F7F7FB"
)

// --- Gruvbox palette ---
const (
	gruvboxDarkGreen               = "#B8BB26"
	gruvboxLightGreen              = "#98971A"
	gruvboxDarkYellow              = "#FABD2F"
	gruvboxLightYellow             = "#D79921"
	gruvboxDarkRed                 = "#FB4934"
	gruvboxLightRed                = "#CC241D"
	gruvboxDarkOrange              = "#FE8019"
	gruvboxLightOrange             = "#D65D0E"
	gruvboxDarkCyan                = "#83A598"
	gruvboxLightCyan               = "#458588"
	gruvboxDarkBlue                = "#458588"
	gruvboxLightBlue               = "#076678"
	gruvboxDarkViolet              = "#B16286"
	gruvboxLightViolet             = "#8F3F71"
	gruvboxDarkPink                = "#D3869B"
	gruvboxLightPink               = "#B57679"
	gruvboxDarkLightText           = "#EBDBB2"
	gruvboxLightLightText          = "#3C3836"
	gruvboxDarkMutedText           = "#BDAE93"
	gruvboxLightMutedText          = "#928374"
	gruvboxDarkDarkText            = "#1D2021"
	gruvboxLightDarkText           = "#F9F5D7"
	gruvboxDarkBorder              = "#504945"
	gruvboxLightBorder             = "#D5C4A1"
	gruvboxDarkSelectedBackground  = "#32302F"
	gruvboxLightSelectedBackground = "#F2E5BC"
	gruvboxDarkSubtleBackground    = "#282828"
	gruvboxLightSubtleBackground   = "#FBF1C7"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalPink               = "13"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalDarkText           = "0"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
	terminalSubtleBackground   = "0"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	Pink               lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	DarkText           lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold              lipgloss.Style
	Normal            lipgloss.Style
	Muted             lipgloss.Style
	Selected          lipgloss.Style
	SelectedUnfocused lipgloss.Style

	// Filesystem entries
	Volume    lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Size      lipgloss.Style

	// Panes and containers
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Box         lipgloss.Style
	Code        lipgloss.Style
	StatusBar   lipgloss.Style

	// Interactive elements
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
	"mono":     newMonoColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"default":         "kanagawa",
	"none":            "mono",
}

var themeMu sync.Mutex

// DefaultTheme is the active theme. It starts from FBROWSE_THEME and is
// replaced by Apply once configuration is loaded.
var DefaultTheme = NewThemeWithName(envThemeName())

// Apply makes the named theme the default. FBROWSE_THEME still wins.
func Apply(name string) *Theme {
	themeMu.Lock()
	defer themeMu.Unlock()
	if env := envThemeName(); env != "" {
		name = env
	}
	DefaultTheme = NewThemeWithName(name)
	return DefaultTheme
}

// Names lists the registered palette names.
func Names() []string {
	return []string{"kanagawa", "gruvbox", "terminal", "mono"}
}

// NewThemeWithName constructs a theme from a specific palette name.
// Unknown names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Cyan),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		// Text hierarchy: Bold → Normal → Muted
		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText).
			Bold(true),

		SelectedUnfocused: lipgloss.NewStyle().
			Faint(true).
			Underline(true),

		Volume: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Directory: lipgloss.NewStyle().
			Foreground(colors.Blue).
			Bold(true),

		File: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Size: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Violet),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(1, 2).
			Margin(1, 0),

		Code: lipgloss.NewStyle().
			Background(colors.SubtleBackground).
			Foreground(colors.LightText).
			Padding(0, 1).
			MarginLeft(2),

		StatusBar: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func envThemeName() string {
	return normalizeThemeName(os.Getenv("FBROWSE_THEME"))
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: kanagawaLightBlue, Dark: kanagawaDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		Pink:               lipgloss.AdaptiveColor{Light: kanagawaLightPink, Dark: kanagawaDarkPink},
		LightText:          lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		DarkText:           lipgloss.AdaptiveColor{Light: kanagawaLightDarkText, Dark: kanagawaDarkDarkText},
		Border:             lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: kanagawaLightSelectedBackground, Dark: kanagawaDarkSelectedBackground},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: kanagawaLightSubtleBackground, Dark: kanagawaDarkSubtleBackground},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: gruvboxLightGreen, Dark: gruvboxDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: gruvboxLightYellow, Dark: gruvboxDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: gruvboxLightRed, Dark: gruvboxDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: gruvboxLightOrange, Dark: gruvboxDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: gruvboxLightCyan, Dark: gruvboxDarkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: gruvboxLightBlue, Dark: gruvboxDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: gruvboxLightViolet, Dark: gruvboxDarkViolet},
		Pink:               lipgloss.AdaptiveColor{Light: gruvboxLightPink, Dark: gruvboxDarkPink},
		LightText:          lipgloss.AdaptiveColor{Light: gruvboxLightLightText, Dark: gruvboxDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: gruvboxLightMutedText, Dark: gruvboxDarkMutedText},
		DarkText:           lipgloss.AdaptiveColor{Light: gruvboxLightDarkText, Dark: gruvboxDarkDarkText},
		Border:             lipgloss.AdaptiveColor{Light: gruvboxLightBorder, Dark: gruvboxDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: gruvboxLightSelectedBackground, Dark: gruvboxDarkSelectedBackground},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: gruvboxLightSubtleBackground, Dark: gruvboxDarkSubtleBackground},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		Pink:               lipgloss.Color(terminalPink),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		DarkText:           lipgloss.Color(terminalDarkText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:   lipgloss.Color(terminalSubtleBackground),
	}
}

func newMonoColors() Colors {
	none := lipgloss.NoColor{}
	return Colors{
		Green:              none,
		Yellow:             none,
		Red:                none,
		Orange:             none,
		Cyan:               none,
		Blue:               none,
		Violet:             none,
		Pink:               none,
		LightText:          none,
		MutedText:          none,
		DarkText:           none,
		Border:             none,
		SelectedBackground: none,
		SubtleBackground:   none,
	}
}
