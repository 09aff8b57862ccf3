package theme

import (
	"os"
	"sync"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconVolume     = "\U000f02ca" // md-harddisk (U+F02CA)
	nerdIconFolder     = "\uf07b"     // fa-folder (U+F07B)
	nerdIconFolderOpen = "\uf07c"     // fa-folder_open (U+F07C)
	nerdIconFile       = "\uf016"     // fa-file_o (U+F016)
	nerdIconCollapsed  = "\ueab6"     // cod-chevron_right (U+EAB6)
	nerdIconExpanded   = "\ueab4"     // cod-chevron_down (U+EAB4)
	nerdIconSuccess    = "\U000f012c" // md-check (U+F012C)
	nerdIconError      = "\uea87"     // cod-error (U+EA87)
	nerdIconWarning    = "\uf071"     // fa-warning (U+F071)
	nerdIconFilter     = "\U000f18ec" // md-filter_check (U+F18EC)
	nerdIconArrowLeft  = "\U000f004d" // md-arrow_left (U+F004D)
)

// ASCII Icons (Private Constants)
const (
	asciiIconVolume     = "[v]"
	asciiIconFolder     = "[d]"
	asciiIconFolderOpen = "[D]"
	asciiIconFile       = "[f]"
	asciiIconCollapsed  = "+"
	asciiIconExpanded   = "-"
	asciiIconSuccess    = "[*]"
	asciiIconError      = "[x]"
	asciiIconWarning    = "[!]"
	asciiIconFilter     = "/"
	asciiIconArrowLeft  = "<-"
)

// Public icon variables, populated by UseASCIIIcons.
var (
	IconVolume     string
	IconFolder     string
	IconFolderOpen string
	IconFile       string
	IconCollapsed  string
	IconExpanded   string
	IconSuccess    string
	IconError      string
	IconWarning    string
	IconFilter     string
	IconArrowLeft  string
)

var iconsMu sync.Mutex

func init() {
	UseASCIIIcons(os.Getenv("FBROWSE_ICONS") == "ascii")
}

// ApplyIcons selects the icon set by config name ("nerd" or "ascii").
// FBROWSE_ICONS wins over the configured value.
func ApplyIcons(name string) {
	if env := os.Getenv("FBROWSE_ICONS"); env != "" {
		name = env
	}
	UseASCIIIcons(name == "ascii")
}

// UseASCIIIcons switches between the Nerd Font and ASCII icon sets.
func UseASCIIIcons(ascii bool) {
	iconsMu.Lock()
	defer iconsMu.Unlock()

	if ascii {
		IconVolume = asciiIconVolume
		IconFolder = asciiIconFolder
		IconFolderOpen = asciiIconFolderOpen
		IconFile = asciiIconFile
		IconCollapsed = asciiIconCollapsed
		IconExpanded = asciiIconExpanded
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconFilter = asciiIconFilter
		IconArrowLeft = asciiIconArrowLeft
		return
	}

	IconVolume = nerdIconVolume
	IconFolder = nerdIconFolder
	IconFolderOpen = nerdIconFolderOpen
	IconFile = nerdIconFile
	IconCollapsed = nerdIconCollapsed
	IconExpanded = nerdIconExpanded
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconFilter = nerdIconFilter
	IconArrowLeft = nerdIconArrowLeft
}
