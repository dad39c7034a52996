package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Record string
	Hidden string
	Listen string
	Group  string
}

var (
	nerdIcons = Icons{
		Record: "󰀥 ", // nf-md-album
		Hidden: "󰈉 ", // nf-md-eye_off
		Listen: "󰋋 ", // nf-md-headphones
		Group:  " ",
	}

	unicodeIcons = Icons{
		Record: "💿 ",
		Hidden: "🙈 ",
		Listen: "🎧 ",
		Group:  "📁 ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Record returns the record prefix icon, empty for the none style.
func Record() string {
	return current.Record
}

// Hidden returns the hidden-record marker icon.
func Hidden() string {
	return current.Hidden
}

// Listen returns the listen-time prefix icon.
func Listen() string {
	return current.Listen
}

// Group returns the group header prefix icon.
func Group() string {
	return current.Group
}
