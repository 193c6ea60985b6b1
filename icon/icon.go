// Package icon renders status symbols for CLI output.
//
// Icons can be displayed as emoji, plain ASCII, or Unicode squares depending on the icons.variant setting.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Link
	Key
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "❌", plain: "✗", squares: "🟥"},
	Warn:     {emoji: "⚠️", plain: "!", squares: "🟨"},
	Progress: {emoji: "⏳", plain: "...", squares: "🟦"},
	Link:     {emoji: "🔗", plain: "->", squares: "🟪"},
	Key:      {emoji: "🔑", plain: "*", squares: "🟧"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant, or an empty string for unknown icons and variants.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}
