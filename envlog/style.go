// file: envx/envlog/style.go
package envlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	colorTeal40    = "#3ddbd9"
	colorBlue60    = "#4589ff"
	colorBlue40    = "#78a9ff"
	colorRed60     = "#da1e28"
	colorRedStrong = "#ff0000"
	colorOrange40  = "#ff832b"
	colorGray60    = "#8d8d8d"
	colorGray10    = "#f4f4f4"
)

//
// ---------- Console Formatter ----------

// levelColor maps a level name to its badge color.
func levelColor(lvl string) string {
	switch lvl {
	case "debug":
		return colorTeal40
	case "info":
		return colorBlue60
	case "warn":
		return colorOrange40
	case "error":
		return colorRed60
	case "fatal", "panic":
		return colorRedStrong
	}
	return colorGray60
}

// styledConsole builds a zerolog.ConsoleWriter with lipgloss-styled
// level badges, timestamps and field names.
func styledConsole(w io.Writer, timeFormat string) zerolog.ConsoleWriter {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue40))
	eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray60))
	tsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray60))
	msgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray10))

	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			badge := lvl
			if len(badge) > 3 {
				badge = badge[:3]
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(strings.ToUpper(badge))
		},

		FormatTimestamp: func(i any) string {
			return tsStyle.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			return keyStyle.Render(fmt.Sprint(i)) + eqStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			return msgStyle.Render(fmt.Sprint(i))
		},
	}
}
