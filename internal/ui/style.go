package ui

import (
	"strconv"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// SetColor forces colored output on or off, overriding terminal detection.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// depthColors is a palette of distinct bold colors, one per BFS level.
var depthColors = []func(a ...interface{}) string{
	BoldMagenta,
	BoldCyan,
	BoldYellow,
	BoldGreen,
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// DepthColor returns the palette color for a level, cycling when depth
// exceeds the palette.
func DepthColor(depth int) func(a ...interface{}) string {
	if depth < 0 {
		depth = -depth
	}
	return depthColors[depth%len(depthColors)]
}

// Node returns a colored node label for the given depth.
func Node(id, depth int) string {
	return DepthColor(depth)(strconv.Itoa(id))
}
