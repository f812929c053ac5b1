// briefly/utils/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	linkColor    = color.New(color.FgHiBlue)
	statColor    = color.New(color.FgHiYellow, color.Bold)
)

func ColorHeader(s string) string {
	return headerColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorLink(s string) string {
	return linkColor.Sprint(s)
}

func ColorStat(s string) string {
	return statColor.Sprint(s)
}
