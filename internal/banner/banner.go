// Package banner renders the CLI start-up banner.
package banner

import "github.com/gookit/color"

const art = `            __
  _______ _/ /____ ___  ____
 / __/ _ ` + "`" + `/ __/ -_) _ \/ __/
 \__/\_,_/\__/\__/_//_/\__/
`

// Banner returns the banner for the given version.
func Banner(version string) string {
	return color.Cyan.Sprint(art) + color.Gray.Sprintf("  online target encoding  %s\n\n", version)
}
