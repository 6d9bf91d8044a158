// Package feedata bundles the rate documents shipped with the binary.
package feedata

import "embed"

//go:embed *.json
var Documents embed.FS
