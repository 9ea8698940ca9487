// Package assets bundles the default room template set. Rooms are plain
// tilemap JSON documents so the same files load from a user folder via
// os.DirFS.
package assets

import "embed"

//go:embed all:rooms
var FS embed.FS
