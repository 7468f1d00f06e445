package web

import "embed"

// StaticFiles embeds the site's stylesheet and other assets served under /static/.
//
//go:embed static
var StaticFiles embed.FS
