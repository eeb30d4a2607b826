// Package module holds cross-module lookups: ports extraction and a process-wide registry
package module

import (
	"github-activity/internal/modkit/httpkit"
)

// Module is what the API mounts: routes plus a ports bundle for cross wiring
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}
