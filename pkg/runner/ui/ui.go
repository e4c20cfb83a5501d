package ui

import (
	"context"

	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/tui/app"
)

// UI launches the scrolling calendar TUI.
type UI struct {
	Config config.Config
}

func (u *UI) Do(ctx context.Context) error {
	return app.Run(u.Config)
}
