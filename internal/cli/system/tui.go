package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/storage"
	"github.com/avwray/lifedeck/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Automatic backup on dashboard startup (SQLite only)
	if !storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		ctx.PerformAutomaticBackup()
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Now()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
