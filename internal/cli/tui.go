package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"castlog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, ctx.Service())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
