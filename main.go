package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macshonle/tree-render-sub001/internal/config"
	"github.com/macshonle/tree-render-sub001/internal/viewstate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	views := viewstate.New(cfg.Cache.Capacity)
	ctx := viewstate.NewContext(context.Background(), views)

	p := tea.NewProgram(newModel(ctx, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
