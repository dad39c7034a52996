package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/murkandloam/the-gloaming-sub002/internal/collection"
	"github.com/murkandloam/the-gloaming-sub002/internal/config"
	"github.com/murkandloam/the-gloaming-sub002/internal/errmsg"
	"github.com/murkandloam/the-gloaming-sub002/internal/icons"
	"github.com/murkandloam/the-gloaming-sub002/internal/listenstats"
	"github.com/murkandloam/the-gloaming-sub002/internal/state"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/gridview"
)

type statsLoadedMsg struct {
	stats listenstats.Stats
	err   error
}

type importDoneMsg struct {
	stats collection.ImportStats
	err   error
}

type model struct {
	grid     gridview.Model
	stateMgr *state.Manager
	store    *collection.Store
	cfg      *config.Config
	width    int
	height   int
	status   string
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	store := collection.NewStore(stateMgr.DB())

	grid := gridview.New(store, stateMgr)
	grid.SetFocused(true)
	grid.SetShowGenres(cfg.Grid.ShowGenres)
	if err := grid.Refresh(); err != nil {
		stateMgr.Close()
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpCollectionLoad, err))
	}

	return model{
		grid:     grid,
		stateMgr: stateMgr,
		store:    store,
		cfg:      cfg,
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.loadStatsCmd()
}

// loadStatsCmd resolves listen stats off the update loop.
func (m model) loadStatsCmd() tea.Cmd {
	db := m.stateMgr.DB()
	return func() tea.Msg {
		stats, err := listenstats.Resolve(db)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// importCmd scans the configured source folders for record folders.
func (m model) importCmd() tea.Cmd {
	store := m.store
	sources := m.cfg.SourceFolders
	return func() tea.Msg {
		stats, err := collection.ImportFolders(store, sources)
		return importDoneMsg{stats: stats, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve one line for the status bar
		m.grid.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		quit := msg.String() == "ctrl+c" ||
			(msg.String() == "q" && !m.grid.PopupActive())
		if quit {
			m.stateMgr.Close()
			return m, tea.Quit
		}

	case statsLoadedMsg:
		if msg.err != nil {
			m.status = errmsg.Format(errmsg.OpListenResolve, msg.err)
			return m, nil
		}
		m.grid.SetStats(msg.stats)
		return m, nil

	case gridview.RefreshRequestedMsg:
		if !m.cfg.HasSources() {
			m.status = "No source folders configured"
			return m, nil
		}
		m.status = "Scanning source folders..."
		return m, m.importCmd()

	case importDoneMsg:
		if msg.err != nil {
			m.status = errmsg.Format(errmsg.OpImportFolders, msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Imported %s records (%d skipped, %d errors)",
			humanize.Comma(int64(len(msg.stats.Added))), msg.stats.Skipped, msg.stats.Errors)
		if err := m.grid.Refresh(); err != nil {
			m.status = errmsg.Format(errmsg.OpCollectionLoad, err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.grid.View() + "\n" + m.status
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
