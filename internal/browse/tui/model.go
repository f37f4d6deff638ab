// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tui renders the category page in a terminal with Bubble Tea.
//
// The model only forwards key presses to a [browse.Controller] and renders
// its snapshots; selection and pagination rules live in the controller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/vodbrowse/internal/browse"
)

const (
	// rowHeight converts list rows into the pixel offsets the scroller
	// expects, so the back-to-top hint appears after roughly a dozen rows.
	rowHeight = 24

	// sentinelRows is how close to the end of the results the cursor must
	// be for the sentinel to count as visible.
	sentinelRows = 3

	defaultHeight = 24

	// pollInterval is how often the view refreshes while a backend call runs.
	pollInterval = 100 * time.Millisecond
)

// Pane identifies the focused column.
type Pane int

const (
	PaneSources Pane = iota
	PaneCategories
	PaneResults
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("51"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("45"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)
)

// Message types
type (
	stateMsg browse.State
	pollMsg  struct{}
)

// Model is the Bubble Tea model of the category browser.
type Model struct {
	controller *browse.Controller
	scroller   *browse.Scroller
	route      browse.Route
	timeout    time.Duration

	// inflight counts running backend calls; shared by every copy of the model.
	inflight *atomic.Int32

	state    browse.State
	focus    Pane
	cursors  [3]int
	height   int
	quitting bool
}

// NewModel creates a model that mounts controller at route. timeout bounds
// every backend round trip.
func NewModel(controller *browse.Controller, route browse.Route, timeout time.Duration) Model {
	return Model{
		controller: controller,
		scroller:   browse.NewScroller(controller),
		route:      route,
		timeout:    timeout,
		inflight:   new(atomic.Int32),
		state:      controller.Snapshot(),
		focus:      PaneSources,
		height:     defaultHeight,
	}
}

// Init mounts the controller.
func (m Model) Init() tea.Cmd {
	route := m.route
	return m.run(func(ctx context.Context) {
		m.controller.Mount(ctx, route)
	})
}

/*
run executes op off the UI loop and reports the resulting snapshot.

A call made while no other is running also starts polling, so loading states set
by the controller during op are rendered before op returns.
*/
func (m Model) run(op func(ctx context.Context)) tea.Cmd {
	controller := m.controller
	timeout := m.timeout
	inflight := m.inflight

	work := func() tea.Msg {
		defer inflight.Add(-1)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		op(ctx)
		return stateMsg(controller.Snapshot())
	}

	if inflight.Add(1) > 1 {
		return work
	}
	return tea.Batch(work, poll())
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.state = browse.State(msg)
		m.clampCursors()
		return m, nil

	case pollMsg:
		if m.inflight.Load() == 0 {
			return m, nil
		}
		m.state = m.controller.Snapshot()
		m.clampCursors()
		return m, poll()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab", "right", "l":
			m.focus = (m.focus + 1) % 3
		case "shift+tab", "left", "h":
			m.focus = (m.focus + 2) % 3
		case "up", "k":
			return m.move(-1)
		case "down", "j":
			return m.move(1)
		case "t", "home":
			m.cursors[PaneResults] = 0
			m.scroller.OnScroll(0)
		case "r":
			return m, m.Init()
		case "enter":
			return m, m.selectCurrent()
		}
	}

	return m, nil
}

// move shifts the cursor of the focused pane and reports the new scroll
// offset; nearing the end of the results makes the sentinel visible.
func (m Model) move(delta int) (tea.Model, tea.Cmd) {
	size := m.paneSize(m.focus)
	if size == 0 {
		return m, nil
	}

	cursor := min(max(m.cursors[m.focus]+delta, 0), size-1)
	m.cursors[m.focus] = cursor

	if m.focus != PaneResults {
		return m, nil
	}

	m.scroller.OnScroll(cursor * rowHeight)
	if cursor >= size-sentinelRows && m.state.SentinelArmed() {
		scroller := m.scroller
		return m, m.run(func(ctx context.Context) { scroller.Visible(ctx) })
	}
	return m, nil
}

// selectCurrent selects the source or category under the cursor.
func (m Model) selectCurrent() tea.Cmd {
	controller := m.controller

	switch m.focus {
	case PaneSources:
		if len(m.state.Sources) == 0 {
			return nil
		}
		key := m.state.Sources[m.cursors[PaneSources]].Key
		return m.run(func(ctx context.Context) { _ = controller.SelectSource(ctx, key) })

	case PaneCategories:
		if len(m.state.Categories) == 0 {
			return nil
		}
		typeID := m.state.Categories[m.cursors[PaneCategories]].TypeID
		return m.run(func(ctx context.Context) { _ = controller.SelectCategory(ctx, typeID) })
	}

	return nil
}

func (m Model) paneSize(pane Pane) int {
	switch pane {
	case PaneSources:
		return len(m.state.Sources)
	case PaneCategories:
		return len(m.state.Categories)
	default:
		return len(m.state.Results)
	}
}

func (m *Model) clampCursors() {
	for pane := PaneSources; pane <= PaneResults; pane++ {
		size := m.paneSize(pane)
		if m.cursors[pane] >= size {
			m.cursors[pane] = max(size-1, 0)
		}
	}
}

// # Rendering

// View renders the browser
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(" vodbrowse ") + "  " + dimStyle.Render(m.state.Route.Href())

	sources := make([]string, 0, len(m.state.Sources))
	for _, s := range m.state.Sources {
		sources = append(sources, s.Name)
	}
	selectedSource := -1
	if m.state.Source != nil {
		for i, s := range m.state.Sources {
			if s.Key == m.state.Source.Key {
				selectedSource = i
			}
		}
	}

	categories := make([]string, 0, len(m.state.Categories))
	selectedCategory := -1
	for i, c := range m.state.Categories {
		categories = append(categories, c.TypeName)
		if m.state.Category != nil && c.TypeID == m.state.Category.TypeID {
			selectedCategory = i
		}
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(PaneSources, "Sources", sources, selectedSource),
		m.renderPane(PaneCategories, "Categories", categories, selectedCategory),
		m.renderResults(),
	)

	return header + "\n" + columns + "\n" + m.renderFooter()
}

func (m Model) renderPane(pane Pane, title string, rows []string, selected int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")

	for i, row := range rows {
		line := "  " + row
		if i == selected {
			line = "● " + row
		}
		switch {
		case m.focus == pane && i == m.cursors[pane]:
			line = cursorStyle.Render(line)
		case i == selected:
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	style := paneStyle
	if m.focus == pane {
		style = focusedPaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Results") + "\n")

	switch {
	case m.state.IsLoading:
		b.WriteString(dimStyle.Render("loading…"))
	case m.state.Category == nil:
		b.WriteString(dimStyle.Render("select a category"))
	case m.state.ShowResults && len(m.state.Results) == 0:
		b.WriteString(dimStyle.Render("no results"))
	default:
		visible := max(m.height-8, 5)
		start := max(m.cursors[PaneResults]-visible+1, 0)
		end := min(start+visible, len(m.state.Results))

		for i := start; i < end; i++ {
			item := m.state.Results[i]
			line := fmt.Sprintf("%-28s %s  %s", item.Title, dimStyle.Render(item.Year), dimStyle.Render(item.TypeName))
			if m.focus == PaneResults && i == m.cursors[PaneResults] {
				line = cursorStyle.Render(fmt.Sprintf("%-28s %s  %s", item.Title, item.Year, item.TypeName))
			}
			b.WriteString(line + "\n")
		}

		switch {
		case m.state.Pagination.IsLoadingMore:
			b.WriteString(dimStyle.Render("loading more…"))
		case !m.state.Pagination.HasMore:
			b.WriteString(dimStyle.Render("(end)"))
		}
	}

	style := paneStyle
	if m.focus == PaneResults {
		style = focusedPaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderFooter() string {
	footer := footerKeyStyle.Render("[tab]") + dimStyle.Render(" pane  ") +
		footerKeyStyle.Render("[↑↓]") + dimStyle.Render(" move  ") +
		footerKeyStyle.Render("[enter]") + dimStyle.Render(" select  ") +
		footerKeyStyle.Render("[r]") + dimStyle.Render(" reload  ") +
		footerKeyStyle.Render("[q]") + dimStyle.Render(" quit")

	if m.scroller.ShowBackToTop() {
		footer += "  " + footerKeyStyle.Render("[t]") + dimStyle.Render(" back to top")
	}
	return footer
}
