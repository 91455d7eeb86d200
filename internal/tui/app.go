package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reel/internal/domain"
	"reel/internal/library"
	"reel/internal/player"
	"reel/internal/scanner"
	"reel/internal/search"
	"reel/internal/storage"
)

type view int

const (
	viewAll view = iota
	viewFolders
	viewRecent
	viewFavorites
	viewFolderDetail
	viewSearch
	viewDenied
)

// tabs in display and cycle order
var tabs = []struct {
	view  view
	label string
}{
	{viewAll, "All Videos"},
	{viewFolders, "Folders"},
	{viewRecent, "Recent"},
	{viewFavorites, "Favorites"},
}

// Model is the main Bubble Tea model for the application
type Model struct {
	scan     *scanner.Service
	lib      *library.Library
	playback *storage.PlaybackStore
	launcher *player.Launcher
	index    *search.Index
	perm     domain.PermissionProvider
	logger   *slog.Logger

	view       view
	tab        int
	rows       []row
	highlights [][]int
	cursor     int
	folder     *domain.Folder

	searchInput textinput.Model
	spin        spinner.Model
	scanning    bool
	errMsg      string

	width  int
	height int
}

func NewModel(
	scan *scanner.Service,
	lib *library.Library,
	playback *storage.PlaybackStore,
	launcher *player.Launcher,
	index *search.Index,
	perm domain.PermissionProvider,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "search titles"
	input.Prompt = "/ "
	input.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		scan:        scan,
		lib:         lib,
		playback:    playback,
		launcher:    launcher,
		index:       index,
		perm:        perm,
		logger:      logger,
		searchInput: input,
		spin:        sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.hydrateCmd(), m.permissionCmd())
}

// === Commands ===

func (m Model) hydrateCmd() tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		return hydratedMsg{err: lib.Hydrate(context.Background())}
	}
}

func (m Model) permissionCmd() tea.Cmd {
	perm := m.perm
	return func() tea.Msg {
		return permissionCheckedMsg{granted: perm.CanAccessVideos()}
	}
}

func (m Model) scanCmd() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		result, err := scan.Scan(context.Background())
		return scanFinishedMsg{result: result, err: err}
	}
}

func (m Model) playCmd(video domain.Video) tea.Cmd {
	m.lib.AddToRecent(video)

	lp, ok := m.playback.LastPosition(video.ID)
	offset := player.StartOffset(lp, ok)

	cmd, err := m.launcher.Command(video.Path, player.Options{StartOffset: offset})
	if err != nil {
		m.logger.Error("cannot launch player", "error", err)
		return func() tea.Msg { return playbackFinishedMsg{video: video, err: err} }
	}

	startedAt := time.Now()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return playbackFinishedMsg{video: video, offset: offset, startedAt: startedAt, err: err}
	})
}

// === Update ===

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case hydratedMsg:
		if msg.err != nil {
			m.logger.Debug("hydration skipped", "error", msg.err)
		}
		m.refreshRows()
		return m, nil

	case permissionCheckedMsg:
		if !msg.granted {
			m.view = viewDenied
			m.lib.ApplyScanResult(nil)
			m.refreshRows()
			return m, nil
		}
		if m.view == viewDenied {
			m.view = viewAll
		}
		m.scanning = true
		return m, m.scanCmd()

	case scanFinishedMsg:
		m.scanning = false
		if msg.err != nil {
			// Library keeps whatever it had; the user can retry.
			m.errMsg = "scan failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.lib.ApplyScanResult(msg.result)
		m.index.Rebuild(msg.result.AllVideos)
		m.refreshRows()
		return m, nil

	case StorageChangedMsg:
		if m.scanning || m.view == viewDenied {
			return m, nil
		}
		m.scanning = true
		return m, m.scanCmd()

	case playbackFinishedMsg:
		return m.finishPlayback(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) finishPlayback(msg playbackFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = "playback: " + msg.err.Error()
	}
	if !msg.startedAt.IsZero() {
		elapsed := time.Since(msg.startedAt)
		if elapsed >= 2*time.Second {
			// The external player reports nothing back, so approximate the
			// exit position from wall-clock playtime.
			position := msg.offset.Seconds() + elapsed.Seconds()
			duration := msg.video.Duration
			if prev, ok := m.playback.LastPosition(msg.video.ID); ok && duration == 0 {
				duration = prev.Duration
			}
			if position > duration && duration > 0 {
				position = duration
			}
			if err := m.playback.SetLastPosition(msg.video.ID, position, duration); err != nil {
				m.logger.Debug("checkpoint persistence failed", "error", err)
			}
		}
	}
	m.refreshRows()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.NextView):
		return m.switchTab(1), nil

	case key.Matches(msg, keys.PrevView):
		return m.switchTab(-1), nil

	case key.Matches(msg, keys.Back):
		if m.view == viewFolderDetail {
			m.view = viewFolders
			m.folder = nil
			m.refreshRows()
		}
		return m, nil

	case key.Matches(msg, keys.Favorite):
		if r := m.selectedRow(); r != nil && r.video != nil {
			m.lib.ToggleFavorite(r.video.ID)
			m.refreshRows()
		}
		return m, nil

	case key.Matches(msg, keys.Rescan):
		if m.view == viewDenied {
			return m, m.permissionCmd()
		}
		if !m.scanning {
			m.scanning = true
			return m, m.scanCmd()
		}
		return m, nil

	case key.Matches(msg, keys.Search):
		if m.view != viewDenied {
			m.view = viewSearch
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			m.refreshRows()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, keys.Select):
		return m.selectCurrent()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.view = tabs[m.tab].view
		m.searchInput.Blur()
		m.refreshRows()
		return m, nil

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		return m.selectCurrent()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshRows()
	return m, cmd
}

func (m Model) switchTab(delta int) Model {
	if m.view == viewDenied {
		return m
	}
	m.tab = (m.tab + delta + len(tabs)) % len(tabs)
	m.view = tabs[m.tab].view
	m.folder = nil
	m.refreshRows()
	return m
}

func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	r := m.selectedRow()
	if r == nil {
		return m, nil
	}
	if r.folder != nil {
		m.view = viewFolderDetail
		m.folder = r.folder
		m.refreshRows()
		return m, nil
	}
	return m, m.playCmd(*r.video)
}

func (m *Model) selectedRow() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// refreshRows rebuilds the visible rows from the library for the current
// view and clamps the cursor.
func (m *Model) refreshRows() {
	m.highlights = nil

	switch m.view {
	case viewAll:
		m.rows = videoRows(m.lib.AllVideos())
	case viewFolders:
		m.rows = folderRows(m.lib.Folders())
	case viewRecent:
		m.rows = videoRows(m.lib.RecentVideos())
	case viewFavorites:
		m.rows = videoRows(m.lib.FavoriteVideos())
	case viewFolderDetail:
		if m.folder != nil {
			m.rows = videoRows(m.lib.VideosInFolder(m.folder.Path))
		} else {
			m.rows = nil
		}
	case viewSearch:
		query := m.searchInput.Value()
		m.rows = videoRows(m.index.Search(query))
		m.highlights = highlightRows(m.rows, query)
	case viewDenied:
		m.rows = nil
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// === View ===

func (m Model) View() string {
	if m.view == viewDenied {
		return m.deniedView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.view == viewSearch {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	if m.view == viewSearch {
		return styleTitle.Render("Search")
	}
	if m.view == viewFolderDetail && m.folder != nil {
		return styleTitle.Render(m.folder.Name) + styleDim.Render(" "+m.folder.Path)
	}

	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.tab {
			parts[i] = styleTabActive.Render(t.label)
		} else {
			parts[i] = styleTab.Render(t.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) listView() string {
	if len(m.rows) == 0 {
		if m.scanning {
			return styleDim.Render("  " + m.spin.View() + " scanning...")
		}
		return styleDim.Render("  no videos")
	}

	visible := m.height - 4
	if visible < 1 {
		visible = 10
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		r := m.rows[i]
		title := r.title
		if m.highlights != nil && i < len(m.highlights) && len(m.highlights[i]) > 0 {
			title = highlightTitle(title, m.highlights[i])
		}

		marker := "  "
		if r.video != nil && m.lib.IsFavorite(r.video.ID) {
			marker = styleFavorite.Render("★ ")
		}

		line := marker + title
		if r.detail != "" {
			line += styleDim.Render("  " + r.detail)
		}
		if i == m.cursor {
			line = styleSelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// highlightTitle underlines the matched rune positions.
func highlightTitle(title string, indexes []int) string {
	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i, r := range []rune(title) {
		if matched[i] {
			b.WriteString(styleMatch.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m Model) statusView() string {
	if m.errMsg != "" {
		return styleError.Render(" " + m.errMsg + "  (r to retry)")
	}
	if m.scanning {
		return styleStatus.Render(m.spin.View() + " scanning...")
	}
	status := fmt.Sprintf("%d videos", len(m.lib.AllVideos()))
	if d := m.lib.ScanDurationMs(); d > 0 {
		status += fmt.Sprintf("  scanned in %dms", d)
	}
	status += "  ·  enter play · f fav · / search · r rescan · q quit"
	return styleStatus.Render(status)
}

func (m Model) deniedView() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Storage access required"))
	b.WriteString("\n\n")
	b.WriteString("  reel cannot read your video storage.\n")
	if err := m.perm.OpenSettings(); err != nil {
		b.WriteString(styleDim.Render("  " + err.Error() + "\n"))
	}
	b.WriteString("\n")
	b.WriteString(styleStatus.Render("r retry · q quit"))
	return b.String()
}
