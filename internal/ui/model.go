package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/logic"
	"hnsearch/internal/session"
	"hnsearch/internal/ui/input"
	inputtypes "hnsearch/internal/ui/input/types"
	"hnsearch/internal/ui/views"
)

// activityLines is how many activity entries the popup shows
const activityLines = 20

// chromeHeight is the number of lines around the result list: padding,
// form, gaps, the more control, status and help.
const chromeHeight = 16

// Searcher fetches one page of results for a term
type Searcher interface {
	Search(ctx context.Context, term string, page int) (domain.Page, error)
}

// Model represents the UI state
type Model struct {
	state    session.State
	searcher Searcher
	bus      eventbus.EventBus
	activity logic.ActivityStore
	config   *config.Config
	logger   *slog.Logger
	ctx      context.Context

	// UI-specific state not in session.State
	width        int
	height       int
	selected     int
	showActivity bool
	popup        string // pager fallback content
	inPagerMode  bool

	styles       *views.Styles
	help         help.Model
	spinner      spinner.Model
	inputHandler *input.Handler
	pager        *Pager
}

// NewModel creates a new UI model searching cfg.DefaultTerm on start
func NewModel(ctx context.Context, cfg *config.Config, searcher Searcher, bus eventbus.EventBus, activity logic.ActivityStore, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	term := cfg.DefaultTerm
	if term == "" {
		term = session.DefaultTerm
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	styles := views.NewStyles()
	s.Style = styles.Loading

	return &Model{
		state:        session.New(term),
		searcher:     searcher,
		bus:          bus,
		activity:     activity,
		config:       cfg,
		logger:       logger,
		ctx:          ctx,
		styles:       styles,
		help:         help.New(),
		spinner:      s,
		inputHandler: input.New(term),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// State returns the current session state
func (m *Model) State() session.State {
	return m.state
}

// Init mounts the session, which fetches the default term
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.dispatch(session.Mounted{}), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case fetchResultMsg:
		return m, m.handleFetchResult(msg)

	case dismissMsg:
		return m, m.dismiss(msg.id)

	case spinner.TickMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.logger.Warn("pager failed, falling back to popup", "title", msg.title, "err", msg.err)
			m.popup = msg.content
		}
		return m, nil
	}

	// cursor blink and friends
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Popups swallow keys until closed
	if m.popup != "" || m.showActivity {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "esc", "q", "l", "enter":
			m.popup = ""
			m.showActivity = false
		}
		return nil
	}

	ctx := input.ListContext{Selected: m.selected, Items: m.visibleItems()}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		return m.dispatch(session.InputChanged{Term: a.Text})

	case inputtypes.SubmitTextAction:
		key := domain.SearchKey(a.Text)
		cached := !m.state.NeedsFetch(key)
		m.selected = 0
		m.publish(domain.SearchSubmittedEvent{Key: key, Cached: cached})
		return m.dispatch(session.Submitted{Term: a.Text})

	case inputtypes.DismissAction:
		return m.listParams().Dismiss(m.indexOf(a.ItemID))

	case inputtypes.LoadMoreAction:
		return m.dispatch(session.LoadMore{})

	case inputtypes.ShowDetailsAction:
		if i := m.indexOf(a.ItemID); i >= 0 {
			return m.showInPager("details", RenderItemDetails(m.visibleItems()[i]))
		}

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.ShowHelpPagerAction:
		return m.showInPager("help", RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.ToggleActivityAction:
		m.showActivity = !m.showActivity

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// dispatch runs e through the session reducer and turns the resulting
// fetch effects into commands
func (m *Model) dispatch(e session.Event) tea.Cmd {
	next, effects := session.Reduce(m.state, e)
	m.state = next
	m.clampSelection()

	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		m.publish(domain.FetchStartedEvent{Key: effect.Key, Page: effect.Page, RequestID: effect.RequestID})
		cmds = append(cmds, m.fetch(effect))
	}
	return tea.Batch(cmds...)
}

// fetch returns a command that performs effect against the searcher
func (m *Model) fetch(effect session.FetchEffect) tea.Cmd {
	searcher := m.searcher
	ctx := m.ctx
	return func() tea.Msg {
		page, err := searcher.Search(ctx, string(effect.Key), effect.Page)
		return fetchResultMsg{effect: effect, page: page, err: err}
	}
}

func (m *Model) handleFetchResult(msg fetchResultMsg) tea.Cmd {
	e := msg.effect
	if !m.state.IsLatest(e.Key, e.RequestID) {
		m.logger.Debug("discarding stale response", "key", e.Key, "request", e.RequestID)
		m.publish(domain.ResponseDiscardedEvent{Key: e.Key, RequestID: e.RequestID})
		return nil
	}

	if msg.err != nil {
		m.logger.Error("search failed", "key", e.Key, "page", e.Page, "err", msg.err)
		m.publish(domain.FetchFailedEvent{Key: e.Key, Page: e.Page, RequestID: e.RequestID, Err: msg.err})
		return m.dispatch(session.FetchFailed{Key: e.Key, RequestID: e.RequestID, Err: msg.err})
	}

	m.logger.Debug("search succeeded", "key", e.Key, "page", msg.page.Page, "hits", len(msg.page.Hits))
	m.publish(domain.FetchSucceededEvent{Key: e.Key, Page: msg.page.Page, RequestID: e.RequestID, Hits: len(msg.page.Hits)})
	return m.dispatch(session.FetchSucceeded{Key: e.Key, RequestID: e.RequestID, Page: msg.page})
}

func (m *Model) dismiss(id string) tea.Cmd {
	if m.indexOf(id) < 0 {
		return nil
	}
	m.publish(domain.ItemDismissedEvent{Key: m.state.ActiveKey, ItemID: id})
	return m.dispatch(session.Dismissed{ID: id})
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	pager := m.pager
	if pager == nil || pager.program == nil {
		return func() tea.Msg {
			return pagerMsg{title: title, content: content, err: errNoProgram}
		}
	}
	return func() tea.Msg {
		pager.program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		pager.program.Send(resumeRenderingMsg{})
		return pagerMsg{title: title, content: content, err: err}
	}
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// visibleItems returns the rows on screen; none while the error notice
// replaces the list
func (m *Model) visibleItems() []domain.Item {
	if m.state.LastError != nil {
		return nil
	}
	return m.state.Items()
}

func (m *Model) indexOf(id string) int {
	for i, it := range m.visibleItems() {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) navigate(direction string) {
	count := len(m.visibleItems())
	if count == 0 {
		return
	}
	page := m.listHeight() / 2
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		m.selected--
	case "down":
		m.selected++
	case "pageup":
		m.selected -= page
	case "pagedown":
		m.selected += page
	case "home":
		m.selected = 0
	case "end":
		m.selected = count - 1
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	count := len(m.state.Items())
	if m.selected >= count {
		m.selected = count - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) listHeight() int {
	h := m.height - chromeHeight
	if h < 2 {
		h = 2
	}
	return h
}

func (m *Model) listParams() views.ResultListParams {
	return views.ResultListParams{
		Items:    m.state.Items(),
		Selected: m.selected,
		Focused:  m.inputHandler.CurrentMode() == inputtypes.ModeNormal,
		Width:    m.width - m.styles.Main.GetHorizontalFrameSize(),
		Height:   m.listHeight(),
		OnDismiss: func(id string) tea.Cmd {
			return func() tea.Msg { return dismissMsg{id: id} }
		},
		Styles: m.styles,
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.popup != "" {
		return views.RenderPopup(m.popup+"\n\n"+m.styles.Help.Render("esc to close"), m.width, m.height, m.styles.LogBox)
	}
	if m.showActivity && m.activity != nil {
		return views.RenderPopup(views.RenderActivity(m.activity.Recent(activityLines), m.styles), m.width, m.height, m.styles.LogBox)
	}

	searching := m.inputHandler.CurrentMode() == inputtypes.ModeSearch
	form := views.RenderSearchForm(views.SearchFormParams{
		Input:   m.inputHandler.TextInput().View(),
		Label:   m.config.UISettings.SubmitLabel,
		Focused: searching,
		Width:   m.width - m.styles.Main.GetHorizontalFrameSize(),
		Styles:  m.styles,
	})

	empty := "No results."
	if m.state.Loading(m.state.ActiveKey) {
		empty = "Loading…"
	}

	page := views.PageParams{
		Title:  "Hacker News",
		Form:   form,
		List:   views.RenderResultList(m.listParams()),
		Empty:  empty,
		Err:    m.state.LastError,
		More:   m.config.UISettings.MoreLabel,
		Status: m.statusLine(),
		Width:  m.width,
		Height: m.height,
		Styles: m.styles,
	}
	if m.config.UISettings.ShowHelp {
		if searching {
			page.Help = m.help.View(inputtypes.SearchKeys{KeyMap: m.inputHandler.Keys()})
		} else {
			page.Help = m.help.View(m.inputHandler.Keys())
		}
	}
	return views.RenderPage(page)
}

func (m *Model) statusLine() string {
	key := m.state.ActiveKey
	status := fmt.Sprintf("%q · %d items", string(key), len(m.state.Items()))
	if entry, ok := m.state.Entry(key); ok {
		if entry.NbPages > 0 {
			status += fmt.Sprintf(" · page %d/%d · %d hits", entry.Page+1, entry.NbPages, entry.NbHits)
		} else {
			status += fmt.Sprintf(" · page %d", entry.Page+1)
		}
	}
	status += fmt.Sprintf(" · %d cached", m.state.Keys())
	if m.state.Loading(key) {
		status = m.spinner.View() + " " + status
	}
	return status
}
