package viz

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/grid"
	"github.com/san-kum/folio/internal/host"
	"github.com/san-kum/folio/internal/logo"
	"github.com/san-kum/folio/internal/repos"
	"github.com/san-kum/folio/internal/scene"
)

const fetchTimeout = 15 * time.Second

// Fetcher lists a user's public repositories.
type Fetcher interface {
	List(ctx context.Context, username string) ([]repos.Repository, error)
}

// FrameMsg is one refresh callback of the frame loop.
type FrameMsg time.Time

type projectsMsg struct {
	projects []repos.Repository
	err      error
}

type Model struct {
	cfg     *config.Config
	theme   Theme
	styles  Styles
	fetcher Fetcher

	scheduler *scene.Scheduler
	logo      *logo.Engine
	visible   *host.Visibility
	animFrame grid.Frame
	logoFrame grid.Frame

	projects []repos.Repository
	loading  bool
	err      error
	category string
	page     int

	offset        int
	width, height int
	year          int
	quitting      bool
}

// NewModel builds the page for cfg. A nil fetcher leaves the projects panel empty.
func NewModel(cfg *config.Config, fetcher Fetcher) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	seq, err := scene.NewRegistry().Build(cfg.SceneSpecs()...)
	if err != nil {
		return Model{}, err
	}
	sched, err := scene.NewScheduler(seq)
	if err != nil {
		return Model{}, err
	}
	engine := logo.NewEngine(nil, cfg.LogoTiming())
	theme := GetTheme(cfg.Theme)

	return Model{
		cfg:       cfg,
		theme:     theme,
		styles:    NewStyles(theme),
		fetcher:   fetcher,
		scheduler: sched,
		logo:      engine,
		visible:   host.NewVisibility(cfg.Logo.VisibilityThreshold, func() { engine.Start() }),
		animFrame: sched.Blank(),
		logoFrame: engine.Blank(),
		loading:   fetcher != nil,
		category:  repos.All,
		page:      1,
		width:     80,
		height:    24,
		year:      time.Now().Year(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.nextFrame(), m.fetch())
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.RefreshRate), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) fetch() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	f, username := m.fetcher, m.cfg.Username
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		list, err := f.List(ctx, username)
		return projectsMsg{projects: list, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll(0)
		m.observe()
	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		now := time.Time(msg)
		if f, ok := m.scheduler.Advance(now); ok {
			m.animFrame = f
		}
		if f, ok := m.logo.Advance(now); ok {
			m.logoFrame = f
		}
		return m, m.nextFrame()
	case projectsMsg:
		m.loading = false
		m.projects, m.err = msg.projects, msg.err
		if msg.err != nil {
			log.Printf("projects: %v", msg.err)
		} else {
			log.Printf("projects: loaded %d repositories for %s", len(msg.projects), m.cfg.Username)
		}
		m.scroll(0)
		m.observe()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		m.visible.Disconnect()
		return m, tea.Quit
	case "j", "down":
		m.scroll(1)
	case "k", "up":
		m.scroll(-1)
	case "pgdown", " ":
		m.scroll(m.viewHeight() / 2)
	case "pgup":
		m.scroll(-m.viewHeight() / 2)
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.scroll(len(m.layout().lines))
	case "l", "right":
		m.shiftCategory(1)
	case "h", "left":
		m.shiftCategory(-1)
	case "]":
		m.page = m.currentPage().Number + 1
		m.page = m.currentPage().Number
	case "[":
		m.page = m.currentPage().Number - 1
		m.page = m.currentPage().Number
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
	}
	m.observe()
	return m, nil
}

func (m Model) viewHeight() int { return max(1, m.height-1) }

func (m *Model) scroll(delta int) {
	limit := max(0, len(m.layout().lines)-m.viewHeight())
	m.offset = max(0, min(m.offset+delta, limit))
}

// observe reports how much of the logo section is on screen to the visibility
// trigger until it fires. The share is taken of what fits in the viewport, so a
// terminal shorter than the logo can still start it.
func (m Model) observe() {
	if !m.visible.Connected() {
		return
	}
	l := m.layout()
	m.visible.Observe(host.FittedRatio(l.logoTop, l.logoHeight, m.offset, m.viewHeight()))
}

func (m *Model) shiftCategory(delta int) {
	cats := repos.Categories(m.projects)
	i := 0
	for j, c := range cats {
		if c.Name == m.category {
			i = j
		}
	}
	i = max(0, min(i+delta, len(cats)-1))
	if cats[i].Name != m.category {
		m.category = cats[i].Name
		m.page = 1
	}
}

func (m Model) currentPage() repos.Page {
	return repos.Paginate(repos.Filter(m.projects, m.category), m.page, m.cfg.PerPage)
}

// Run shows the page full screen until the user quits.
func Run(cfg *config.Config, fetcher Fetcher) error {
	m, err := NewModel(cfg, fetcher)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
