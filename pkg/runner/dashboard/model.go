package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"daykeep/pkg/app"
	"daykeep/pkg/journal"
	"daykeep/pkg/printers"
	"daykeep/pkg/quests"
	"daykeep/pkg/theme"
	"daykeep/pkg/week"
)

type tab int

const (
	tabSleep tab = iota
	tabJournal
	tabQuests
)

var tabNames = []string{"Sleep", "Journal", "Quests"}

// snapshot is everything the dashboard renders, loaded in one pass so a
// refresh swaps the whole view atomically.
type snapshot struct {
	report app.WeekReport
	latest *journal.Entry
	state  *quests.State
	err    error
}

type refreshMsg struct {
	snap snapshot
}

// storeChangedMsg arrives when the store watcher reports a write from another
// process.
type storeChangedMsg struct{}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Refresh: key.NewBinding(key.WithKeys("r")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	title       lipgloss.Style
	muted       lipgloss.Style
	body        lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	accent := lipgloss.Color(th.Accent)
	muted := lipgloss.Color(th.Muted)
	return styles{
		activeTab:   lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		muted:       lipgloss.NewStyle().Foreground(muted),
		body:        lipgloss.NewStyle().Padding(1, 2),
	}
}

// Model is the dashboard program: three read-only tabs over the current
// week, refreshed when the underlying store changes.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	keys keyMap
	st   styles

	active tab
	width  int
	snap   snapshot
}

// NewModel builds the dashboard over the given service and theme.
func NewModel(ctx context.Context, svc *app.Service, th theme.Theme) Model {
	return Model{
		svc:  svc,
		ctx:  ctx,
		keys: defaultKeyMap(),
		st:   newStyles(th),
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh
}

func (m Model) refresh() tea.Msg {
	var snap snapshot
	r, err := m.svc.WeekReport(m.ctx)
	if err != nil {
		snap.err = err
		return refreshMsg{snap: snap}
	}
	snap.report = r

	if e, err := m.svc.LatestJournal(m.ctx); err == nil {
		snap.latest = e
	} else if !errors.Is(err, app.ErrNoEntry) {
		snap.err = err
	}
	if s, err := m.svc.Quests(m.ctx); err == nil {
		snap.state = s
	} else {
		snap.err = err
	}
	return refreshMsg{snap: snap}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case refreshMsg:
		m.snap = msg.snap
		return m, nil
	case storeChangedMsg:
		return m, m.refresh
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.active = (m.active + 1) % tab(len(tabNames))
		case key.Matches(msg, m.keys.PrevTab):
			m.active = (m.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh
		default:
			switch msg.String() {
			case "1":
				m.active = tabSleep
			case "2":
				m.active = tabJournal
			case "3":
				m.active = tabQuests
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")

	if m.snap.err != nil {
		b.WriteString(m.st.body.Render(fmt.Sprintf("error: %v", m.snap.err)))
		b.WriteString("\n")
	} else {
		var body string
		switch m.active {
		case tabSleep:
			body = m.viewSleep()
		case tabJournal:
			body = m.viewJournal()
		case tabQuests:
			body = m.viewQuests()
		}
		b.WriteString(m.st.body.Render(body))
		b.WriteString("\n")
	}

	b.WriteString(m.st.muted.Render("tab/1-3 switch · r refresh · q quit"))
	return b.String()
}

func (m Model) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts[i] = m.st.activeTab.Render(name)
		} else {
			parts[i] = m.st.inactiveTab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewSleep() string {
	r := m.snap.report
	var b strings.Builder
	b.WriteString(m.st.title.Render(fmt.Sprintf("Week of %s", r.Window.Start)))
	b.WriteString("\n\n")

	labels := week.Labels()
	s := r.Sleep
	for i := 0; i < week.Days; i++ {
		v := 0.0
		if s.Present[i] {
			v = s.Values[i]
		}
		bar := printers.BarRow(v, s.Max(), barWidth)
		if s.Present[i] {
			b.WriteString(fmt.Sprintf("%s %-*s %4.1fh\n", labels[i], barWidth, bar, v))
		} else {
			b.WriteString(fmt.Sprintf("%s %-*s    -\n", labels[i], barWidth, ""))
		}
	}
	if s.Count() > 0 {
		b.WriteString("\n")
		b.WriteString(m.st.muted.Render(fmt.Sprintf("avg %.1fh over %d night(s)", s.Average(), s.Count())))
	}
	return b.String()
}

const barWidth = 30

func (m Model) viewJournal() string {
	r := m.snap.report
	var b strings.Builder
	b.WriteString(m.st.title.Render(fmt.Sprintf("Journaled %d/%d days this week", r.JournalDays, week.Days)))
	b.WriteString("\n\n")

	labels := week.Labels()
	for i, mood := range r.Moods {
		b.WriteString(fmt.Sprintf("%s %s  ", labels[i], mood.Symbol()))
	}
	b.WriteString("\n\n")

	if m.snap.latest == nil {
		b.WriteString(m.st.muted.Render("no entries yet"))
		return b.String()
	}
	e := m.snap.latest
	b.WriteString(m.st.title.Render(fmt.Sprintf("Latest: %s %s", e.Date, e.Mood.Symbol())))
	b.WriteString("\n")
	wrap := m.width - 8
	if wrap < 20 {
		wrap = 60
	}
	b.WriteString(wordwrap.String(e.Text, wrap))
	return b.String()
}

func (m Model) viewQuests() string {
	st := m.snap.state
	var b strings.Builder
	if st == nil {
		return m.st.muted.Render("no quest data")
	}
	g := st.Game
	b.WriteString(m.st.title.Render(fmt.Sprintf("Level %d · HP %d/%d · XP %d/%d",
		g.Level, g.Health, quests.MaxHealth, g.XP, g.NextLevelXP())))
	b.WriteString("\n\n")

	for _, kind := range []quests.Kind{quests.KindTodo, quests.KindDaily, quests.KindHabit} {
		tasks := st.ByKind(kind)
		if len(tasks) == 0 {
			continue
		}
		b.WriteString(m.st.muted.Render(string(kind) + "s"))
		b.WriteString("\n")
		for _, t := range tasks {
			line := fmt.Sprintf("  %s %s", t.Bullet().String(), t.Title)
			if t.Kind != quests.KindTodo && t.Streak > 0 {
				line += m.st.muted.Render(fmt.Sprintf("  (streak %d)", t.Streak))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
