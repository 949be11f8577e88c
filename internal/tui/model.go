// Package tui is the terminal front end of `lexigon play`.
//
// The model owns one game.State and replaces it after every key press with
// the result of a single core transition. A rejected submission clears the
// candidate; a rejected hint leaves the state untouched. Completing a puzzle
// shows a win message and starts a new one from the same word list.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/words"
)

// Model is the bubbletea model of the game screen.
type Model struct {
	catalog *words.Catalog
	names   []string
	current int // index into names

	state game.State
	rng   game.Rand
	opts  []game.Option

	keys keyMap
	help help.Model
	bar  progress.Model

	message string
	failed  bool
}

// New starts a puzzle on the named word list (or the catalog default).
func New(catalog *words.Catalog, wordlist string, rng game.Rand, opts ...game.Option) Model {
	name, wl := catalog.Default(wordlist)
	names := catalog.Names()
	return Model{
		catalog: catalog,
		names:   names,
		current: lo.IndexOf(names, name),
		state:   game.NewFromWordlist(wl, rng, opts...),
		rng:     rng,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// State is the current game state.
func (m Model) State() game.State { return m.state }

// Wordlist is the name of the word list in play.
func (m Model) Wordlist() string { return m.names[m.current] }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-8, 60))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit()
		case key.Matches(msg, m.keys.Hint):
			m.hint()
		case key.Matches(msg, m.keys.Clear):
			m.state = m.state.ClearCandidate()
			m.notify("", false)
		case key.Matches(msg, m.keys.Switch):
			m.switchWordlist()
		case key.Matches(msg, m.keys.Reset):
			m.state = m.state.Reset()
			m.notify("New puzzle.", false)
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			m.addLetter(msg.Runes[0])
		}
	}
	return m, nil
}

func (m *Model) notify(text string, failed bool) {
	m.message = text
	m.failed = failed
}

// addLetter appends r to the candidate. Keys that are not on the board are
// refused here; the engine only checks letters on submit.
func (m *Model) addLetter(r rune) {
	r = unicode.ToLower(r)
	if !m.state.Lexigon().Allows(r) {
		m.notify(describe(game.ErrDisallowedLetter), true)
		return
	}
	next, err := m.state.AddLetter(string(r))
	if err != nil {
		m.notify(describe(err), true)
		return
	}
	m.state = next
	m.notify("", false)
}

func (m *Model) submit() {
	next, err := m.state.AddMove()
	if err != nil {
		m.state = m.state.ClearCandidate()
		m.notify(describe(err), true)
		return
	}
	if next.Completed() {
		m.notify(fmt.Sprintf("You won with %d moves! Here is a new puzzle.", next.Moves().Len()), false)
		m.state = next.Reset()
		return
	}
	m.state = next
	moves := next.Moves().Slice()
	last := moves[len(moves)-1]
	m.notify(fmt.Sprintf("%s +%d", last.Word, last.Points), false)
}

func (m *Model) hint() {
	next, err := m.state.RequestHint()
	if err != nil {
		m.notify(describe(err), true)
		return
	}
	m.state = next
	m.notify(fmt.Sprintf("Hint cost %d points.", next.Hint().Revealed()), false)
}

func (m *Model) switchWordlist() {
	if len(m.names) < 2 {
		m.notify("There is only one word list.", true)
		return
	}
	m.current = (m.current + 1) % len(m.names)
	wl, _ := m.catalog.Get(m.names[m.current])
	m.state = game.NewFromWordlist(wl, m.rng, m.opts...)
	m.notify("Switched to "+m.names[m.current]+".", false)
}

// describe turns core errors into player messages.
func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrMissingMandatory):
		return "Words must contain the center letter."
	case errors.Is(err, game.ErrDisallowedLetter):
		return "Only the letters on the board are allowed."
	case errors.Is(err, game.ErrNotInWordlist):
		return "Not in the word list."
	case errors.Is(err, game.ErrTooShort):
		return fmt.Sprintf("Words need at least %d letters.", game.MinWordLength)
	case errors.Is(err, game.ErrDuplicateMove):
		return "Already found."
	case errors.Is(err, game.ErrInsufficientPoints):
		return "Not enough points for a hint."
	case errors.Is(err, game.ErrNoLeftoverWords):
		return "No words left to hint."
	default:
		return err.Error()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.state
	var b strings.Builder

	b.WriteString(titleStyle.Render("LEXIGON · " + m.Wordlist()))
	b.WriteString("\n")
	b.WriteString(rulesStyle.Render(game.Rules))
	b.WriteString("\n\n")
	b.WriteString(boardStyle.Render(board(st.Lexigon())))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Word: "))
	b.WriteString(candidateStyle.Render(strings.ToUpper(st.Candidate()) + "_"))
	b.WriteString("\n")

	if h := st.Hint(); h.Revealed() > 0 {
		b.WriteString(labelStyle.Render("Hint: "))
		b.WriteString(strings.ToUpper(h.String()) + "…")
		b.WriteString("\n")
	}

	found := lo.Map(st.Moves().Slice(), func(mv game.Move, _ int) string {
		return fmt.Sprintf("%s (%d)", mv.Word, mv.Points)
	})
	b.WriteString(labelStyle.Render(fmt.Sprintf("Found %d: ", len(found))))
	b.WriteString(wordStyle.Render(strings.Join(found, ", ")))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Score: "))
	b.WriteString(fmt.Sprintf("%d / %d", st.Score(), st.MaxPoints()))
	if p := st.TotalPenalty(); p > 0 {
		b.WriteString(fmt.Sprintf("  (hint penalty %d)", p))
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(st.Progress()))
	b.WriteString("\n\n")

	if m.message != "" {
		style := successStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// board lays the letters out as a honeycomb around the mandatory one.
func board(lx *game.Lexigon) string {
	cells := lo.Map(lx.Optional(), func(r rune, _ int) string {
		return optionalStyle.Render(strings.ToUpper(string(r)))
	})
	center := mandatoryStyle.Render(strings.ToUpper(string(lx.Mandatory())))
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, cells[0], "  ", cells[1]),
		lipgloss.JoinHorizontal(lipgloss.Center, cells[2], " ", center, " ", cells[3]),
		lipgloss.JoinHorizontal(lipgloss.Center, cells[4], "  ", cells[5]),
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
