package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/sampler/internal/fibonacci"
)

// InvalidInputMessage is shown for empty, negative or non-numeric input.
const InvalidInputMessage = "Please enter a valid non-negative number."

// outcome is the banner shown under the input.
type outcome struct {
	ok       bool
	n        int
	sequence string
	message  string
}

// Model is the bubbletea model of the form.
type Model struct {
	input   textinput.Model
	keymap  KeyMap
	maxN    int
	width   int
	outcome *outcome
}

// NewModel creates a form accepting indices up to maxN.
func NewModel(maxN int) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 10"
	ti.CharLimit = len(strconv.Itoa(maxN)) + 1
	ti.Width = 12
	ti.Prompt = "n = "
	ti.Focus()

	return Model{
		input:  ti,
		keymap: DefaultKeyMap(),
		maxN:   maxN,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			m.outcome = m.evaluate(m.input.Value())
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.input.Reset()
			m.outcome = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate validates raw and computes the sequence.
func (m Model) evaluate(raw string) *outcome {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return &outcome{message: InvalidInputMessage}
	}
	if n > m.maxN {
		return &outcome{message: fmt.Sprintf("Please enter a number no greater than %d.", m.maxN)}
	}
	seq, err := fibonacci.Sequence(n)
	if err != nil {
		return &outcome{message: InvalidInputMessage}
	}
	return &outcome{ok: true, n: n, sequence: fibonacci.Join(seq, ", ")}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fibonacci Sequence Generator"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if o := m.outcome; o != nil {
		style := bannerStyle
		if m.width > 4 {
			style = style.Width(m.width - 4)
		}
		if o.ok {
			b.WriteString(style.Render(successStyle.Render(
				fmt.Sprintf("Fibonacci sequence up to %d:\n%s", o.n, o.sequence))))
		} else {
			b.WriteString(style.Render(errorStyle.Render(o.message)))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%s %s • %s %s • %s %s",
		m.keymap.Submit.Help().Key, m.keymap.Submit.Help().Desc,
		m.keymap.Clear.Help().Key, m.keymap.Clear.Help().Desc,
		m.keymap.Quit.Help().Key, m.keymap.Quit.Help().Desc)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the form and blocks until the user quits or ctx is done.
//
// Parameters:
//   - ctx: Cancelling ctx stops the program.
//   - maxN: The largest accepted index.
//   - in: The input source, usually os.Stdin.
//   - out: The output destination, usually os.Stdout.
//
// Returns:
//   - error: An error if the program fails, nil on a normal quit.
func Run(ctx context.Context, maxN int, in io.Reader, out io.Writer) error {
	initStyles()
	p := tea.NewProgram(NewModel(maxN),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
