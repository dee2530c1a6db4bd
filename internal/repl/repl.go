// Package repl is the interactive prompt.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/pbaille/abook/internal/commands"
	"github.com/pbaille/abook/internal/domain"
	"github.com/pbaille/abook/internal/logging"
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	indexStyle    = lipgloss.NewStyle().Faint(true)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Padding(0, 1)
)

// Executor runs command text against the address book
type Executor interface {
	Execute(input string) (commands.Result, []domain.Person, error)
	DisplayPersons() []domain.Person
}

// REPL reads commands line by line with history and line editing
type REPL struct {
	line        *liner.State
	logic       Executor
	historyFile string
	out         io.Writer
}

// New creates a REPL. History is loaded from historyFile when it exists.
func New(l Executor, historyFile string) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	r := &REPL{line: line, logic: l, historyFile: historyFile, out: os.Stdout}
	if f, err := os.Open(historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

// Close saves history and restores the terminal
func (r *REPL) Close() {
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0755); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		} else {
			logging.Warn().Err(err).Msg("save history")
		}
	}
	r.line.Close()
}

// Run loops until exit, Ctrl+C or EOF
func (r *REPL) Run() error {
	Render(r.out, "Welcome! Type help to see available commands.", r.logic.DisplayPersons())

	for {
		input, err := r.line.Prompt(promptStyle.Render("abook> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		r.line.AppendHistory(input)

		res, persons, err := r.logic.Execute(input)
		if err != nil {
			fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
			continue
		}
		Render(r.out, res.Feedback, persons)
		if res.Exit {
			return nil
		}
	}
}

// Render prints feedback followed by the numbered person list
func Render(w io.Writer, feedback string, persons []domain.Person) {
	fmt.Fprintln(w, feedbackStyle.Render(feedback))
	for i, p := range persons {
		fmt.Fprintln(w, formatCard(i+1, p))
	}
}

func formatCard(index int, p domain.Person) string {
	var sb strings.Builder
	sb.WriteString(indexStyle.Render(fmt.Sprintf("%3d.", index)))
	sb.WriteString(" ")
	sb.WriteString(nameStyle.Render(p.Name))
	for _, ct := range p.ClientTypes {
		sb.WriteString(" ")
		sb.WriteString(tagStyle.Render(ct))
	}
	fmt.Fprintf(&sb, "\n     %s  %s\n     %s", p.Phone, p.Email, p.Address)
	return sb.String()
}

var words = []string{
	commands.AddWord, commands.DeleteWord, commands.ClearWord, commands.ListWord,
	commands.FindWord, commands.FindNameWord, commands.FindClientTypeWord,
	commands.HelpWord, commands.ExitWord,
}

func complete(line string) []string {
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, line) {
			out = append(out, w+" ")
		}
	}
	return out
}
