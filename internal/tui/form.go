// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	errCredentialsRequired = "Email and password are required"
	formInputWidth         = 40
)

type formField struct {
	label       string
	placeholder string
	limit       int
	secret      bool
}

// submitFunc gets the raw field values in order and returns either the
// command to run or a message to show under the form.
type submitFunc func(values []string) (tea.Cmd, string)

// credentialsForm is the part shared by the sign-in and register pages:
// focus cycling, the busy spinner and the inline error line.
type credentialsForm struct {
	title      string
	submitText string
	busyText   string

	labels     []string
	inputs     []textinput.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	errMsg     string
}

func newCredentialsForm(title, submitText, busyText string, fields ...formField) credentialsForm {
	f := credentialsForm{
		title:      title,
		submitText: submitText,
		busyText:   busyText,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = formInputWidth
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	return f
}

func (f *credentialsForm) update(msg tea.Msg, submit submitFunc) tea.Cmd {
	switch msg := msg.(type) {
	case LoginResult:
		f.submitting = false
		if msg.Err != nil {
			f.errMsg = humanizeError(msg.Err)
		}
		return nil

	case spinner.TickMsg:
		if !f.submitting {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			f.submitting = false
			f.errMsg = ""
			return func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			f.moveFocus(1)
			return nil
		case "shift+tab", "up":
			f.moveFocus(-1)
			return nil
		case "enter":
			if f.submitting {
				return nil
			}
			values := make([]string, len(f.inputs))
			for i, in := range f.inputs {
				values[i] = in.Value()
			}
			cmd, problem := submit(values)
			if problem != "" {
				f.errMsg = problem
				return nil
			}
			f.errMsg = ""
			f.submitting = true
			return tea.Batch(f.spinner.Tick, cmd)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *credentialsForm) moveFocus(delta int) {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = ((f.focus+delta)%n + n) % n
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) view() string {
	rows := make([][]string, len(f.inputs))
	for i, in := range f.inputs {
		rows[i] = []string{f.labels[i], "[" + in.View() + "]"}
	}
	fields := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		Headers("Field", "Value").
		Rows(rows...).
		Render()

	lines := []string{fields, ""}
	if f.submitting {
		lines = append(lines, f.spinner.View()+" "+f.busyText)
	} else {
		lines = append(lines, "["+f.submitText+"]")
	}
	if f.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(f.errMsg))
	}

	return renderPage(f.title, strings.Join(lines, "\n"), "esc: back │ tab: next field │ enter: submit")
}
