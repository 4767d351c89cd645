// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fmdiff/fmdiff/internal/changelog"
)

// SelectRecords runs an interactive picker over the export's records and
// returns the two the user chose, or nil if the picker was dismissed.
func SelectRecords(items []changelog.Record, column string) []changelog.Record {
	p := tea.NewProgram(model{items: items, column: column})
	m, _ := p.Run()
	return m.(model).selected
}

type model struct {
	items    []changelog.Record
	column   string
	cursor   int
	selected []changelog.Record
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			m.selected = nil
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if idx := m.indexOf(m.cursor); idx != -1 {
				m.selected = append(m.selected[:idx], m.selected[idx+1:]...)
			} else if len(m.selected) < 2 {
				m.selected = append(m.selected, m.items[m.cursor])
			}
		case "enter":
			if len(m.selected) == 2 {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	s := "Select two records:\n\n"
	for i, rec := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.contains(rec) {
			mark = "x"
		}

		s += fmt.Sprintf("%s [%s] %4d %s %s\n", cursor, mark, i,
			label(rec["id"]), label(rec[m.column]))
	}
	return s + "\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n"
}

// indexOf returns the position of the item under the cursor within the
// selected slice, or -1 when it is not selected.
func (m model) indexOf(cursor int) int {
	for i, rec := range m.selected {
		if sameRecord(rec, m.items[cursor]) {
			return i
		}
	}
	return -1
}

func (m model) contains(rec changelog.Record) bool {
	for _, sel := range m.selected {
		if sameRecord(sel, rec) {
			return true
		}
	}
	return false
}

// sameRecord compares by identity of the underlying map, which is stable for
// records read from one export.
func sameRecord(a, b changelog.Record) bool {
	return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
}

// label renders a record field for a single picker line, truncated so long
// change logs don't wrap.
func label(value interface{}) string {
	if value == nil {
		return "-"
	}
	s := fmt.Sprintf("%v", value)
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
