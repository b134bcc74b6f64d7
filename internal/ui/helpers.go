package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voyago/voyago/internal/santsg"
)

func matches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// stripHTML reduces embedded markup to plain text. Block-level closers
// become newlines so paragraph structure survives.
func stripHTML(s string) string {
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, "<br/>", "\n")
	s = strings.ReplaceAll(s, "<br />", "\n")
	s = strings.ReplaceAll(s, "</p>", "\n")
	s = htmlTagRE.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	return strings.TrimSpace(s)
}

func formatPrice(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func starLabel(stars float64) string {
	n := int(stars)
	if n <= 0 {
		return "—"
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func padLabel(label string) string {
	return fmt.Sprintf("%-12s", label)
}

// wrap performs naive word wrapping for viewport content.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	length := 0
	for i, word := range words {
		wl := len([]rune(word))
		if i > 0 && length+1+wl > width {
			b.WriteString("\n")
			length = 0
		} else if i > 0 {
			b.WriteString(" ")
			length++
		}
		b.WriteString(word)
		length += wl
	}
	return b.String()
}

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}

func indexOfNationality(nats []santsg.Nationality, id string) int {
	for i, n := range nats {
		if n.ID == id {
			return i
		}
	}
	return 0
}

func indexOfCurrency(curs []santsg.Currency, code string) int {
	for i, c := range curs {
		if c.Code == code {
			return i
		}
	}
	return 0
}
