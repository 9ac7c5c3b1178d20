// Command herotui is a terminal editor for the home page hero settings.
// It edits the same hero_settings row the site renders from, with a
// live preview of the markup the current values would produce.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"docsite/models"
	"docsite/views/components"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldHeading = iota
	fieldSubheading
	fieldClassNames
	fieldCustomStyles
	fieldCount
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
			Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var fieldLabels = [fieldCount]string{
	"Heading",
	"Subheading",
	"Class names",
	"Custom styles (JSON)",
}

type model struct {
	inputs      [fieldCount]textinput.Model
	showGraphic bool
	focus       int
	status      string
	statusIsErr bool
}

func initialModel(settings *models.HeroSettings) model {
	m := model{showGraphic: settings.ShowGraphic}

	values := [fieldCount]string{
		settings.Heading,
		settings.Subheading,
		settings.ClassNames,
		settings.CustomStyles,
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.SetValue(values[i])
		ti.CharLimit = 256
		ti.Width = 60
		m.inputs[i] = ti
	}
	m.inputs[fieldHeading].Focus()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case "ctrl+g":
			m.showGraphic = !m.showGraphic
			return m, nil

		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// settings builds a HeroSettings from the current field values.
func (m *model) settings() *models.HeroSettings {
	return &models.HeroSettings{
		Heading:      m.inputs[fieldHeading].Value(),
		Subheading:   m.inputs[fieldSubheading].Value(),
		ShowGraphic:  m.showGraphic,
		ClassNames:   m.inputs[fieldClassNames].Value(),
		CustomStyles: m.inputs[fieldCustomStyles].Value(),
	}
}

func (m *model) save() {
	settings := m.settings()
	if err := settings.Save(); err != nil {
		m.status = "Save failed: " + err.Error()
		m.statusIsErr = true
		return
	}
	m.status = "Saved"
	m.statusIsErr = false
}

// preview renders the hero markup the current values would produce.
// Unparseable custom styles preview unstyled, same as the site does.
func (m *model) preview() string {
	settings := m.settings()

	styles := map[string]string{}
	if settings.CustomStyles != "" {
		if err := json.Unmarshal([]byte(settings.CustomStyles), &styles); err != nil {
			styles = nil
		}
	}

	return components.RenderHero(components.HeroConfig{
		Heading:      settings.Heading,
		Subheading:   settings.Subheading,
		ShowGraphic:  settings.ShowGraphic,
		CustomStyles: styles,
		ClassNames:   settings.ClassNames,
	})
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Hero Settings"))
	sb.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		sb.WriteString(labelStyle.Render(fieldLabels[i]))
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	graphic := "off"
	if m.showGraphic {
		graphic = "on"
	}
	sb.WriteString(labelStyle.Render("Decorative graphic (ctrl+g): "))
	sb.WriteString(graphic)
	sb.WriteString("\n\n")

	sb.WriteString(previewStyle.Render(wrapPreview(m.preview(), 76)))
	sb.WriteString("\n\n")

	if m.status != "" {
		if m.statusIsErr {
			sb.WriteString(errorStyle.Render(m.status))
		} else {
			sb.WriteString(statusStyle.Render(m.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(labelStyle.Render("tab: next field  ctrl+s: save  esc: quit"))
	sb.WriteString("\n")

	return sb.String()
}

// wrapPreview hard-wraps the markup so long hero lines don't break the
// bordered preview box.
func wrapPreview(s string, width int) string {
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\n' || col >= width {
			sb.WriteByte('\n')
			col = 0
			if r == '\n' {
				continue
			}
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

func main() {
	if err := models.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer models.CloseDB()

	settings, err := models.GetHeroSettings()
	if err != nil {
		log.Fatal("Failed to load hero settings:", err)
	}

	p := tea.NewProgram(initialModel(settings))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running hero editor:", err)
	}
}
