package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdiallo/woyofal/internal/engine"
	"github.com/sdiallo/woyofal/internal/format"
)

// borderPadding accounts for the box border when sizing content.
const borderPadding = 2

// modeLabels maps each input mode to its selector caption.
var modeLabels = map[engine.Mode]string{
	engine.ModeEnergy: "Energy (kWh)",
	engine.ModePower:  "Power × hours",
	engine.ModeCost:   "Amount (FCFA)",
}

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTabBar())

	switch m.tab {
	case TabEstimate:
		sections = append(sections, m.renderEstimateTab())
	case TabAppliance:
		sections = append(sections, m.renderApplianceTab())
	case TabSettings:
		sections = append(sections, m.renderSettingsTab())
	}

	if t := m.toast.View(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTabBar() string {
	labels := []string{"Estimate", "Appliances", "Settings"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := TabStyle
		if Tab(i) == m.tab {
			style = ActiveTabStyle
		}
		parts[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderEstimateTab shows the mode selector, the mode's input fields and
// the tier breakdown for the current snapshot.
func (m *Model) renderEstimateTab() string {
	var content strings.Builder

	selector := LabelStyle.Render("Mode:  ")
	caption := modeLabels[modes[m.mode]]
	if m.focus == 0 {
		selector += ActiveTabStyle.Render("< " + caption + " >")
	} else {
		selector += ValueStyle.Render(caption)
	}
	content.WriteString(selector)
	content.WriteString("\n\n")

	for i, field := range m.estimateFields() {
		content.WriteString(LabelStyle.Render(estimateFieldLabel(modes[m.mode], i)))
		content.WriteString(field.View())
		content.WriteString("\n")
	}
	content.WriteString("\n")

	est, err := m.session.Estimate()
	if err != nil {
		content.WriteString(ErrorStyle.Render(err.Error()))
		return BoxStyle.Width(m.width - borderPadding).Render(content.String())
	}

	content.WriteString(HeaderStyle.Render("MONTHLY BREAKDOWN"))
	content.WriteString("\n")
	for _, slice := range est.Breakdown {
		content.WriteString(fmt.Sprintf("%s  %10s × %8s = %s\n",
			LabelStyle.Render(fmt.Sprintf("Tier %d", slice.Tier)),
			format.Energy(slice.Energy),
			format.Price(slice.Price),
			ValueStyle.Render(format.Currency(slice.Cost)),
		))
	}
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Energy: "))
	content.WriteString(ValueStyle.Render(format.Energy(est.EnergyKWh)))
	content.WriteString(LabelStyle.Render("   Total: "))
	content.WriteString(TotalStyle.Render(format.Currency(est.Total)))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func estimateFieldLabel(mode engine.Mode, index int) string {
	switch mode {
	case engine.ModePower:
		if index == 0 {
			return "Power:   "
		}
		return "Hours:   "
	case engine.ModeCost:
		return "Amount:  "
	case engine.ModeEnergy:
		return "Energy:  "
	default:
		return ""
	}
}

// renderApplianceTab shows the wattage field and the comparative
// projection table.
func (m *Model) renderApplianceTab() string {
	var content strings.Builder

	content.WriteString(LabelStyle.Render("Wattage: "))
	content.WriteString(m.applianceInput.View())
	content.WriteString("\n\n")

	if len(m.applianceRows()) == 0 {
		content.WriteString(LabelStyle.Render("Enter a positive wattage to project appliance costs."))
	} else {
		content.WriteString(m.applianceTable.View())
	}

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

// renderSettingsTab shows the editable tariff fields.
func (m *Model) renderSettingsTab() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("TARIFF"))
	content.WriteString("\n\n")

	labels := []string{"Days/month:   ", "Tier 1 price: ", "Tier 2 price: ", "Tier 3 price: "}
	for i, field := range m.settingsFields() {
		content.WriteString(LabelStyle.Render(labels[i]))
		content.WriteString(field.View())
		content.WriteString("\n")
	}

	if err := m.session.Rates().Validate(); err != nil {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render(err.Error()))
	}

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func (m *Model) renderHelp() string {
	return HelpStyle.Render(
		"tab: switch view • ↑/↓: field • ←/→: mode • ctrl+x: copy CSV • ctrl+r: reset tariff • esc: quit")
}

// newApplianceTable builds the projection table for the given rows.
func newApplianceTable(rows []engine.ApplianceRow) table.Model {
	columns := []table.Column{
		{Title: "Usage", Width: 10},
		{Title: "kWh/month", Width: 12},
		{Title: "@ Tier 1", Width: 14},
		{Title: "@ Tier 2", Width: 14},
		{Title: "@ Tier 3", Width: 14},
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row{
			fmt.Sprintf("%gh/day", row.HoursPerDay),
			format.Energy(row.EnergyKWh),
			format.Currency(row.CostT1),
			format.Currency(row.CostT2),
			format.Currency(row.CostT3),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(applianceTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
