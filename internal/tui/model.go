package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdiallo/woyofal/internal/config"
	"github.com/sdiallo/woyofal/internal/engine"
	"github.com/sdiallo/woyofal/internal/export"
	"github.com/sdiallo/woyofal/internal/logging"
	"github.com/sdiallo/woyofal/internal/share"
)

// Tab identifies one of the session's views.
type Tab int

const (
	// TabEstimate holds the mode selector and input fields.
	TabEstimate Tab = iota
	// TabAppliance holds the wattage field and projection table.
	TabAppliance
	// TabSettings holds the editable tariff.
	TabSettings

	tabCount
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// applianceTableHeight covers the four fixed usage scenarios.
const applianceTableHeight = 6

// modes is the cycling order of the estimate tab's mode selector.
var modes = []engine.Mode{engine.ModeEnergy, engine.ModePower, engine.ModeCost}

// Model is the Bubble Tea model for the interactive session. All
// mutable state — tariff, mode, raw fields — lives here and in the
// engine session; derived values are recomputed through the session's
// snapshot cache on every change.
type Model struct {
	ctx     context.Context
	session *engine.Session
	sharer  share.Sharer

	tab   Tab
	mode  int // index into modes
	focus int // focus row within the active tab; 0 is the selector/first field

	// Estimate tab fields.
	energyInput textinput.Model
	wattsInput  textinput.Model
	hoursInput  textinput.Model
	amountInput textinput.Model

	// Appliance tab.
	applianceInput textinput.Model
	applianceTable table.Model

	// Settings tab fields.
	daysInput textinput.Model
	t1Input   textinput.Model
	t2Input   textinput.Model
	t3Input   textinput.Model

	toast  toast
	width  int
	height int
}

// NewModel creates the session model from a starting tariff.
func NewModel(ctx context.Context, rates config.Rates, sharer share.Sharer) *Model {
	m := &Model{
		ctx:     ctx,
		session: engine.NewSession(rates),
		sharer:  sharer,
		width:   defaultWidth,
		height:  defaultHeight,
	}

	m.energyInput = newField("550", "kWh")
	m.wattsInput = newField("", "watts")
	m.hoursInput = newField("", "hours/day")
	m.amountInput = newField("", "FCFA")
	m.applianceInput = newField("", "watts")
	m.daysInput = newField(formatRate(rates.DaysPerMonth), "")
	m.t1Input = newField(formatRate(rates.PriceT1), "")
	m.t2Input = newField(formatRate(rates.PriceT2), "")
	m.t3Input = newField(formatRate(rates.PriceT3), "")

	m.applianceTable = newApplianceTable(nil)
	m.refocus()
	m.syncSession()
	return m
}

func newField(value, placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 12
	in.Width = 14
	return in
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for session navigation.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.switchTab(1)
		return m, nil

	case tea.KeyShiftTab:
		m.switchTab(-1)
		return m, nil

	case tea.KeyUp:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		// Mode selector on the estimate tab; cursor movement elsewhere.
		if m.tab == TabEstimate && m.focus == 0 {
			delta := 1
			if msg.Type == tea.KeyLeft {
				delta = len(modes) - 1
			}
			m.mode = (m.mode + delta) % len(modes)
			m.focus = 0
			m.refocus()
			m.syncSession()
			return m, nil
		}

	case tea.KeyCtrlR:
		// Reset the tariff to a fresh copy of the defaults.
		m.session.Reset()
		rates := m.session.Rates()
		m.daysInput.SetValue(formatRate(rates.DaysPerMonth))
		m.t1Input.SetValue(formatRate(rates.PriceT1))
		m.t2Input.SetValue(formatRate(rates.PriceT2))
		m.t3Input.SetValue(formatRate(rates.PriceT3))
		m.syncSession()
		return m, m.toast.show("Tariff reset to defaults")

	case tea.KeyCtrlX:
		return m, m.exportActiveTab()
	}

	// Everything else edits the focused field.
	return m, m.updateFocusedField(msg)
}

// switchTab moves between tabs, resetting field focus.
func (m *Model) switchTab(delta int) {
	m.tab = Tab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.focus = 0
	m.refocus()
}

// moveFocus shifts focus between the active tab's rows.
func (m *Model) moveFocus(delta int) {
	rows := m.focusRowCount()
	if rows == 0 {
		return
	}
	m.focus = (m.focus + delta + rows) % rows
	m.refocus()
}

// focusRowCount returns the number of focusable rows on the active tab.
// The estimate tab's row 0 is the mode selector, not an input.
func (m *Model) focusRowCount() int {
	switch m.tab {
	case TabEstimate:
		return 1 + len(m.estimateFields())
	case TabAppliance:
		return 1
	case TabSettings:
		return 4
	default:
		return 0
	}
}

// estimateFields returns the input fields for the selected mode.
func (m *Model) estimateFields() []*textinput.Model {
	switch modes[m.mode] {
	case engine.ModePower:
		return []*textinput.Model{&m.wattsInput, &m.hoursInput}
	case engine.ModeCost:
		return []*textinput.Model{&m.amountInput}
	case engine.ModeEnergy:
		return []*textinput.Model{&m.energyInput}
	default:
		return nil
	}
}

// settingsFields returns the tariff fields in display order.
func (m *Model) settingsFields() []*textinput.Model {
	return []*textinput.Model{&m.daysInput, &m.t1Input, &m.t2Input, &m.t3Input}
}

// focusedField returns the input under the focus cursor, or nil when
// the focused row is not an input (the mode selector).
func (m *Model) focusedField() *textinput.Model {
	switch m.tab {
	case TabEstimate:
		fields := m.estimateFields()
		if m.focus == 0 || m.focus-1 >= len(fields) {
			return nil
		}
		return fields[m.focus-1]
	case TabAppliance:
		return &m.applianceInput
	case TabSettings:
		fields := m.settingsFields()
		if m.focus >= len(fields) {
			return nil
		}
		return fields[m.focus]
	default:
		return nil
	}
}

// refocus applies the focus cursor to the underlying textinputs.
func (m *Model) refocus() {
	for _, in := range []*textinput.Model{
		&m.energyInput, &m.wattsInput, &m.hoursInput, &m.amountInput,
		&m.applianceInput, &m.daysInput, &m.t1Input, &m.t2Input, &m.t3Input,
	} {
		in.Blur()
	}
	if field := m.focusedField(); field != nil {
		field.Focus()
	}
}

// updateFocusedField forwards a key to the focused input and recomputes
// the derived values.
func (m *Model) updateFocusedField(msg tea.KeyMsg) tea.Cmd {
	field := m.focusedField()
	if field == nil {
		return nil
	}

	var cmd tea.Cmd
	*field, cmd = field.Update(msg)
	m.syncSession()
	return cmd
}

// syncSession pushes the current raw fields into the engine session.
// Field values are coerced here — empty or unparsable text becomes
// zero — so the engine only ever sees numbers.
func (m *Model) syncSession() {
	m.session.SetRates(config.Rates{
		DaysPerMonth: parseField(m.daysInput.Value()),
		PriceT1:      parseField(m.t1Input.Value()),
		PriceT2:      parseField(m.t2Input.Value()),
		PriceT3:      parseField(m.t3Input.Value()),
	})

	m.session.SetInput(engine.Input{
		Mode:        modes[m.mode],
		EnergyKWh:   parseField(m.energyInput.Value()),
		Watts:       parseField(m.wattsInput.Value()),
		HoursPerDay: parseField(m.hoursInput.Value()),
		Amount:      parseField(m.amountInput.Value()),
	})

	m.applianceTable = newApplianceTable(m.applianceRows())
}

// applianceRows projects the appliance table for the current wattage
// field. Invalid settings or wattage yield no rows.
func (m *Model) applianceRows() []engine.ApplianceRow {
	return m.session.Appliances(parseField(m.applianceInput.Value()))
}

// exportActiveTab copies the active tab's CSV to the clipboard. Failure
// stays silent apart from a log line: no toast, no error screen.
func (m *Model) exportActiveTab() tea.Cmd {
	var text, title string
	switch m.tab {
	case TabAppliance:
		rows := m.applianceRows()
		if len(rows) == 0 {
			return nil
		}
		text = export.ApplianceCSV(rows)
		title = "Woyofal appliance projection"
	case TabEstimate, TabSettings:
		est, err := m.session.Estimate()
		if err != nil {
			logging.FromContext(m.ctx).Warn().
				Str("component", "tui").
				Err(err).
				Msg("skipping export of unresolvable estimate")
			return nil
		}
		text = export.MonthlyCSV(est)
		title = "Woyofal monthly estimate"
	default:
		return nil
	}

	if !share.Copy(m.ctx, m.sharer, share.Payload{Title: title, Text: text}) {
		return nil
	}
	return m.toast.show("Copied to clipboard")
}

// parseField coerces raw field text to a number. Empty or invalid input
// becomes zero at this boundary.
func parseField(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatRate renders a tariff number back into an editable field.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
