package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/framewright/framewright/pkg/aspect"
	"github.com/framewright/framewright/pkg/errors"
	"github.com/framewright/framewright/pkg/format"
	"github.com/framewright/framewright/pkg/frame"
	"github.com/framewright/framewright/pkg/report"
	"github.com/framewright/framewright/pkg/units"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// designerModel - Interactive frame designer
// =============================================================================

// designerField identifies one editable measurement.
type designerField int

const (
	fieldHeight designerField = iota
	fieldWidth
	fieldMatTopBottom
	fieldMatSides
	fieldFrameWidth
	fieldFrameDepth
	fieldCount
)

// fieldLabels names the editable fields in display order.
var fieldLabels = [fieldCount]string{
	"Artwork height",
	"Artwork width",
	"Mat top/bottom",
	"Mat sides",
	"Frame width",
	"Frame depth",
}

// saveRequest carries the name the designer asked to save under.
type saveRequest struct {
	name string
}

// designerModel is the bubbletea model for the interactive designer.
// The model never touches storage; the command that ran it inspects
// request after the program exits.
type designerModel struct {
	design       frame.Design
	unit         units.Unit
	denominators []int
	fo           format.Options

	cursor  designerField
	editing bool
	input   string

	naming  bool
	nameBuf string

	lock    aspect.Lock
	request *saveRequest
	status  string

	width  int
	height int
}

// newDesignerModel creates a designer session for d.
func newDesignerModel(d frame.Design, unit units.Unit, denominators []int, name string) designerModel {
	m := designerModel{
		design:       d,
		unit:         unit,
		denominators: denominators,
		nameBuf:      name,
	}
	m.fo = m.formatOptions()
	return m
}

func (m designerModel) formatOptions() format.Options {
	fo := format.DefaultOptions(m.unit)
	if len(m.denominators) > 0 {
		fo.Denominators = m.denominators
	}
	return fo
}

func (m designerModel) Init() tea.Cmd {
	return nil
}

func (m designerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// updateBrowsing handles keys while navigating the field list.
func (m designerModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case "enter":
		m.editing = true
		m.input = ""
		m.status = ""
	case "left":
		m = m.nudge(-1)
	case "right":
		m = m.nudge(+1)
	case "l":
		if m.lock.Toggle(m.design.ArtworkHeight, m.design.ArtworkWidth) {
			m.status = "aspect locked at " + format.RatioValue(m.lock.Ratio())
		} else {
			m.status = "aspect unlocked"
		}
	case "u":
		if m.unit == units.Inches {
			m.unit = units.Millimeters
		} else {
			m.unit = units.Inches
		}
		m.fo = m.formatOptions()
	case "m":
		m = m.toggleMat()
	case "o":
		m = m.rotate()
	case "s":
		m.naming = true
		m.status = ""
	}
	return m, nil
}

// updateEditing handles keys while a field value is being typed.
func (m designerModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitEdit(), nil
	case "esc":
		m.editing = false
		m.input = ""
		m.status = ""
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeySpace:
		m.input += " "
	}
	return m, nil
}

// updateNaming handles keys while the save name is being typed.
func (m designerModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameBuf)
		if name == "" {
			m.status = "a name is required"
			return m, nil
		}
		m.request = &saveRequest{name: name}
		return m, tea.Quit
	case "esc":
		m.naming = false
		m.status = ""
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "backspace":
		if len(m.nameBuf) > 0 {
			runes := []rune(m.nameBuf)
			m.nameBuf = string(runes[:len(runes)-1])
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.nameBuf += string(msg.Runes)
	case tea.KeySpace:
		m.nameBuf += " "
	}
	return m, nil
}

// =============================================================================
// Model Transitions
// =============================================================================

// fieldValue reads the current value of a field.
func (m designerModel) fieldValue(f designerField) float64 {
	switch f {
	case fieldHeight:
		return m.design.ArtworkHeight
	case fieldWidth:
		return m.design.ArtworkWidth
	case fieldMatTopBottom:
		return m.design.MatWidthTopBottom
	case fieldMatSides:
		return m.design.MatWidthSides
	case fieldFrameWidth:
		return m.design.FrameMaterialWidth
	default:
		return m.design.FrameMaterialDepth
	}
}

// applyField writes v to a field and renormalizes the design.
// Editing a mat side splits the symmetrical coupling.
func (m designerModel) applyField(f designerField, v float64) (designerModel, error) {
	d := m.design
	switch f {
	case fieldHeight:
		d.ArtworkHeight = v
	case fieldWidth:
		d.ArtworkWidth = v
	case fieldMatTopBottom:
		d.MatWidthTopBottom = v
	case fieldMatSides:
		d.MatWidthSides = v
		d.SymmetricalMat = false
	case fieldFrameWidth:
		d.FrameMaterialWidth = v
	case fieldFrameDepth:
		d.FrameMaterialDepth = v
	}

	nd, err := frame.New(d)
	if err != nil {
		return m, err
	}
	m.design = nd
	return m, nil
}

// commitEdit parses the typed value and applies it to the selected
// field, deriving the locked counterpart when the aspect lock is on.
func (m designerModel) commitEdit() designerModel {
	raw := strings.TrimSpace(m.input)
	m.editing = false
	m.input = ""
	if raw == "" {
		return m
	}

	v, err := units.ParseMeasurement(raw, m.unit)
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}

	next, err := m.applyField(m.cursor, v)
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m = next
	m.status = ""
	return m.syncLock(m.cursor)
}

// nudge adjusts the selected field by one grid step.
func (m designerModel) nudge(dir float64) designerModel {
	step := aspect.DefaultStep
	if m.unit == units.Millimeters {
		step = units.MMToInches(5)
	}

	v := m.fieldValue(m.cursor) + dir*step
	if v < 0 {
		return m
	}

	next, err := m.applyField(m.cursor, v)
	if err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m = next
	m.status = ""
	return m.syncLock(m.cursor)
}

// syncLock re-derives the locked counterpart after a dimension change.
func (m designerModel) syncLock(changed designerField) designerModel {
	if !m.lock.Locked() {
		return m
	}

	switch changed {
	case fieldHeight:
		if w := m.lock.WidthFor(m.design.ArtworkHeight, aspect.DefaultStep); w > 0 {
			if next, err := m.applyField(fieldWidth, w); err == nil {
				return next
			}
		}
	case fieldWidth:
		if h := m.lock.HeightFor(m.design.ArtworkWidth, aspect.DefaultStep); h > 0 {
			if next, err := m.applyField(fieldHeight, h); err == nil {
				return next
			}
		}
	}
	return m
}

// toggleMat removes the mat, or restores it at the default width.
func (m designerModel) toggleMat() designerModel {
	d := m.design
	if d.HasMat() {
		d.MatWidthTopBottom = 0
		d.MatWidthSides = 0
	} else {
		d.MatWidthTopBottom = frame.DefaultMatWidth
		d.MatWidthSides = frame.DefaultMatWidth
		d.SymmetricalMat = true
	}

	if nd, err := frame.New(d); err == nil {
		m.design = nd
	}
	return m
}

// rotate swaps the artwork orientation, carrying the lock along.
func (m designerModel) rotate() designerModel {
	d := m.design
	d.ArtworkHeight, d.ArtworkWidth = d.ArtworkWidth, d.ArtworkHeight

	if nd, err := frame.New(d); err == nil {
		m.design = nd
		m.lock.Invert()
	}
	return m
}

// =============================================================================
// View
// =============================================================================

func (m designerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Frame Designer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ field  ⏎ edit  ←/→ nudge  l lock  m mat  u unit  o rotate  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderFields(), "   ", m.renderSummary()))
	b.WriteString("\n")

	if m.naming {
		b.WriteString(StyleHighlight.Render("save as: " + m.nameBuf + "▌"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFields draws the editable field list.
func (m designerModel) renderFields() string {
	var b strings.Builder

	for f := designerField(0); f < fieldCount; f++ {
		cursor := "  "
		if f == m.cursor {
			cursor = "▸ "
		}

		value := m.fo.Value(m.fieldValue(f))
		if f == m.cursor && m.editing {
			value = m.input + "▌"
		}

		line := fmt.Sprintf("%s%-15s %s", cursor, fieldLabels[f], value)
		if f == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	lock := "open"
	if m.lock.Locked() {
		lock = format.RatioValue(m.lock.Ratio())
	}
	mat := "off"
	if m.design.HasMat() {
		mat = "on"
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  aspect %s · mat %s · unit %s", lock, mat, m.unit.Label())))

	return b.String()
}

// renderSummary draws the live cut sheet panel.
func (m designerModel) renderSummary() string {
	rep := report.Build(m.design, report.Options{Unit: m.unit})
	v := m.fo.Value

	var b strings.Builder
	add := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-14s %s\n", label, StyleNumber.Render(value)))
	}

	add("Frame outside", v(rep.FrameOutside.Height)+" × "+v(rep.FrameOutside.Width))
	add("Frame inside", v(rep.FrameInside.Height)+" × "+v(rep.FrameInside.Width))
	if mb := rep.Matboard; mb != nil {
		add("Matboard", v(mb.Board.Height)+" × "+v(mb.Board.Width))
		add("Mat opening", v(mb.Opening.Height)+" × "+v(mb.Opening.Width))
	}
	add("Total stock", v(rep.TotalWoodLength))
	add("Depth needed", v(rep.RequiredDepth))

	if rep.DepthClearance < 0 {
		b.WriteString(StyleWarning.Render("frame too shallow"))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render("ratio " + rep.AspectRatio))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)
	return panel.Render(b.String())
}
