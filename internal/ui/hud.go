//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"terramorph/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// HUD renders the parameter panel to the right of the scene. Numeric
// controls get +/- steppers; color parameters are shown as swatches. The
// panel scrolls with the mouse wheel when it is taller than the window.
type HUD struct {
	mode     core.Mode
	width    int
	panel    *ebiten.Image
	height   int
	snapshot core.ParameterSnapshot

	controls    []hudControlState
	swatches    []core.Parameter
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
	scroll      int
	title       string
}

// NewHUD constructs a HUD for the provided mode and panel width.
func NewHUD(mode core.Mode, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{mode: mode, width: width, title: buildTitle(mode)}
	if provider, ok := mode.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := mode.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := mode.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the mode and handles
// clicks and scrolling over the panel.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.mode.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshValues()
	h.handleScroll()
	h.layout()
	h.handleClick()
}

// Draw paints the panel at offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBG)
	h.drawControls()
	h.drawSwatches()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(mode core.Mode) string {
	if mode == nil || mode.Name() == "" {
		return "Controls"
	}
	name := mode.Name()
	return fmt.Sprintf("%s controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) refreshValues() {
	params := map[string]core.Parameter{}
	h.swatches = h.swatches[:0]
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			params[p.Key] = p
			if p.Type == core.ParamTypeColor {
				h.swatches = append(h.swatches, p)
			}
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := params[state.control.Key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.value = formatValue(state.control, parsed)
		state.number = parsed
		state.hasValue = true
	}
}

func (h *HUD) contentHeight() int {
	return controlsTop + len(h.controls)*lineHeight + swatchGap + len(h.swatches)*swatchLine
}

func (h *HUD) handleScroll() {
	mx, _ := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	h.scroll -= int(dy * lineHeight)
	maxScroll := h.contentHeight() - h.height
	if h.scroll > maxScroll {
		h.scroll = maxScroll
	}
	if h.scroll < 0 {
		h.scroll = 0
	}
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight - h.scroll
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case p.In(state.minusRect):
			h.adjust(state, -1)
			return
		case p.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// next returns the stepped value and whether the step stays in bounds.
func next(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
		if ctrl.Type == core.ParamTypeInt {
			step = 1
		}
	}
	target := current + float64(direction)*step
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if ctrl.HasMin && target < ctrl.Min {
		if current <= ctrl.Min {
			return current, false
		}
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		if current >= ctrl.Max {
			return current, false
		}
		target = ctrl.Max
	}
	return target, math.Abs(target-current) > 1e-9
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	target, ok := next(state.control, state.number, direction)
	if !ok {
		return
	}
	var applied bool
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			applied = h.intSetter.SetIntParameter(state.control.Key, int(target))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			applied = h.floatSetter.SetFloatParameter(state.control.Key, target)
		}
	}
	if applied {
		state.number = target
		state.value = formatValue(state.control, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
	default:
		return false
	}
	_, ok := next(state.control, state.number, direction)
	return ok
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline-h.scroll, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if state.top+lineHeight < 0 || state.top > h.height {
			continue
		}
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		w := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-w, y, valueColor)
		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawSwatches() {
	face := basicfont.Face7x13
	top := controlsTop + len(h.controls)*lineHeight + swatchGap - h.scroll
	for i, p := range h.swatches {
		y := top + i*swatchLine
		if y+swatchLine < 0 || y > h.height {
			continue
		}
		c, err := core.Hex(p.Value)
		if err != nil {
			continue
		}
		vector.DrawFilledRect(h.panel, panelPadding, float32(y+2), swatchSize, swatchSize, c.RGBA(), false)
		text.Draw(h.panel, p.Label+" "+p.Value, face, panelPadding+swatchSize+buttonGap, y+labelBaseline-4, dimColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 10
	lineHeight     = 24
	buttonSize     = 18
	buttonGap      = 6
	headerBaseline = 16
	labelBaseline  = 16
	infoSpacing    = 24
	swatchGap      = 10
	swatchLine     = 20
	swatchSize     = 14
	controlsTop    = panelPadding + headerBaseline + 12
)
