package screen

import (
	"fmt"
	"image/color"

	"pomoboy/internal/core/model"
	"pomoboy/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Palette defines the four-shade handheld look.
type Palette struct {
	Screen color.NRGBA
	Pixel  color.NRGBA
	Bezel  color.NRGBA
	Case   color.NRGBA
}

// DefaultPalette returns the classic green handheld palette.
func DefaultPalette() Palette {
	return Palette{
		Screen: color.NRGBA{R: 0x9b, G: 0xbc, B: 0x0f, A: 0xff},
		Pixel:  color.NRGBA{R: 0x0f, G: 0x38, B: 0x0f, A: 0xff},
		Bezel:  color.NRGBA{R: 0x50, G: 0x54, B: 0x5e, A: 0xff},
		Case:   color.NRGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
	}
}

const (
	runningText = "► RUNNING"
	pausedText  = "❚❚ PAUSED"
)

// statusText returns the run indicator shown under the clock.
func statusText(running bool) string {
	if running {
		return runningText
	}
	return pausedText
}

type indicator struct {
	mode  model.Mode
	label *canvas.Text
	fill  *canvas.Rectangle
}

// Screen renders the timer state.
// Render and SetStatusOpacity must be called on the fyne UI goroutine.
type Screen struct {
	palette     Palette
	background  *canvas.Rectangle
	bezel       *canvas.Rectangle
	modeLabel   *canvas.Text
	cycleLabel  *canvas.Text
	timeLabel   *canvas.Text
	statusLabel *canvas.Text
	indicators  []*indicator
	content     fyne.CanvasObject
}

// New creates the screen with every label in its initial state.
func New(palette Palette) *Screen {
	screen := &Screen{
		palette:     palette,
		background:  canvas.NewRectangle(palette.Screen),
		bezel:       canvas.NewRectangle(palette.Bezel),
		modeLabel:   newText(model.Focus.ScreenLabel(), palette.Pixel, 12, fyne.TextAlignLeading),
		cycleLabel:  newText("#1", palette.Pixel, 12, fyne.TextAlignTrailing),
		timeLabel:   newText("00:00", palette.Pixel, 56, fyne.TextAlignCenter),
		statusLabel: newText(pausedText, palette.Pixel, 12, fyne.TextAlignCenter),
	}
	screen.bezel.CornerRadius = 12
	screen.background.StrokeColor = color.NRGBA{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff}
	screen.background.StrokeWidth = 4

	strip := make([]fyne.CanvasObject, 0, len(model.Modes()))
	for _, mode := range model.Modes() {
		item := &indicator{
			mode:  mode,
			label: newText(mode.IndicatorLabel(), palette.Pixel, 10, fyne.TextAlignCenter),
			fill:  canvas.NewRectangle(color.Transparent),
		}
		screen.indicators = append(screen.indicators, item)
		strip = append(strip, container.NewStack(item.fill, item.label))
	}

	display := container.New(&displayLayout{},
		screen.modeLabel,
		screen.cycleLabel,
		screen.timeLabel,
		screen.statusLabel,
		container.NewGridWithColumns(len(strip), strip...),
	)
	screen.content = container.NewStack(
		screen.bezel,
		container.NewPadded(container.NewStack(screen.background, container.NewPadded(display))),
	)
	return screen
}

// Content returns the canvas object to place in a window.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Render copies state into the labels.
func (screen *Screen) Render(state timekeeper.State) {
	screen.modeLabel.Text = state.Mode.ScreenLabel()
	screen.cycleLabel.Text = fmt.Sprintf("#%d", state.Cycle)
	screen.timeLabel.Text = model.FormatClock(state.Remaining)
	screen.statusLabel.Text = statusText(state.Running)
	if !state.Running {
		screen.statusLabel.Color = screen.palette.Pixel
	}

	for _, item := range screen.indicators {
		if item.mode == state.Mode {
			item.fill.FillColor = screen.palette.Pixel
			item.label.Color = screen.palette.Screen
		} else {
			item.fill.FillColor = color.Transparent
			item.label.Color = withAlpha(screen.palette.Pixel, 0.5)
		}
		item.fill.Refresh()
		item.label.Refresh()
	}

	screen.modeLabel.Refresh()
	screen.cycleLabel.Refresh()
	screen.timeLabel.Refresh()
	screen.statusLabel.Refresh()
}

// SetStatusOpacity fades the run indicator.
func (screen *Screen) SetStatusOpacity(opacity float64) {
	screen.statusLabel.Color = withAlpha(screen.palette.Pixel, opacity)
	screen.statusLabel.Refresh()
}

func newText(text string, fill color.Color, size float32, align fyne.TextAlign) *canvas.Text {
	label := canvas.NewText(text, fill)
	label.TextSize = size
	label.Alignment = align
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	return label
}

func withAlpha(base color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	base.A = uint8(opacity * 255)
	return base
}

// displayLayout stacks the header row, the clock, the status line and the
// mode strip, giving the clock all spare height.
type displayLayout struct{}

func (layout *displayLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	mode, cycle, clock, status, strip := objects[0], objects[1], objects[2], objects[3], objects[4]

	headerHeight := fyne.Max(mode.MinSize().Height, cycle.MinSize().Height)
	cycleWidth := cycle.MinSize().Width
	mode.Move(fyne.NewPos(0, 0))
	mode.Resize(fyne.NewSize(size.Width-cycleWidth, headerHeight))
	cycle.Move(fyne.NewPos(size.Width-cycleWidth, 0))
	cycle.Resize(fyne.NewSize(cycleWidth, headerHeight))

	stripHeight := strip.MinSize().Height
	strip.Move(fyne.NewPos(0, size.Height-stripHeight))
	strip.Resize(fyne.NewSize(size.Width, stripHeight))

	statusHeight := status.MinSize().Height
	middle := size.Height - headerHeight - stripHeight
	clockHeight := clock.MinSize().Height
	top := headerHeight + (middle-clockHeight-statusHeight)/2
	if top < headerHeight {
		top = headerHeight
	}
	clock.Move(fyne.NewPos(0, top))
	clock.Resize(fyne.NewSize(size.Width, clockHeight))
	status.Move(fyne.NewPos(0, top+clockHeight))
	status.Resize(fyne.NewSize(size.Width, statusHeight))
}

func (layout *displayLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 5 {
		return fyne.NewSize(0, 0)
	}
	width := float32(0)
	height := float32(0)
	for _, object := range objects[2:] {
		minSize := object.MinSize()
		width = fyne.Max(width, minSize.Width)
		height += minSize.Height
	}
	header := objects[0].MinSize().Width + objects[1].MinSize().Width
	width = fyne.Max(width, header)
	height += fyne.Max(objects[0].MinSize().Height, objects[1].MinSize().Height)
	return fyne.NewSize(width, height+16)
}
