package sim

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/gridpad/internal/illum"
	"github.com/dshills/gridpad/internal/key"
)

const (
	gridCols = 4
	cellW    = 4
	cellH    = 2

	// dispatchLogLen bounds the on-screen dispatch history.
	dispatchLogLen = 8
)

// Terminal renders the simulated pad and feeds terminal keystrokes into
// the scan loop. It implements scan.Scanner, scan.Dispatcher, illum.Driver
// and status.Display.
type Terminal struct {
	mu sync.Mutex

	screen  tcell.Screen
	numKeys int

	in         *input
	colors     []illum.RGBW
	statusText string
	dispatched []string

	done chan struct{}
	once sync.Once
}

// NewTerminal creates the simulator for a pad with numKeys positions
// (at most 16; the key legend covers a 4x4 grid).
func NewTerminal(numKeys int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if numKeys > len(keyRunes) {
		numKeys = len(keyRunes)
	}
	return &Terminal{
		screen:  screen,
		numKeys: numKeys,
		in:      newInput(),
		colors:  make([]illum.RGBW, numKeys),
		done:    make(chan struct{}),
	}, nil
}

// Init starts the terminal and the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	go t.pump()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.close()
	t.screen.Fini()
}

// Done is closed when the user quits (Esc or Ctrl+C).
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// Poll returns the transitions accumulated since the previous cycle.
func (t *Terminal) Poll() []key.Transition {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.in.drain()
}

// WriteColors receives the illumination buffer. Part of the illum.Driver
// contract; the physical transport is out of scope, the simulator just
// remembers the colors for the next draw.
func (t *Terminal) WriteColors(buf []illum.RGBW) {
	t.mu.Lock()
	defer t.mu.Unlock()
	copy(t.colors, buf)
}

// ShowText receives the status text.
func (t *Terminal) ShowText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusText = text
}

// Dispatch records a resolved symbol the host would have received.
func (t *Terminal) Dispatch(sym key.Symbol) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dispatched = append(t.dispatched, sym.String())
	if len(t.dispatched) > dispatchLogLen {
		t.dispatched = t.dispatched[len(t.dispatched)-dispatchLogLen:]
	}
}

// pump forwards terminal events into the input queue.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				t.close()
				return
			}
			if ev.Key() == tcell.KeyRune {
				t.mu.Lock()
				t.in.rune(ev.Rune(), t.numKeys)
				t.mu.Unlock()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) close() {
	t.once.Do(func() { close(t.done) })
}

// cellColor folds the white channel into RGB and converts to a terminal
// color. The blend runs through go-colorful so the result stays in gamut.
func cellColor(c illum.RGBW) tcell.Color {
	base := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	blended := base.BlendRgb(white, float64(c.W)/255).Clamped()
	return tcell.NewRGBColor(
		int32(blended.R*255),
		int32(blended.G*255),
		int32(blended.B*255),
	)
}

// Draw renders the grid, status panel and dispatch log.
func (t *Terminal) Draw() {
	t.mu.Lock()
	colors := append([]illum.RGBW(nil), t.colors...)
	statusText := t.statusText
	dispatched := append([]string(nil), t.dispatched...)
	held := make([]int, 0, len(t.in.held))
	for pos := range t.in.held {
		held = append(held, pos)
	}
	t.mu.Unlock()

	t.screen.Clear()
	plain := tcell.StyleDefault

	for i, c := range colors {
		row, col := i/gridCols, i%gridCols
		style := tcell.StyleDefault.Background(cellColor(c)).Foreground(tcell.ColorBlack)
		legend := rune(keyRunes[i])
		for dy := 0; dy < cellH; dy++ {
			for dx := 0; dx < cellW; dx++ {
				r := ' '
				if dy == 0 && dx == 1 {
					r = legend
				}
				t.screen.SetContent(col*(cellW+1)+dx, 1+row*(cellH+1)+dy, r, nil, style)
			}
		}
	}

	panelX := gridCols*(cellW+1) + 3
	y := 1
	for _, line := range strings.Split(statusText, "\n") {
		drawText(t.screen, panelX, y, line, plain)
		y++
	}
	y++
	drawText(t.screen, panelX, y, "sent: "+strings.Join(dispatched, " "), plain)
	y += 2
	drawText(t.screen, panelX, y, "tap 1234/qwer/asdf/zxcv, shift latches, Esc quits", plain.Dim(true))
	if len(held) > 0 {
		y++
		drawText(t.screen, panelX, y, "held keys down", plain.Dim(true))
	}

	t.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
