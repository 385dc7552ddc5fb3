package display

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat in ticks at 60 TPS: first repeat after 350ms, then every
// 50ms, roughly matching desktop keyboard settings.
const (
	repeatDelayTicks    = 21
	repeatIntervalTicks = 3
)

// pressedKeys returns the key names to forward this tick: every key
// that just went down, plus synthesized repeats for keys held past the
// repeat delay. ebiten reports key state rather than the OS's repeat
// events, so repeats are reconstructed here.
func pressedKeys() []string {
	var keys []string
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := keyName(k)
		if name == "" {
			continue
		}
		if inpututil.IsKeyJustPressed(k) {
			keys = append(keys, name)
			continue
		}
		d := inpututil.KeyPressDuration(k)
		if d >= repeatDelayTicks && (d-repeatDelayTicks)%repeatIntervalTicks == 0 {
			keys = append(keys, name)
		}
	}
	return keys
}

// keyName maps an ebiten key to its DOM KeyboardEvent.key name, which
// is what the program expects. Unmapped keys return "".
func keyName(k ebiten.Key) string {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return string(rune('a' + int(k-ebiten.KeyA)))
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return string(rune('0' + int(k-ebiten.KeyDigit0)))
	case k >= ebiten.KeyF1 && k <= ebiten.KeyF12:
		return "F" + strconv.Itoa(int(k-ebiten.KeyF1)+1)
	}
	switch k {
	case ebiten.KeyArrowUp:
		return "ArrowUp"
	case ebiten.KeyArrowDown:
		return "ArrowDown"
	case ebiten.KeyArrowLeft:
		return "ArrowLeft"
	case ebiten.KeyArrowRight:
		return "ArrowRight"
	case ebiten.KeyEnter:
		return "Enter"
	case ebiten.KeyTab:
		return "Tab"
	case ebiten.KeySpace:
		return " "
	case ebiten.KeyEscape:
		return "Escape"
	case ebiten.KeyBackspace:
		return "Backspace"
	case ebiten.KeyDelete:
		return "Delete"
	case ebiten.KeyHome:
		return "Home"
	case ebiten.KeyEnd:
		return "End"
	case ebiten.KeyPageUp:
		return "PageUp"
	case ebiten.KeyPageDown:
		return "PageDown"
	case ebiten.KeyShift:
		return "Shift"
	case ebiten.KeyControl:
		return "Control"
	case ebiten.KeyAlt:
		return "Alt"
	case ebiten.KeyMeta:
		return "Meta"
	}
	return ""
}
