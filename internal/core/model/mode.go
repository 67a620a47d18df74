package model

import (
	"fmt"
	"strings"
)

// Mode identifies the kind of session the timer is counting down.
type Mode int

const (
	Focus Mode = iota
	ShortBreak
	LongBreak
)

var modeOrder = []Mode{Focus, ShortBreak, LongBreak}

var modeNames = map[Mode]string{
	Focus:      "focus",
	ShortBreak: "short_break",
	LongBreak:  "long_break",
}

var modeLabels = map[Mode]string{
	Focus:      "Focus",
	ShortBreak: "Break",
	LongBreak:  "Long Break",
}

var screenLabels = map[Mode]string{
	Focus:      "FOCUS",
	ShortBreak: "BREAK",
	LongBreak:  "LONG BREAK",
}

var indicatorLabels = map[Mode]string{
	Focus:      "POMO",
	ShortBreak: "SHORT",
	LongBreak:  "LONG",
}

// Modes returns every mode in cycling order.
func Modes() []Mode {
	return append([]Mode(nil), modeOrder...)
}

// Next returns the mode that follows in the fixed cyclic order.
func (mode Mode) Next() Mode {
	return modeOrder[(mode.index()+1)%len(modeOrder)]
}

// Previous returns the mode that precedes in the fixed cyclic order.
func (mode Mode) Previous() Mode {
	return modeOrder[(mode.index()+len(modeOrder)-1)%len(modeOrder)]
}

// IsBreak reports whether mode is one of the break variants.
func (mode Mode) IsBreak() bool {
	return mode == ShortBreak || mode == LongBreak
}

// Label is the human readable name used in window titles.
func (mode Mode) Label() string {
	return modeLabels[mode]
}

// ScreenLabel is the upper-case heading shown on the timer screen.
func (mode Mode) ScreenLabel() string {
	return screenLabels[mode]
}

// IndicatorLabel is the short tag used in the mode indicator strip.
func (mode Mode) IndicatorLabel() string {
	return indicatorLabels[mode]
}

func (mode Mode) String() string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(mode))
}

// ParseMode converts a mode name back into a Mode.
func ParseMode(value string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for mode, name := range modeNames {
		if name == normalized {
			return mode, nil
		}
	}
	return Focus, fmt.Errorf("unknown mode %q", value)
}

func (mode Mode) index() int {
	for index, candidate := range modeOrder {
		if candidate == mode {
			return index
		}
	}
	return 0
}
