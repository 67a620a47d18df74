// Package sound plays the widget's 8-bit feedback beeps.
//
// Cues are described as short square-wave note sequences, rendered to 16-bit
// PCM and handed to an audio backend. Playback is fire-and-forget: callers
// never wait for a cue to finish and failures are only logged.
package sound

import "time"

// Cue names a feedback sound.
type Cue string

const (
	CueModeChange Cue = "mode_change"
	CueButton     Cue = "button"
	CueComplete   Cue = "complete"
	CueStart      Cue = "start"
	CueStop       Cue = "stop"
	CueReset      Cue = "reset"
)

// Note is a single square-wave beep inside a cue.
type Note struct {
	Frequency float64
	Offset    time.Duration
	Duration  time.Duration
	Volume    float64
}

const defaultNoteVolume = 0.3

var cueNotes = map[Cue][]Note{
	// Two ascending beeps.
	CueModeChange: {
		{Frequency: 262, Duration: 100 * time.Millisecond, Volume: 0.3},
		{Frequency: 330, Offset: 120 * time.Millisecond, Duration: 100 * time.Millisecond, Volume: 0.3},
	},
	CueButton: {
		{Frequency: 392, Duration: 80 * time.Millisecond, Volume: 0.25},
	},
	// C E G C.
	CueComplete: {
		{Frequency: 262, Duration: 150 * time.Millisecond, Volume: 0.3},
		{Frequency: 330, Offset: 180 * time.Millisecond, Duration: 150 * time.Millisecond, Volume: 0.3},
		{Frequency: 392, Offset: 360 * time.Millisecond, Duration: 150 * time.Millisecond, Volume: 0.3},
		{Frequency: 523, Offset: 540 * time.Millisecond, Duration: 150 * time.Millisecond, Volume: 0.3},
	},
	CueStart: {
		{Frequency: 440, Duration: 150 * time.Millisecond, Volume: 0.3},
	},
	CueStop: {
		{Frequency: 330, Duration: 120 * time.Millisecond, Volume: 0.25},
	},
	CueReset: {
		{Frequency: 392, Duration: 80 * time.Millisecond, Volume: 0.25},
		{Frequency: 262, Offset: 100 * time.Millisecond, Duration: 80 * time.Millisecond, Volume: 0.25},
	},
}

// Notes returns the note sequence of cue, or nil for an unknown cue.
func Notes(cue Cue) []Note {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil
	}
	return append([]Note(nil), notes...)
}

// Length returns the time from the first note start to the last note end.
func Length(notes []Note) time.Duration {
	var length time.Duration
	for _, note := range notes {
		if end := note.Offset + note.Duration; end > length {
			length = end
		}
	}
	return length
}
