package sound

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	attackTime    = 10 * time.Millisecond
	releaseFloor  = 0.01
	maxSampleSize = math.MaxInt16
)

// Render mixes notes into mono signed 16-bit little-endian PCM.
// master scales every note and is clamped to [0, 1].
func Render(notes []Note, sampleRate int, master float64) []byte {
	if sampleRate <= 0 || len(notes) == 0 {
		return nil
	}
	master = clamp(master, 0, 1)

	total := samplesFor(Length(notes), sampleRate)
	mix := make([]float64, total)
	for _, note := range notes {
		renderNote(mix, note, sampleRate, master)
	}

	out := make([]byte, total*2)
	for index, value := range mix {
		sample := int16(clamp(value, -1, 1) * maxSampleSize)
		binary.LittleEndian.PutUint16(out[index*2:], uint16(sample))
	}
	return out
}

func renderNote(mix []float64, note Note, sampleRate int, master float64) {
	volume := note.Volume
	if volume <= 0 {
		volume = defaultNoteVolume
	}
	volume *= master
	if volume <= 0 || note.Frequency <= 0 || note.Duration <= 0 {
		return
	}

	start := samplesFor(note.Offset, sampleRate)
	count := samplesFor(note.Duration, sampleRate)
	seconds := note.Duration.Seconds()
	attack := attackTime.Seconds()
	for step := 0; step < count && start+step < len(mix); step++ {
		at := float64(step) / float64(sampleRate)
		mix[start+step] += square(note.Frequency, at) * envelope(at, seconds, attack, volume)
	}
}

// envelope ramps linearly up to volume, then decays exponentially towards
// releaseFloor by the end of the note.
func envelope(at, length, attack, volume float64) float64 {
	if at < attack {
		return volume * at / attack
	}
	if length <= attack || volume <= releaseFloor {
		return volume
	}
	progress := (at - attack) / (length - attack)
	return volume * math.Pow(releaseFloor/volume, progress)
}

func square(frequency, at float64) float64 {
	if math.Sin(2*math.Pi*frequency*at) >= 0 {
		return 1
	}
	return -1
}

// samplesFor rounds up so a note never loses its tail.
func samplesFor(duration time.Duration, sampleRate int) int {
	if duration <= 0 {
		return 0
	}
	scaled := int64(duration) * int64(sampleRate)
	return int((scaled + int64(time.Second) - 1) / int64(time.Second))
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
