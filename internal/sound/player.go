package sound

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ErrUnavailable indicates that no audio output could be opened.
var ErrUnavailable = errors.New("audio output unavailable")

// DefaultSampleRate is used when Options.SampleRate is not set.
const DefaultSampleRate = 44100

// Player plays cues without blocking the caller.
type Player interface {
	Play(cue Cue) error
}

// Options configures the audio backend.
type Options struct {
	SampleRate int
	Volume     float64
}

// normalized fills in the default sample rate and keeps Volume in [0,1]. A
// negative Volume means unset and becomes full volume; zero stays silent.
func (options Options) normalized() Options {
	if options.SampleRate <= 0 {
		options.SampleRate = DefaultSampleRate
	}
	if options.Volume < 0 {
		options.Volume = 1
	}
	options.Volume = clamp(options.Volume, 0, 1)
	return options
}

// OtoPlayer renders cues and plays them through an oto context.
// Only one OtoPlayer may exist per process.
type OtoPlayer struct {
	mu         sync.Mutex
	context    *oto.Context
	sampleRate int
	volume     float64
	cache      map[Cue][]byte
}

// NewOtoPlayer opens the default audio device.
func NewOtoPlayer(options Options) (*OtoPlayer, error) {
	options = options.normalized()

	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   options.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   20 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	<-ready

	return &OtoPlayer{
		context:    context,
		sampleRate: options.SampleRate,
		volume:     options.Volume,
		cache:      make(map[Cue][]byte),
	}, nil
}

// SetVolume changes the master volume for subsequent cues.
func (player *OtoPlayer) SetVolume(volume float64) {
	player.mu.Lock()
	defer player.mu.Unlock()
	volume = clamp(volume, 0, 1)
	if volume == player.volume {
		return
	}
	player.volume = volume
	player.cache = make(map[Cue][]byte)
}

// Play starts cue and returns immediately.
func (player *OtoPlayer) Play(cue Cue) error {
	data, err := player.pcm(cue)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	stream := player.context.NewPlayer(bytes.NewReader(data))
	stream.Play()
	go func() {
		for stream.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = stream.Close()
	}()
	return nil
}

func (player *OtoPlayer) pcm(cue Cue) ([]byte, error) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if data, ok := player.cache[cue]; ok {
		return data, nil
	}
	notes := Notes(cue)
	if notes == nil {
		return nil, fmt.Errorf("unknown cue %q", cue)
	}
	data := Render(notes, player.sampleRate, player.volume)
	player.cache[cue] = data
	return data, nil
}

// Silent is a Player that discards every cue.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue) error {
	return nil
}
