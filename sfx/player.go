package sfx

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/Xwilarg/WigglingHunt/ecs/system"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Cue describes a synthesized effect: a sine sweep with a linear fade out.
type Cue struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Volume   float64
}

// DefaultCues are the effects the controller asks for.
var DefaultCues = map[string]Cue{
	system.CueLaser:    {StartHz: 1400, EndHz: 300, Duration: 0.18, Volume: 0.35},
	system.CueTeleport: {StartHz: 220, EndHz: 880, Duration: 0.3, Volume: 0.3},
}

// Player plays short one-shot effects by name.
type Player struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	volume  map[string]float64
}

// NewPlayer synthesizes every cue up front. A nil context uses the shared
// audio context, creating it on first use.
func NewPlayer(ctx *audio.Context, cues map[string]Cue) *Player {
	if ctx == nil {
		ctx = audio.CurrentContext()
	}
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	p := &Player{
		ctx:     ctx,
		players: make(map[string]*audio.Player, len(cues)),
		volume:  make(map[string]float64, len(cues)),
	}
	for name, cue := range cues {
		p.players[name] = ctx.NewPlayerFromBytes(Synthesize(cue, ctx.SampleRate()))
		p.volume[name] = cue.Volume
	}
	return p
}

// Play restarts the named cue. Unknown cues are logged and ignored.
func (p *Player) Play(cue string) {
	if p == nil {
		return
	}
	player, ok := p.players[cue]
	if !ok {
		log.Printf("sfx: unknown cue %q", cue)
		return
	}
	player.SetVolume(p.volume[cue])
	if err := player.Rewind(); err != nil {
		log.Printf("sfx: rewind %s: %v", cue, err)
		return
	}
	player.Play()
}

// Synthesize renders a cue as 16-bit little-endian stereo PCM, the format
// audio.Context expects for raw bytes.
func Synthesize(cue Cue, rate int) []byte {
	if cue.Duration <= 0 || rate <= 0 {
		return nil
	}
	n := int(cue.Duration * float64(rate))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := cue.StartHz + (cue.EndHz-cue.StartHz)*t
		phase += 2 * math.Pi * freq / float64(rate)
		v := int16(math.Sin(phase) * (1 - t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
