package audio

import (
	"math"
	"sync"
)

const (
	sampleRate          = 44100
	bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// clickEnvelope is an exponential ramp from g0 at t=0 to floor at t=1,
// the curve Web Audio's exponentialRampToValueAtTime draws.
func clickEnvelope(t, g0, floor float64) float64 {
	if t <= 0 {
		return g0
	}
	if t >= 1 {
		return floor
	}
	return g0 * math.Pow(floor/g0, t)
}

type clickVoice struct {
	i, n      int
	phase     float64
	step      float64
	g0, floor float64
}

func newClickVoice(s Settings, sr int) *clickVoice {
	return &clickVoice{
		n:     int(s.ClickLength.Seconds() * float64(sr)),
		step:  2 * math.Pi * s.ClickFreq / float64(sr),
		g0:    s.ClickGain,
		floor: s.ClickFloor,
	}
}

func (c *clickVoice) Sample() (float64, bool) {
	if c.i >= c.n {
		return 0, true
	}
	env := clickEnvelope(float64(c.i)/float64(c.n), c.g0, c.floor)
	v := math.Sin(c.phase) * env
	c.phase += c.step
	c.i++
	return v, false
}

// droneVoice is an endless sine whose gain slides linearly toward a target.
type droneVoice struct {
	mu     sync.Mutex
	phase  float64
	step   float64
	gain   float64
	target float64
	slope  float64 // gain change per sample
}

func newDroneVoice(s Settings, sr int) *droneVoice {
	ramp := s.Ramp.Seconds() * float64(sr)
	if ramp < 1 {
		ramp = 1
	}
	return &droneVoice{
		step:  2 * math.Pi * s.DroneFreq / float64(sr),
		slope: s.DroneGain / ramp,
	}
}

func (d *droneVoice) SetTarget(g float64) {
	d.mu.Lock()
	d.target = g
	d.mu.Unlock()
}

func (d *droneVoice) Gain() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gain
}

func (d *droneVoice) Sample() (float64, bool) {
	d.mu.Lock()
	switch {
	case d.gain < d.target:
		d.gain = math.Min(d.gain+d.slope, d.target)
	case d.gain > d.target:
		d.gain = math.Max(d.gain-d.slope, d.target)
	}
	g := d.gain
	d.mu.Unlock()

	v := math.Sin(d.phase) * g
	d.phase += d.step
	if d.phase > 2*math.Pi {
		d.phase -= 2 * math.Pi
	}
	return v, false
}

// mixer mixes multiple voices into a single PCM stream.
type mixer struct {
	mu     sync.Mutex
	voices []Voice
}

func (m *mixer) Add(v Voice) {
	m.mu.Lock()
	m.voices = append(m.voices, v)
	m.mu.Unlock()
}

func (m *mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < samples; i++ {
		var sum float64
		for idx := 0; idx < len(m.voices); idx++ {
			val, done := m.voices[idx].Sample()
			sum += val
			if done {
				m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
				idx--
			}
		}
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return samples * 2, nil
}
