package audio

import (
	"math"
	"testing"
	"time"
)

func TestClickEnvelopeEndpoints(t *testing.T) {
	if got := clickEnvelope(0, 0.1, 0.01); got != 0.1 {
		t.Fatalf("start gain %v", got)
	}
	if got := clickEnvelope(1, 0.1, 0.01); got != 0.01 {
		t.Fatalf("end gain %v", got)
	}
	// halfway on an exponential ramp is the geometric mean
	if got := clickEnvelope(0.5, 0.1, 0.01); math.Abs(got-math.Sqrt(0.1*0.01)) > 1e-12 {
		t.Fatalf("mid gain %v", got)
	}
}

func TestClickVoiceLastsClickLength(t *testing.T) {
	s := DefaultSettings()
	v := newClickVoice(s, sampleRate)
	n := 0
	peak := 0.0
	for {
		x, done := v.Sample()
		if done {
			break
		}
		peak = math.Max(peak, math.Abs(x))
		n++
	}
	want := int(s.ClickLength.Seconds() * sampleRate)
	if n != want {
		t.Fatalf("click lasted %d samples, want %d", n, want)
	}
	if peak > s.ClickGain+1e-9 || peak < s.ClickGain/2 {
		t.Fatalf("peak %v outside envelope", peak)
	}
}

func TestDroneRampsToTargetAndBack(t *testing.T) {
	s := DefaultSettings()
	d := newDroneVoice(s, sampleRate)
	if d.Gain() != 0 {
		t.Fatalf("drone should start silent")
	}
	d.SetTarget(s.DroneGain)
	rampSamples := int(s.Ramp.Seconds() * sampleRate)
	for i := 0; i < rampSamples/2; i++ {
		d.Sample()
	}
	if g := d.Gain(); g <= 0 || g >= s.DroneGain {
		t.Fatalf("gain mid-ramp %v", g)
	}
	for i := 0; i < rampSamples; i++ {
		d.Sample()
	}
	if d.Gain() != s.DroneGain {
		t.Fatalf("gain did not settle at target: %v", d.Gain())
	}
	d.SetTarget(0)
	for i := 0; i < rampSamples+1; i++ {
		d.Sample()
	}
	if d.Gain() != 0 {
		t.Fatalf("gain did not return to 0: %v", d.Gain())
	}
}

func TestMixerDropsFinishedVoices(t *testing.T) {
	s := DefaultSettings()
	s.ClickLength = 10 * time.Millisecond
	m := &mixer{}
	m.Add(newClickVoice(s, sampleRate))
	m.Add(newClickVoice(s, sampleRate))

	buf := make([]byte, sampleRate/10*2) // 100ms
	n, err := m.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("read %d %v", n, err)
	}
	if m.Len() != 0 {
		t.Fatalf("finished voices kept: %d", m.Len())
	}
	nonZero := -1
	for i := len(buf)/2 - 1; i >= 0; i-- {
		if int16(buf[2*i])|int16(buf[2*i+1])<<8 != 0 {
			nonZero = i
			break
		}
	}
	if nonZero == -1 || nonZero > sampleRate/100 {
		t.Fatalf("last audible sample at %d, expected inside the first 10ms", nonZero)
	}
}

func TestMixerClamps(t *testing.T) {
	m := &mixer{}
	for i := 0; i < 20; i++ {
		m.Add(constVoice(0.5))
	}
	buf := make([]byte, 4)
	m.Read(buf)
	v := int16(buf[0]) | int16(buf[1])<<8
	if v != 32767 {
		t.Fatalf("expected clamp to max, got %d", v)
	}
}

type constVoice float64

func (c constVoice) Sample() (float64, bool) { return float64(c), false }

func TestNopIsSilent(t *testing.T) {
	var o Output = Nop{}
	o.Drone(true)
	o.Click()
}
