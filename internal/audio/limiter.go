package audio

// limiter is a peak limiter with instant attack and a fixed threshold and
// release, the last stage before quantization. The envelope jumps straight
// to any new peak and decays slowly, so output magnitude never exceeds the
// threshold no matter how many voices pile up, and gain recovers smoothly
// instead of pumping.
type limiter struct {
	threshold float64
	release   float64 // envelope fall coefficient per frame
	env       float64
}

func newLimiter() *limiter {
	return &limiter{
		threshold: 0.85,
		release:   1 - 1.0/(sampleRate*0.120), // ~120 ms release
	}
}

func (l *limiter) process(x float64) float64 {
	abs := x
	if abs < 0 {
		abs = -abs
	}
	if abs > l.env {
		l.env = abs
	} else {
		l.env *= l.release
	}

	if l.env > l.threshold {
		x *= l.threshold / l.env
	}
	return x
}
