package viewport

import "math"

// Peak is a Gaussian line in a synthetic spectrum.
type Peak struct {
	Center    float64
	Sigma     float64
	Amplitude float64
}

// XDimensions returns the range holding the peak, three sigma each side.
func (p Peak) XDimensions() (lo, hi float64, ok bool) {
	return p.Center - 3*p.Sigma, p.Center + 3*p.Sigma, true
}

// Synthetic builds a spectrum of the given peaks over an exponentially
// falling background. background is the count level of the first bin.
func Synthetic(bins int, binWidth, background float64, peaks []Peak) []float64 {
	counts := make([]float64, bins)
	decay := float64(bins) * binWidth / 3
	for i := range counts {
		x := (float64(i) + 0.5) * binWidth
		v := background * math.Exp(-x/decay)
		for _, p := range peaks {
			if p.Sigma <= 0 {
				continue
			}
			d := (x - p.Center) / p.Sigma
			v += p.Amplitude * math.Exp(-d*d/2)
		}
		counts[i] = math.Round(v)
	}
	return counts
}

// DefaultPeaks is a 60Co + 137Cs style calibration spectrum.
var DefaultPeaks = []Peak{
	{Center: 661.7, Sigma: 4, Amplitude: 900},
	{Center: 1173.2, Sigma: 5, Amplitude: 520},
	{Center: 1332.5, Sigma: 5.5, Amplitude: 460},
}
