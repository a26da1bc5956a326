package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// minSpectrumSamples is the shortest series with a meaningful non-DC bin.
const minSpectrumSamples = 4

// PowerSpectrum returns the magnitudes of frequency bins 0 through
// len(series)/2 of the series after removing its mean.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-DC
// frequency bin. It returns 0 for flat or too-short series.
func DominantPeriod(series []float64) float64 {
	if len(series) < minSpectrumSamples {
		return 0
	}
	ps := PowerSpectrum(series)

	best, bestMag := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestMag {
			best, bestMag = k, ps[k]
		}
	}
	if best == 0 || bestMag < 1e-9 {
		return 0
	}
	return float64(len(series)) / float64(best)
}

// Summary describes the range of a series.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Final float64
}

func Summarize(series []float64) Summary {
	if len(series) == 0 {
		return Summary{}
	}
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1), Final: series[len(series)-1]}
	for _, v := range series {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		s.Mean += v
	}
	s.Mean /= float64(len(series))
	return s
}

// Floats converts an integer series for analysis and plotting.
func Floats(series []int) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = float64(v)
	}
	return out
}
