// Package analysis provides tools for studying population time series.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed series
//   - [DominantPeriod]: strongest oscillation period in generations
//   - [Summarize]: min/max/mean/final of a series
//
// Spectra are computed with github.com/mjibson/go-dsp/fft, so series of any
// length are accepted.
package analysis
