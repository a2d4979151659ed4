// Package spectrum provides the frequency-domain summaries used to inspect
// preprocessed recordings: full power spectra via FFT, dominant-frequency
// extraction, and single-bin Goertzel analysis for cheap narrowband power
// measurements (line-noise checks, tone tracking).
package spectrum
