// Package mfcc extracts Mel-Frequency Cepstral Coefficient feature
// sequences from PCM audio, the frame representation the dtwbd package
// aligns.
//
// 🎚️ What is mfcc?
//
//	A minimal MFCC pipeline tuned for alignment rather than recognition:
//
//	  • Fixed 40ms frames, no overlap — matches the frame duration the
//	    coordinator uses to project matched frames back to wall-clock time
//	  • Hamming-windowed FFT power spectrum via gonum's fourier package
//	  • A triangular mel filterbank, log-compressed
//	  • A discrete cosine transform (again via gonum's fourier package) to produce
//	    cepstral coefficients
//	  • The leading coefficient (log frame energy) is dropped, since it
//	    carries loudness information that is irrelevant — and actively
//	    harmful — to an alignment that compares synthesized speech
//	    against a narrator's recording
package mfcc
