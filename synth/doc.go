// Package synth turns narrated text fragments into a synthesized
// reference waveform the coordinator can align against recorded audio.
//
// 🗣️ What is synth?
//
//	A Synthesizer produces a waveform and a parallel list of anchors:
//	the sample offset at which each fragment's narration begins. The
//	coordinator never needs to know how synthesis happened — it only
//	consumes SynthesisResult — so FestivalSynthesizer (which shells out
//	to an external text-to-speech binary) and any test fake share one
//	contract.
package synth
