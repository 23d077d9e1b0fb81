// Package align drives the end-to-end alignment of a directory of
// narrated text files against a directory of recorded audio files.
//
// 🧭 What is align?
//
//	The Coordinator is a two-cursor state machine: one cursor walks the
//	text files, the other walks the audio files. After every call into
//	the dtwbd package it decides, from where the warping path started
//	and ended, whether:
//
//	  • the current text file has unmapped fragments left (its tail is
//	    re-aligned against the next audio file)
//	  • the current audio file has unmatched frames left (its tail is
//	    re-aligned against the next text file before advancing)
//	  • both files are exhausted and the next pair should be loaded
//
//	Align wires the Coordinator to production collaborators — textfile,
//	synth, audiodecode and mfcc — and manages the temporary workspace
//	those collaborators write intermediate WAV files into.
package align
