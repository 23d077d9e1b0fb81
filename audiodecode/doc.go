// Package audiodecode turns an arbitrary recorded audio file into the
// mono PCM samples the mfcc package expects.
//
// 🔊 What is audiodecode?
//
//	A thin two-stage pipeline:
//
//	  • Transcode: shell out to ffmpeg to produce a PCM WAV file,
//	    since the narrator's recordings may arrive in any container
//	    or codec ffmpeg supports
//	  • Decode: read that WAV with go-audio/wav and normalize samples
//	    to [-1, 1], averaging across channels down to mono
//
// The Decoder interface lets the align package depend on this pipeline
// abstractly, so tests can supply a fake that skips the ffmpeg
// subprocess entirely.
package audiodecode
