package audiodecode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
)

// ErrInvalidWAV indicates the transcoded file is not a decodable WAV.
var ErrInvalidWAV = errors.New("audiodecode: invalid wav file")

// TranscodeResult carries mono PCM samples, normalized to [-1, 1], and
// the sample rate they were captured at.
type TranscodeResult struct {
	PCM        []float64
	SampleRate int
}

// Decoder turns an audio file at path into PCM samples. Production code
// uses FFmpegDecoder; tests inject a fake that reads a fixture directly.
type Decoder interface {
	Decode(ctx context.Context, path string) (TranscodeResult, error)
}

// FFmpegDecoder transcodes with an external ffmpeg binary before
// reading the result with DecodeWAV. ffmpeg is invoked with -n so a
// pre-existing file at the target path is never overwritten, matching
// the original tool's subprocess invocation.
type FFmpegDecoder struct {
	// Binary is the ffmpeg executable name or path. Defaults to
	// "ffmpeg" when empty.
	Binary string
	// WorkDir receives the intermediate WAV file.
	WorkDir string
}

// Decode transcodes path to WorkDir/<basename>_audio.wav and decodes it.
func (d FFmpegDecoder) Decode(ctx context.Context, path string) (TranscodeResult, error) {
	binary := d.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	wavPath, err := d.transcode(ctx, binary, path)
	if err != nil {
		return TranscodeResult{}, err
	}

	return DecodeWAV(wavPath)
}

func (d FFmpegDecoder) transcode(ctx context.Context, binary, path string) (string, error) {
	wavPath := tempWAVPath(d.WorkDir, path)

	cmd := exec.CommandContext(ctx, binary, "-n", "-i", path, wavPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("audiodecode: ffmpeg %s: %w: %s", path, err, out)
	}

	return wavPath, nil
}

// DecodeWAV reads a PCM WAV file and returns mono, normalized samples.
func DecodeWAV(path string) (TranscodeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return TranscodeResult{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return TranscodeResult{}, fmt.Errorf("audiodecode: %s: %w", path, ErrInvalidWAV)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return TranscodeResult{}, fmt.Errorf("audiodecode: %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	nFrames := buf.NumFrames()
	pcm := make([]float64, nFrames)
	scale := fullScaleFor(buf.SourceBitDepth)

	for i := 0; i < nFrames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			idx := i*channels + c
			if idx >= len(buf.Data) {
				continue
			}
			sum += float64(buf.Data[idx]) / scale
		}
		pcm[i] = sum / float64(channels)
	}

	return TranscodeResult{PCM: pcm, SampleRate: buf.Format.SampleRate}, nil
}

func fullScaleFor(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 0x7F
	case 24:
		return 0x7FFFFF
	case 32:
		return 0x7FFFFFFF
	default: // 16-bit is overwhelmingly the common case
		return 0x7FFF
	}
}

func tempWAVPath(workDir, sourcePath string) string {
	name := filepath.Base(sourcePath)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(workDir, base+"_audio.wav")
}
