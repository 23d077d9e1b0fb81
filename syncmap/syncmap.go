package syncmap

import (
	"fmt"
	"time"
)

// FragmentInfo is where one text fragment was matched in the recorded
// audio. Exactly one of (BeginTime, EndTime) or (Begin, End) is
// populated for a given SyncMap: BeginTime/EndTime hold the rendered
// H:MM:SS.mmm wire format used by WriteSMIL/WriteJSON; Begin/End hold
// the same instants as time.Duration for callers that asked for
// durations instead (align.Config.TimesAsTimedelta), mirroring the
// original tool's format_time(t, as_timedelta), which returns either a
// formatted string or a timedelta object, never both.
type FragmentInfo struct {
	AudioFile string `json:"audio_file"`
	BeginTime string `json:"begin_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Begin time.Duration `json:"-"`
	End   time.Duration `json:"-"`
}

// FragmentEntry pairs a fragment id with its match, preserving the
// document order fragments were mapped in.
type FragmentEntry struct {
	FragmentID string
	FragmentInfo
}

// TextEntry is one source text file's fragment mapping, in the order
// fragments were appended.
type TextEntry struct {
	TextFile  string
	Fragments []FragmentEntry
}

// SyncMap is the result of an alignment run: every source text file,
// each with its fragments mapped to time ranges in the recorded audio.
// Entries preserve insertion order so rendered output (fragment
// numbering, sequence position) is deterministic.
type SyncMap struct {
	Texts []TextEntry
}

// Put records that fragmentID in textFile matched info, creating a
// TextEntry for textFile if this is its first fragment.
func (s *SyncMap) Put(textFile, fragmentID string, info FragmentInfo) {
	for i := range s.Texts {
		if s.Texts[i].TextFile == textFile {
			s.Texts[i].Fragments = append(s.Texts[i].Fragments, FragmentEntry{FragmentID: fragmentID, FragmentInfo: info})

			return
		}
	}
	s.Texts = append(s.Texts, TextEntry{
		TextFile:  textFile,
		Fragments: []FragmentEntry{{FragmentID: fragmentID, FragmentInfo: info}},
	})
}

// EnsureText records textFile with no fragments yet, if it isn't
// already present — so a text file that matched nothing still appears
// in the output, mirroring the original tool's eager `sync_map[name] =
// {}` before any fragment is mapped.
func (s *SyncMap) EnsureText(textFile string) {
	for i := range s.Texts {
		if s.Texts[i].TextFile == textFile {
			return
		}
	}
	s.Texts = append(s.Texts, TextEntry{TextFile: textFile})
}

// String renders a flat human-readable dump: one line per text file,
// one line per fragment, matching the original tool's debug printer.
func (s SyncMap) String() string {
	var out string
	for _, text := range s.Texts {
		out += text.TextFile + "\n"
		for _, f := range text.Fragments {
			begin, end := f.BeginTime, f.EndTime
			if begin == "" && end == "" {
				begin, end = f.Begin.String(), f.End.String()
			}
			out += fmt.Sprintf("%s %s %s %s\n", f.FragmentID, f.AudioFile, begin, end)
		}
	}

	return out
}
