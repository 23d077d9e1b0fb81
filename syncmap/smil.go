package syncmap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// smilTemplate renders one EPUB3 Media Overlays document per text
// file: a single top-level <seq> referencing the text file, containing
// one <par> per mapped fragment. Per the EPUB3 spec, a par whose clip
// has zero duration is omitted — WriteSMIL filters those out before
// the template ever sees them.
var smilTemplate = template.Must(template.New("smil").Funcs(template.FuncMap{
	"esc": xmlEscape,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<smil xmlns="http://www.w3.org/ns/SMIL" xmlns:epub="http://www.idpf.org/2007/ops" version="3.0">
  <body>
    <seq id="seq1" epub:textref="{{esc .TextPath}}">
{{- range .Parallels}}
      <par id="{{.ID}}">
        <text src="{{esc $.TextPath}}#{{esc .FragmentID}}"/>
        <audio src="{{esc .AudioPath}}" clipBegin="{{.BeginTime}}" clipEnd="{{.EndTime}}"/>
      </par>
{{- end}}
    </seq>
  </body>
</smil>
`))

type smilData struct {
	TextPath  string
	Parallels []smilParallel
}

type smilParallel struct {
	ID         string
	FragmentID string
	AudioPath  string
	BeginTime  string
	EndTime    string
}

// WriteSMIL writes one <name>.smil file per text entry into dir.
func WriteSMIL(s SyncMap, dir string) error {
	for _, text := range s.Texts {
		data := smilData{TextPath: text.TextFile}
		width := digitsFor(len(text.Fragments))
		for i, f := range text.Fragments {
			// EPUB3 requires clipBegin < clipEnd; a fragment matched to
			// a zero-length span carries no audible content and is
			// dropped rather than emitted as an invalid par.
			if f.BeginTime == f.EndTime {
				continue
			}
			data.Parallels = append(data.Parallels, smilParallel{
				ID:         fmt.Sprintf("par%0*d", width, i+1),
				FragmentID: f.FragmentID,
				AudioPath:  f.AudioFile,
				BeginTime:  f.BeginTime,
				EndTime:    f.EndTime,
			})
		}

		var buf bytes.Buffer
		if err := smilTemplate.Execute(&buf, data); err != nil {
			return fmt.Errorf("syncmap: %s: %w", text.TextFile, err)
		}

		name := dropExtension(filepath.Base(text.TextFile)) + ".smil"
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("syncmap: %s: %w", text.TextFile, err)
		}
	}

	return nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}

// digitsFor returns the number of base-10 digits needed to print n,
// matching the original tool's zero-padded par id width.
func digitsFor(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}

	return digits
}
