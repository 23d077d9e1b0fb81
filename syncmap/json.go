package syncmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteJSON writes one <name>.json file per text entry into dir, each
// holding a fragment-id-keyed object of FragmentInfo, matching the
// original tool's json.dump(fragment_map, indent=2) output shape.
func WriteJSON(s SyncMap, dir string) error {
	for _, text := range s.Texts {
		data, err := marshalFragments(text.Fragments)
		if err != nil {
			return fmt.Errorf("syncmap: %s: %w", text.TextFile, err)
		}

		name := dropExtension(filepath.Base(text.TextFile)) + ".json"
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("syncmap: %s: %w", text.TextFile, err)
		}
	}

	return nil
}

// marshalFragments renders fragments as a JSON object keyed by fragment
// id, in fragment order — encoding/json alone cannot do this for a Go
// map (it sorts keys alphabetically), so the object is built by hand
// from already-escaped, indented pieces.
func marshalFragments(fragments []FragmentEntry) ([]byte, error) {
	if len(fragments) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range fragments {
		key, err := json.Marshal(f.FragmentID)
		if err != nil {
			return nil, err
		}
		value, err := json.MarshalIndent(f.FragmentInfo, "  ", "  ")
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "  %s: %s", key, value)
		if i < len(fragments)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")

	return buf.Bytes(), nil
}

func dropExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}

	return name
}
