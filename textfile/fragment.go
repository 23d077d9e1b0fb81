package textfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// fragmentID matches the id='f[0-9]+' convention used by narrated
// fragments; any other id is ignored.
var fragmentID = regexp.MustCompile(`^f[0-9]+$`)

// ErrNoFragments indicates a text file contained no id="f[0-9]+" elements.
var ErrNoFragments = errors.New("textfile: no fragments found")

// Fragment is one narrated unit of text: a paragraph, sentence or word,
// depending on how the source XHTML was split.
type Fragment struct {
	ID   string
	Text string
}

// Parse reads an XHTML document from r and returns its fragments in
// document order. Parsing tolerates HTML-style markup (unescaped
// entities, unclosed void elements) the way a browser would, since the
// narrated source files are not always strict XHTML.
func Parse(r io.Reader) ([]Fragment, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var fragments []Fragment
	var builders []strings.Builder
	var stack []int // fragment index (into fragments/builders) per open element, -1 if not a fragment

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("textfile: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if id := fragmentAttr(t); id != "" {
				fragments = append(fragments, Fragment{ID: id})
				builders = append(builders, strings.Builder{})
				stack = append(stack, len(fragments)-1)
			} else {
				stack = append(stack, -1)
			}
		case xml.CharData:
			if idx := innermostFragment(stack); idx >= 0 {
				builders[idx].Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if idx >= 0 {
				fragments[idx].Text = builders[idx].String()
			}
		}
	}

	return fragments, nil
}

// innermostFragment returns the fragment index that character data at
// the current depth belongs to: the nearest enclosing element that
// opened a fragment, or -1 if there is none.
func innermostFragment(stack []int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] >= 0 {
			return stack[i]
		}
	}

	return -1
}

func fragmentAttr(t xml.StartElement) string {
	for _, a := range t.Attr {
		if a.Name.Local == "id" && fragmentID.MatchString(a.Value) {
			return a.Value
		}
	}

	return ""
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fragments, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("textfile: %s: %w", path, err)
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("textfile: %s: %w", path, ErrNoFragments)
	}

	return fragments, nil
}

// DirSource walks a directory of XHTML files in lexicographic filename
// order, exposing them one at a time through Next — the same traversal
// order the original tool relies on (sorted os.listdir).
type DirSource struct {
	dir   string
	names []string
	pos   int
}

// NewDirSource lists dir once, eagerly, and sorts its entries.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() || e.Type()&fs.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return &DirSource{dir: dir, names: names}, nil
}

// Next returns the next text file's name and parsed fragments, or
// ok=false once every file has been consumed.
func (s *DirSource) Next() (name string, fragments []Fragment, ok bool, err error) {
	if s.pos >= len(s.names) {
		return "", nil, false, nil
	}

	name = s.names[s.pos]
	s.pos++
	fragments, err = ParseFile(filepath.Join(s.dir, name))
	if err != nil {
		return name, nil, true, err
	}

	return name, fragments, true, nil
}
