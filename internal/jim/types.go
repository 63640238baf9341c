package jim

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"chart-manifest/internal/common"
	"chart-manifest/internal/manifest"
)

// Jim is an interaction map.
type Jim struct {
	Dataset   Dataset        `json:"dataset"`
	Selectors *SelectorTable `json:"selectors"`
}

// Dataset is the projection of a manifest dataset carried by a Jim.
type Dataset struct {
	Title  string                    `json:"title"`
	Facets map[string]manifest.Facet `json:"facets"`
	Series []Series                  `json:"series"`
}

// Series is a projected series with its simplified type.
type Series struct {
	Name    string               `json:"name"`
	Type    SeriesType           `json:"type"`
	Records []manifest.Datapoint `json:"records"`
}

// Envelope is a manifest carrying its own interaction map under "jim".
type Envelope struct {
	manifest.Manifest
	Jim *Jim `json:"jim"`
}

// NewEnvelope wraps m and j into one document.
func NewEnvelope(m *manifest.Manifest, j *Jim) *Envelope {
	return &Envelope{Manifest: *m, Jim: j}
}

// Paths holds the JSON paths a selector points at. A single path serializes
// as a string, several as an ordered list.
type Paths []string

func (p Paths) MarshalJSON() ([]byte, error) {
	if common.IsSingle(p) {
		return json.Marshal(p[0])
	}

	return json.Marshal([]string(p))
}

func (p *Paths) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = Paths{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("selector paths must be a string or list of strings: %w", err)
	}

	*p = list

	return nil
}

// Selector identifies a rendered element and the JSON it displays.
type Selector struct {
	DOM  string `json:"dom"`
	JSON Paths  `json:"json"`
}

// SelectorTable is an insertion-ordered map from selector key to Selector.
type SelectorTable struct {
	keys    []string
	entries map[string]Selector
}

// NewSelectorTable creates an empty table.
func NewSelectorTable() *SelectorTable {
	return &SelectorTable{entries: map[string]Selector{}}
}

// Set adds or replaces an entry. New keys go to the end.
func (t *SelectorTable) Set(key string, sel Selector) {
	if t.entries == nil {
		t.entries = map[string]Selector{}
	}

	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.entries[key] = sel
}

// Get returns the selector stored under key.
func (t *SelectorTable) Get(key string) (Selector, bool) {
	sel, ok := t.entries[key]
	return sel, ok
}

// Len returns the number of entries.
func (t *SelectorTable) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *SelectorTable) Keys() []string {
	return slices.Clone(t.keys)
}

// Equal reports whether both tables hold the same entries in the same order.
func (t *SelectorTable) Equal(o *SelectorTable) bool {
	if t == nil || o == nil {
		return t == o
	}

	if !slices.Equal(t.keys, o.keys) {
		return false
	}

	for _, k := range t.keys {
		a, b := t.entries[k], o.entries[k]
		if a.DOM != b.DOM || !slices.Equal(a.JSON, b.JSON) {
			return false
		}
	}

	return true
}

// DOMEntry groups every path referenced through one DOM selector.
type DOMEntry struct {
	DOM   string
	Paths Paths
}

// ByDOM inverts the table: each DOM selector maps to all paths referencing
// it, in first-seen order. Selectors appear in first-seen order too.
func (t *SelectorTable) ByDOM() []DOMEntry {
	var out []DOMEntry

	index := map[string]int{}

	for _, k := range t.keys {
		sel := t.entries[k]

		i, ok := index[sel.DOM]
		if !ok {
			i = len(out)
			index[sel.DOM] = i
			out = append(out, DOMEntry{DOM: sel.DOM})
		}

		for _, p := range sel.JSON {
			if !slices.Contains(out[i].Paths, p) {
				out[i].Paths = append(out[i].Paths, p)
			}
		}
	}

	return out
}

// Collisions returns the ByDOM entries whose DOM selector is shared by more
// than one key, as happens when distinct values normalize to the same id.
func (t *SelectorTable) Collisions() []DOMEntry {
	counts := map[string]int{}
	for _, k := range t.keys {
		counts[t.entries[k].DOM]++
	}

	var out []DOMEntry

	for _, e := range t.ByDOM() {
		if counts[e.DOM] > 1 {
			out = append(out, e)
		}
	}

	return out
}

func (t *SelectorTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(t.entries[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (t *SelectorTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("selector table must be a JSON object")
	}

	table := NewSelectorTable()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, _ := tok.(string)

		var sel Selector
		if err := dec.Decode(&sel); err != nil {
			return fmt.Errorf("selector %q: %w", key, err)
		}

		table.Set(key, sel)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = *table

	return nil
}
