// Package extract applies declarative selector rules to parsed HTML documents.
// A Ruleset describes which nodes form a record and how each field of the
// record is read, so markup changes on the source site only touch rule data.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Kind selects how a field value is read from its node.
type Kind int

const (
	// Text reads the trimmed text content of every matched node.
	Text Kind = iota
	// Link reads an attribute of the first matched node and resolves it to
	// an absolute https URL.
	Link
)

// Field maps one record field to a node and a way of reading it.
type Field struct {
	Name     string
	Selector string // relative to the item; empty means the item itself
	Attr     string // attribute to read; empty reads text
	Kind     Kind
}

// Ruleset describes how to turn a document into a list of records.
type Ruleset struct {
	Scope  string // optional container the items must live in
	Item   string // one match per record
	Fields []Field
}

// Record holds the extracted values of one item. Link fields that were
// missing or malformed are absent; text fields are always present.
type Record map[string]string

// Get returns a field value and whether it was present.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// String returns a field value or the empty string.
func (r Record) String(name string) string {
	return r[name]
}

// All returns one record per item in document order. It never fails: a
// document without matching items yields an empty slice.
func All(doc *goquery.Document, base *url.URL, rs Ruleset) []Record {
	records := []Record{}
	items(doc, rs).Each(func(_ int, s *goquery.Selection) {
		records = append(records, read(s, base, rs.Fields))
	})
	return records
}

// First returns the record of the first matching item. Later matches are
// ignored.
func First(doc *goquery.Document, base *url.URL, rs Ruleset) (Record, bool) {
	sel := items(doc, rs).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return read(sel, base, rs.Fields), true
}

func items(doc *goquery.Document, rs Ruleset) *goquery.Selection {
	root := doc.Selection
	if rs.Scope != "" {
		root = root.Find(rs.Scope)
	}
	return root.Find(rs.Item)
}

func read(s *goquery.Selection, base *url.URL, fields []Field) Record {
	rec := make(Record, len(fields))
	for _, f := range fields {
		node := s
		if f.Selector != "" {
			node = s.Find(f.Selector)
		}

		switch f.Kind {
		case Link:
			raw, ok := node.First().Attr(f.Attr)
			if !ok {
				continue
			}
			if abs, ok := resolve(base, raw); ok {
				rec[f.Name] = abs
			}
		default:
			if f.Attr != "" {
				rec[f.Name] = strings.TrimSpace(node.First().AttrOr(f.Attr, ""))
			} else {
				rec[f.Name] = strings.TrimSpace(node.Text())
			}
		}
	}
	return rec
}

// resolve turns an href/src value into an absolute https URL. Relative and
// protocol-relative values are resolved against base; http is upgraded.
func resolve(base *url.URL, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	switch u.Scheme {
	case "https":
	case "http":
		// Everything downstream fetches over https only.
		u.Scheme = "https"
	default:
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return u.String(), true
}
