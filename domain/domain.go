// Package domain holds the enumerated value domains of the OpenXR Toolkit settings
// and the static mapping from attribute names to those domains.
package domain

import "github.com/samber/lo"

// Entry pairs a human-readable label with the numeric code persisted in the store.
type Entry struct {
	Label string `json:"label"`
	Code  int64  `json:"code"`
}

// Domain is a named, closed, ordered set of entries. It is never mutated after construction.
type Domain struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

func newDomain(name string, entries ...Entry) *Domain {
	labels := lo.Map(entries, func(e Entry, _ int) string { return e.Label })
	codes := lo.Map(entries, func(e Entry, _ int) int64 { return e.Code })
	if len(lo.Uniq(labels)) != len(entries) || len(lo.Uniq(codes)) != len(entries) {
		panic("ambiguous domain: " + name)
	}

	return &Domain{Name: name, Entries: entries}
}

// Labels returns the valid labels in declaration order.
func (d *Domain) Labels() []string {
	return lo.Map(d.Entries, func(e Entry, _ int) string { return e.Label })
}

// Label decodes a stored code.
func (d *Domain) Label(code int64) (string, bool) {
	entry, ok := lo.Find(d.Entries, func(e Entry) bool { return e.Code == code })
	return entry.Label, ok
}

// Code encodes a label. Matching is case-sensitive.
func (d *Domain) Code(label string) (int64, bool) {
	entry, ok := lo.Find(d.Entries, func(e Entry) bool { return e.Label == label })
	return entry.Code, ok
}

// Has reports whether label belongs to the domain.
func (d *Domain) Has(label string) bool {
	_, ok := d.Code(label)
	return ok
}

// Next returns the label following current, wrapping around. Unknown labels yield the first entry.
func (d *Domain) Next(current string) string {
	_, i, ok := lo.FindIndexOf(d.Entries, func(e Entry) bool { return e.Label == current })
	if !ok {
		return d.Entries[0].Label
	}
	return d.Entries[(i+1)%len(d.Entries)].Label
}

// Prev returns the label preceding current, wrapping around. Unknown labels yield the last entry.
func (d *Domain) Prev(current string) string {
	_, i, ok := lo.FindIndexOf(d.Entries, func(e Entry) bool { return e.Label == current })
	if !ok {
		return d.Entries[len(d.Entries)-1].Label
	}
	return d.Entries[(i-1+len(d.Entries))%len(d.Entries)].Label
}
