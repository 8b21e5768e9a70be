package spell

import "fmt"

// Entry is a block of descriptive spell text. Implementations: StringEntry,
// EntriesEntry, TableEntry, ListEntry, InsetEntry.
//
// Lines, items and cells hold the source content as decoded from JSON. They
// are strings in almost all source data, but nested blocks are carried through
// untouched.
type Entry interface {
	isEntry()
}

// StringEntry is a plain paragraph
type StringEntry struct {
	Value string
}

// EntriesEntry is a named block of lines
type EntriesEntry struct {
	Name    *string
	Entries []interface{}
}

// TableEntry is a table with labelled, styled columns
type TableEntry struct {
	Caption   *string
	ColLabels []string
	ColStyles []string
	Rows      [][]interface{}
}

// ListEntry is a bulleted list
type ListEntry struct {
	Items []interface{}
}

// InsetEntry is a boxed sidebar quoting another book
type InsetEntry struct {
	Source  string
	Page    int
	Name    *string
	Entries []interface{}
}

func (StringEntry) isEntry()  {}
func (EntriesEntry) isEntry() {}
func (TableEntry) isEntry()   {}
func (ListEntry) isEntry()    {}
func (InsetEntry) isEntry()   {}

// EntryTree serializes an entry
func EntryTree(e Entry) *Tree {
	switch v := e.(type) {
	case StringEntry:
		return NewTree(TagStringEntry).Set("value", v.Value)
	case EntriesEntry:
		return NewTree(TagEntriesEntry).
			SetOptional("name", deref(v.Name), v.Name != nil).
			SetOptional("entries", v.Entries, v.Entries != nil)
	case TableEntry:
		return NewTree(TagTableEntry).
			SetOptional("caption", deref(v.Caption), v.Caption != nil).
			SetOptional("col-labels", v.ColLabels, v.ColLabels != nil).
			SetOptional("col-styles", v.ColStyles, v.ColStyles != nil).
			SetOptional("rows", v.Rows, v.Rows != nil)
	case ListEntry:
		return NewTree(TagListEntry).SetOptional("items", v.Items, v.Items != nil)
	case InsetEntry:
		return NewTree(TagInsetEntry).
			Set("source", v.Source).
			Set("page", v.Page).
			SetOptional("name", deref(v.Name), v.Name != nil).
			SetOptional("entries", v.Entries, v.Entries != nil)
	}
	panic(fmt.Sprintf("spell: unknown entry variant %T", e))
}

// EntryTrees serializes entries in order
func EntryTrees(entries []Entry) []*Tree {
	out := make([]*Tree, len(entries))
	for i, e := range entries {
		out[i] = EntryTree(e)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
