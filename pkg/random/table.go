package random

// Pick returns a uniformly chosen element of table.
// It panics if table is empty.
func Pick(src Source, table []string) string {
	return Element(src, table)
}

// Element returns a uniformly chosen item. Category packages use it to select
// one of a fixed set of structural patterns, which keeps the dispatch
// exhaustive: there is no index that maps to "no pattern".
// It panics if items is empty.
func Element[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: select from empty table")
	}
	return items[Int(src, 0, len(items)-1)]
}
