package diag

// Bag collects records in arrival order. Tests assert on its contents;
// the CLI uses it for the end-of-run summary.
type Bag struct {
	items []Record
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Report(r Record) {
	b.items = append(b.items, r)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the collected records.
// Do not modify the returned slice; it aliases the Bag's storage.
func (b *Bag) Items() []Record {
	return b.items
}

// Count returns how many records carry the given verdict.
func (b *Bag) Count(v Verdict) int {
	n := 0
	for i := range b.items {
		if b.items[i].Verdict == v {
			n++
		}
	}
	return n
}

// HasErrors reports whether any per-item error was recorded.
func (b *Bag) HasErrors() bool {
	return b.Count(VerdictError) > 0
}

// FindSubject returns the first record about the given subject name.
func (b *Bag) FindSubject(subject string) (Record, bool) {
	for _, r := range b.items {
		if r.Subject == subject {
			return r, true
		}
	}
	return Record{}, false
}
