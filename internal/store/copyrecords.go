package store

// CopyRecord asserts that the content at Target derives from Source in the
// prior snapshot. It drives rename/copy rendering and delete suppression.
type CopyRecord struct {
	Source Path
	Target Path
}

// CopyRecords is an index of CopyRecord entries, queryable by source or
// target path.
type CopyRecords struct {
	records []CopyRecord
}

// NewCopyRecords builds an index from a slice of records.
func NewCopyRecords(records []CopyRecord) *CopyRecords {
	return &CopyRecords{records: append([]CopyRecord(nil), records...)}
}

// Iter returns the underlying records in insertion order.
func (c *CopyRecords) Iter() []CopyRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// TargetOf returns the source path copy-recorded for the given target, if
// any.
func (c *CopyRecords) TargetOf(target Path) (Path, bool) {
	if c == nil {
		return "", false
	}
	for _, r := range c.records {
		if r.Target == target {
			return r.Source, true
		}
	}
	return "", false
}

// Sources returns the set of source paths whose target is matched by m.
// This is the suppression set for delete entries: a copy/rename's "delete
// half" at the source path is implicit in the rename's to/from pair, and
// should not be rendered again as a standalone removal. Built once per
// render call, per design note "copy-record suppression set".
func (c *CopyRecords) Sources(m Matcher) map[Path]struct{} {
	out := make(map[Path]struct{})
	if c == nil {
		return out
	}
	for _, r := range c.records {
		if m.Matches(r.Target) {
			out[r.Source] = struct{}{}
		}
	}
	return out
}
