package search

// BeforeRequest checks that the query can legally be dispatched: the verb
// must be GET or POST, and POST-only parameters must not be present on a GET
// query. It must run before any network I/O; a guard failure means no
// request is sent.
func BeforeRequest(q Query) error {
	if q.Verb != VerbGet && q.Verb != VerbPost {
		return &UnsupportedVerbError{Verb: q.Verb}
	}
	if q.Verb != VerbGet {
		return nil
	}
	if _, ok := q.Param(KeyIntersects); ok {
		return &UnsupportedCombinationError{
			Verb:   q.Verb,
			Param:  KeyIntersects,
			Reason: "geometry intersection filter requires POST",
		}
	}
	if _, ok := q.Param(KeyFilter); ok {
		return &UnsupportedCombinationError{
			Verb:   q.Verb,
			Param:  KeyFilter,
			Reason: "cql2-json filter expressions require POST",
		}
	}
	return nil
}
