package combinator

import "sort"

// TokenIDs returns every distinct token id referenced by a Token node
// anywhere in root's tree, sorted. Used at grammar construction time
// (§4.7) to validate that a grammar never references an id absent from
// its token table.
func TokenIDs(root Expr) []string {
	seen := make(map[string]bool)
	collectTokenIDs(root, seen)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func collectTokenIDs(e Expr, seen map[string]bool) {
	switch v := e.(type) {
	case *TokenExpr:
		seen[v.ID] = true
	case *AndExpr:
		collectTokenIDs(v.Left, seen)
		collectTokenIDs(v.Right, seen)
	case *OrExpr:
		collectTokenIDs(v.Left, seen)
		collectTokenIDs(v.Right, seen)
	case epsilonExpr:
		// no token references
	case *MuteExpr:
		collectTokenIDs(v.X, seen)
	case *OptionalExpr:
		collectTokenIDs(v.X, seen)
	case *StarExpr:
		collectTokenIDs(v.X, seen)
	case *NamedExpr:
		collectTokenIDs(v.X, seen)
	}
}
