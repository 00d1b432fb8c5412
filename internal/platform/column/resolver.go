package column

import "strings"

var nameReplacer = strings.NewReplacer(" ", "_", ".", "_")

// Normalize lowercases a raw header and folds spaces and dots into underscores.
func Normalize(raw string) string {
	return nameReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// NormalizeAll normalizes every header, keeping the input order.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, Normalize(item))
	}
	return out
}

// Resolve picks the column that best matches the ranked candidate aliases.
// An exact match on any candidate wins over a substring match; within each
// pass candidates are scanned in order, then columns in their given order.
func Resolve(available []string, candidates []string) (string, bool) {
	for _, cand := range candidates {
		for _, col := range available {
			if cand == col {
				return col, true
			}
		}
	}

	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		for _, col := range available {
			if strings.Contains(col, cand) {
				return col, true
			}
		}
	}

	return "", false
}

// Index returns the position of column in available, or -1.
func Index(available []string, column string) int {
	for i, col := range available {
		if col == column {
			return i
		}
	}
	return -1
}

// ResolveIndex combines Resolve and Index.
func ResolveIndex(available []string, candidates []string) int {
	col, ok := Resolve(available, candidates)
	if !ok {
		return -1
	}
	return Index(available, col)
}
