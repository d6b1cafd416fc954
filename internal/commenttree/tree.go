// Package commenttree turns the flat comment rows of a post into the
// two-level thread shown under it: root comments newest first, each with
// its replies oldest first.
package commenttree

import (
	"sort"

	"blog-platform/internal/domain"
)

// Stats describes the shape of a built tree.
type Stats struct {
	Roots     int
	Replies   int
	Orphans   int // parent set but not resolvable, promoted to root
	Collapsed int // replies whose direct parent was itself a reply
}

// Build arranges records into root nodes with flat reply lists.
// It never fails and never drops a record.
func Build(records []domain.CommentRecord) []domain.CommentNode {
	nodes, _ := BuildWithStats(records)
	return nodes
}

// BuildWithStats is Build plus counters for logging and metrics.
func BuildWithStats(records []domain.CommentRecord) ([]domain.CommentNode, Stats) {
	var stats Stats
	roots := make([]domain.CommentNode, 0)
	if len(records) == 0 {
		return roots, stats
	}

	index := make(map[string]int, len(records))
	for i, r := range records {
		if _, seen := index[r.ID]; !seen {
			index[r.ID] = i
		}
	}

	top, orphans := resolveRoots(records, index)
	stats.Orphans = orphans

	slot := make(map[int]int)
	for i, r := range records {
		if top[i] != i {
			continue
		}
		slot[i] = len(roots)
		roots = append(roots, domain.CommentNode{CommentRecord: r, Replies: []domain.CommentNode{}})
	}

	for i, r := range records {
		if top[i] == i {
			continue
		}
		s := slot[top[i]]
		roots[s].Replies = append(roots[s].Replies, domain.CommentNode{CommentRecord: r, Replies: []domain.CommentNode{}})
		if index[*r.ParentID] != top[i] {
			stats.Collapsed++
		}
		stats.Replies++
	}
	stats.Roots = len(roots)

	sort.SliceStable(roots, func(a, b int) bool {
		return roots[a].CreatedAt.After(roots[b].CreatedAt)
	})
	for i := range roots {
		replies := roots[i].Replies
		sort.SliceStable(replies, func(a, b int) bool {
			return replies[a].CreatedAt.Before(replies[b].CreatedAt)
		})
	}

	return roots, stats
}

// resolveRoots maps every record index to the index of its nearest root
// ancestor; a root maps to itself. Unresolvable parents, self references
// and parent cycles all end a chain, turning that record into a root.
func resolveRoots(records []domain.CommentRecord, index map[string]int) ([]int, int) {
	const unresolved = -1

	n := len(records)
	top := make([]int, n)
	onPath := make([]int, n) // walk number (1-based) that currently holds the record
	position := make([]int, n)
	for i := range top {
		top[i] = unresolved
	}

	orphans := 0
	path := make([]int, 0, 8)

	for start := 0; start < n; start++ {
		if top[start] != unresolved {
			continue
		}
		walk := start + 1
		path = path[:0]
		cur := start
		var root int

		for {
			if top[cur] != unresolved {
				root = top[cur]
				break
			}
			if onPath[cur] == walk {
				// cur closes a cycle: every member of the cycle becomes a root
				// and whatever led into it hangs off cur.
				for _, m := range path[position[cur]:] {
					top[m] = m
					orphans++
				}
				path = path[:position[cur]]
				root = cur
				break
			}
			onPath[cur] = walk
			position[cur] = len(path)
			path = append(path, cur)

			rec := records[cur]
			if rec.IsRoot() {
				root = cur
				break
			}
			parent, ok := index[*rec.ParentID]
			if !ok || parent == cur {
				orphans++
				root = cur
				break
			}
			cur = parent
		}

		for _, m := range path {
			top[m] = root
		}
	}

	return top, orphans
}
