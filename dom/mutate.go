package dom

import "strings"

// UnwrapChildren makes one pass over the children of parent and replaces every
// element child for which match returns true with that element's own
// children, in order and at the same position. Grandchildren spliced in by
// this pass are not examined again; callers wanting a fixed point repeat the
// call until it returns 0. It returns the number of elements unwrapped.
//
// Unwrapped elements stay in the arena, detached and childless.
func (t *Tree) UnwrapChildren(parent NodeID, match func(NodeID) bool) int {
	kids := t.nodes[parent].children
	unwrapped := 0
	for _, c := range kids {
		if t.nodes[c].kind == KindElement && match(c) {
			unwrapped++
		}
	}
	if unwrapped == 0 {
		return 0
	}

	out := make([]NodeID, 0, len(kids))
	for _, c := range kids {
		if t.nodes[c].kind != KindElement || !match(c) {
			out = append(out, c)
			continue
		}
		for _, g := range t.nodes[c].children {
			t.nodes[g].parent = parent
			out = append(out, g)
		}
		t.nodes[c].children = nil
		t.nodes[c].parent = NoNode
	}
	t.nodes[parent].children = out
	return unwrapped
}

// MergeAdjacentText concatenates every run of adjacent text children of parent
// into the first node of the run. The other nodes of the run are detached. It
// returns the number of nodes merged away.
func (t *Tree) MergeAdjacentText(parent NodeID) int {
	kids := t.nodes[parent].children
	if len(kids) < 2 {
		return 0
	}

	out := make([]NodeID, 0, len(kids))
	merged := 0
	for i := 0; i < len(kids); {
		c := kids[i]
		out = append(out, c)
		j := i + 1
		if t.nodes[c].kind == KindText {
			for j < len(kids) && t.nodes[kids[j]].kind == KindText {
				j++
			}
		}
		if j-i > 1 {
			var sb strings.Builder
			for _, k := range kids[i:j] {
				sb.WriteString(t.nodes[k].data)
			}
			t.nodes[c].data = sb.String()
			for _, k := range kids[i+1 : j] {
				t.nodes[k].parent = NoNode
			}
			merged += j - i - 1
		}
		i = j
	}
	if merged > 0 {
		t.nodes[parent].children = out
	}
	return merged
}
