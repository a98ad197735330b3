package dom

import "strings"

// FindElements returns every element with the given tag in the subtree rooted
// at root, root included, in pre-order (document order).
func FindElements(t *Tree, root NodeID, tag string) []NodeID {
	var found []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if t.IsElement(id, tag) {
			found = append(found, id)
		}
		for _, c := range t.nodes[id].children {
			walk(c)
		}
	}
	walk(root)
	return found
}

// CollectText concatenates the text of every text node in the subtree rooted
// at id, in document order. Each text run is collapsed with CollapseBlanks
// before it is appended.
func CollectText(t *Tree, id NodeID) string {
	var sb strings.Builder
	collectText(t, id, &sb)
	return sb.String()
}

func collectText(t *Tree, id NodeID, sb *strings.Builder) {
	n := &t.nodes[id]
	if n.kind == KindText {
		sb.WriteString(CollapseBlanks(n.data))
	}
	for _, c := range n.children {
		collectText(t, c, sb)
	}
}

// CollapseBlanks replaces each run of space characters with a single space
// and trims surrounding whitespace. Other whitespace inside the string, such
// as newlines, is preserved.
func CollapseBlanks(s string) string {
	if !strings.Contains(s, "  ") {
		return strings.TrimSpace(s)
	}
	var sb strings.Builder
	sb.Grow(len(s))
	prevBlank := false
	for _, r := range s {
		if r == ' ' {
			if prevBlank {
				continue
			}
			prevBlank = true
		} else {
			prevBlank = false
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
