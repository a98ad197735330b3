// Package normalize strips presentational inline markup from a document tree.
//
// Decorative elements (links, bold, italics, superscripts, citations, spans)
// split cell text into many runs. The [Normalizer] replaces each such element
// with its own children and then glues adjacent text nodes back together, so
// text that was visually one run becomes one text node again.
package normalize

import (
	"go.uber.org/zap"

	"github.com/tsawler/tabgrid/dom"
)

// DefaultDecorationTags is the set of inline tags unwrapped by default.
var DefaultDecorationTags = []string{"a", "b", "i", "sup", "cite", "span"}

// Stats summarizes one normalization run.
type Stats struct {
	Unwrapped int // decorative elements removed
	Merged    int // text nodes merged into a preceding sibling
	Visited   int // nodes visited
}

// Normalizer removes decorative elements in place.
type Normalizer struct {
	tags map[string]struct{}
	log  *zap.Logger
}

// New creates a normalizer for the given decoration tags. With no tags,
// DefaultDecorationTags is used. A nil logger disables logging.
func New(log *zap.Logger, tags ...string) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	if len(tags) == 0 {
		tags = DefaultDecorationTags
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return &Normalizer{tags: set, log: log.Named("normalize")}
}

// IsDecoration reports whether tag is unwrapped by this normalizer.
func (n *Normalizer) IsDecoration(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// Normalize rewrites the subtree rooted at root. At every node it unwraps
// decorative children until none remain, merges adjacent text children, and
// then descends into what is left. root itself is never unwrapped.
//
// The tree is mutated in place; callers must not run Normalize concurrently
// on overlapping subtrees.
func (n *Normalizer) Normalize(t *dom.Tree, root dom.NodeID) (Stats, error) {
	if err := t.Check(root); err != nil {
		return Stats{}, err
	}

	var st Stats
	n.normalize(t, root, &st)

	n.log.Debug("Normalized subtree",
		zap.Int("root", int(root)),
		zap.Int("unwrapped", st.Unwrapped),
		zap.Int("merged", st.Merged),
		zap.Int("visited", st.Visited))
	return st, nil
}

func (n *Normalizer) normalize(t *dom.Tree, id dom.NodeID, st *Stats) {
	st.Visited++

	decorative := func(c dom.NodeID) bool {
		return n.IsDecoration(t.TagName(c))
	}
	// Unwrapping can expose a decorative element that was nested inside
	// another one, so repeat until a pass changes nothing.
	for {
		k := t.UnwrapChildren(id, decorative)
		if k == 0 {
			break
		}
		st.Unwrapped += k
	}
	st.Merged += t.MergeAdjacentText(id)

	for _, c := range t.Children(id) {
		n.normalize(t, c, st)
	}
}
