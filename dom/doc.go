// Package dom provides an index-addressed document tree.
//
// Nodes live in a single arena owned by a [Tree] and are referenced by
// [NodeID]. Every node records its parent as an index ([NoNode] for the root or
// for detached nodes) and its children as an ordered list of indices, so
// structural edits are plain slice operations and no ownership cycles exist.
//
// # Building
//
// Trees are normally produced from parsed markup:
//
//	doc, _ := html.Parse(r)
//	tree, root := dom.FromHTML(doc)
//
// or assembled by hand:
//
//	tree := dom.New()
//	td := tree.NewElement("td", dom.Attribute{Key: "colspan", Val: "2"})
//	tree.AppendChild(tree.Root(), td)
//	tree.AppendChild(td, tree.NewText("cell"))
//
// # Queries
//
// [FindElements], [CollectText], [Tree.Attribute] and [Tree.TagName] are the
// read-only lookups used by table extraction.
//
// # Mutation
//
// [Tree.UnwrapChildren] and [Tree.MergeAdjacentText] are the in-place rewrites
// used by decoration normalization. Nodes removed from the tree stay in the
// arena, detached, so identifiers never change meaning.
package dom
