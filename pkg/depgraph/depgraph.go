// Package depgraph derives the conditional-dependency graph of a form and
// detects cycles among visibility rules.
//
// Each field has an outgoing edge to every field its conditions reference.
// Detection walks the graph depth-first with an explicit stack; meeting a
// node that is already on the active path signals a cycle and records that
// node as the re-entry point. The reported set therefore contains the entry
// points encountered, not necessarily every member of each cycle. Editor UIs
// surface these as warnings; visibility evaluation stays well defined either
// way because the traversal never revisits an on-path node.
package depgraph

import "github.com/goliatone/go-formschema/pkg/schema"

// Graph maps a field id to the ids it depends on, in rule order.
type Graph map[string][]string

// Build constructs the dependency graph for a field sequence. Every field
// gets an entry; fields without conditions map to a nil edge list.
func Build(fields []schema.FieldSchema) Graph {
	g := make(Graph, len(fields))
	for _, field := range fields {
		if field.Conditions == nil {
			g[field.ID] = nil
			continue
		}
		g[field.ID] = field.Conditions.DependsOn()
	}
	return g
}

// DetectCycles returns the ids at which dependency cycles re-enter the
// active traversal path, in first-encounter order. A schema with no
// conditional rules returns an empty result. A rule that names its own field
// is a one-node cycle.
func DetectCycles(fields []schema.FieldSchema) []string {
	g := Build(fields)

	visited := make(map[string]bool, len(fields))
	onStack := make(map[string]bool, len(fields))
	seen := make(map[string]bool)
	var entryPoints []string

	type frame struct {
		id   string
		next int
	}

	// Roots follow field order so re-entry reporting is deterministic for a
	// fixed schema.
	for _, root := range fields {
		if visited[root.ID] {
			continue
		}
		stack := []frame{{id: root.ID}}
		onStack[root.ID] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g[top.id]
			if top.next < len(edges) {
				ref := edges[top.next]
				top.next++
				if onStack[ref] {
					if !seen[ref] {
						seen[ref] = true
						entryPoints = append(entryPoints, ref)
					}
					continue
				}
				if visited[ref] {
					continue
				}
				// Rules may reference ids the schema no longer contains;
				// those nodes have no adjacency entry and simply pop.
				stack = append(stack, frame{id: ref})
				onStack[ref] = true
				continue
			}
			visited[top.id] = true
			delete(onStack, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	return entryPoints
}
