// Package tree builds bounded structure trees from parsed analysis data
// for interactive inspection.
//
// Trees are capped in both depth and total node count; anything beyond a
// cap collapses into a single "truncated" leaf. The caps are what make
// tree construction terminate in bounded work on arbitrarily deep or wide
// input, so they cannot be disabled, only resized through the inspector
// options.
package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medwire/inspector"
)

// Node is one node of a structure tree.
type Node struct {
	// Key is the field name, array index ("[3]") or synthetic label.
	Key string `json:"key"`

	// Type tags the node: "string", "number", "boolean", "null",
	// "array", "object", "table", "tableRow" or "truncated".
	Type string `json:"type"`

	// Value is a one-line summary. A node with children may still carry
	// one ("Array(5)", "Object(12)").
	Value string `json:"value,omitempty"`

	// IsPriority marks keys that deserve display emphasis (id, status,
	// code and similar clinically prominent fields).
	IsPriority bool `json:"isPriority,omitempty"`

	// Children holds the node's expanded children, in display order.
	Children []*Node `json:"children,omitempty"`
}

// priorityFields are the keys surfaced first and marked for emphasis.
var priorityFields = map[string]bool{
	"resourcetype": true,
	"id":           true,
	"status":       true,
	"code":         true,
	"name":         true,
	"type":         true,
	"value":        true,
	"system":       true,
	"display":      true,
	"reference":    true,
	"url":          true,
	"version":      true,
	"title":        true,
}

const (
	maxArrayChildren  = 10
	maxObjectChildren = 15
	maxPreviewItems   = 3
	maxValueLen       = 50
)

// Build constructs a bounded structure tree for a parsed value, typically
// the DetailedStructure of a ParseResult. Each call uses fresh traversal
// state, so concurrent builds share nothing.
func Build(v any, opts ...inspector.Option) *Node {
	o := inspector.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	b := &builder{maxDepth: o.MaxTreeDepth, maxItems: o.MaxTreeItems}

	switch val := v.(type) {
	case []any:
		root := &Node{Key: "root", Type: "array", Value: fmt.Sprintf("Array(%d)", len(val))}
		b.itemCount++
		for i, item := range val {
			root.Children = append(root.Children, b.node(fmt.Sprintf("[%d]", i), item, 1))
		}
		return root
	case map[string]any:
		root := &Node{Key: "root", Type: "object", Value: fmt.Sprintf("Object(%d)", len(val))}
		b.itemCount++
		for _, key := range orderedKeys(val) {
			root.Children = append(root.Children, b.node(key, val[key], 1))
		}
		return root
	default:
		return &Node{Key: "value", Type: typeTag(v), Value: formatValue(v)}
	}
}

// builder carries the per-build caps and node budget.
type builder struct {
	maxDepth  int
	maxItems  int
	itemCount int
}

func (b *builder) node(key string, v any, depth int) *Node {
	if depth > b.maxDepth || b.itemCount >= b.maxItems {
		return &Node{Key: key, Type: "truncated", Value: "(...)"}
	}
	b.itemCount++

	switch val := v.(type) {
	case []any:
		n := &Node{
			Key:        key,
			Type:       "array",
			Value:      arraySummary(val),
			IsPriority: priorityFields[strings.ToLower(key)],
		}
		items := val
		if len(items) > maxArrayChildren {
			items = items[:maxArrayChildren]
		}
		for i, item := range items {
			n.Children = append(n.Children, b.node(fmt.Sprintf("[%d]", i), item, depth+1))
		}
		return n

	case map[string]any:
		if isTable(val) {
			return b.table(key, val, depth)
		}
		n := &Node{
			Key:        key,
			Type:       "object",
			Value:      fmt.Sprintf("Object(%d)", len(val)),
			IsPriority: priorityFields[strings.ToLower(key)],
		}
		keys := orderedKeys(val)
		if len(keys) > maxObjectChildren {
			keys = keys[:maxObjectChildren]
		}
		for _, k := range keys {
			n.Children = append(n.Children, b.node(k, val[k], depth+1))
		}
		return n

	default:
		return &Node{
			Key:        key,
			Type:       typeTag(v),
			Value:      formatValue(v),
			IsPriority: priorityFields[strings.ToLower(key)],
		}
	}
}

// orderedKeys sorts keys alphabetically with priority fields first, so
// the clinically prominent fields surface at the top of each level.
func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi := priorityFields[strings.ToLower(keys[i])]
		pj := priorityFields[strings.ToLower(keys[j])]
		if pi != pj {
			return pi
		}
		return keys[i] < keys[j]
	})
	return keys
}

// arraySummary renders "Array(n)" with a short preview of leading scalar
// items.
func arraySummary(val []any) string {
	if len(val) == 0 {
		return "Array(0)"
	}
	preview := make([]string, 0, maxPreviewItems)
	for _, item := range val {
		if len(preview) == maxPreviewItems {
			break
		}
		switch item.(type) {
		case []any:
			preview = append(preview, "[...]")
		case map[string]any:
			preview = append(preview, "{...}")
		default:
			preview = append(preview, formatValue(item))
		}
	}
	suffix := ""
	if len(val) > maxPreviewItems {
		suffix = "..."
	}
	return fmt.Sprintf("Array(%d): %s%s", len(val), strings.Join(preview, ", "), suffix)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if len(val) > maxValueLen {
			return val[:maxValueLen] + "..."
		}
		return val
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func typeTag(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
