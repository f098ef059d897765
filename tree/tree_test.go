package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwire/inspector"
)

func TestBuild_Object(t *testing.T) {
	value := map[string]any{
		"resourceType": "Patient",
		"active":       true,
		"age":          float64(44),
		"nickname":     nil,
	}

	root := Build(value)
	assert.Equal(t, "root", root.Key)
	assert.Equal(t, "object", root.Type)
	assert.Equal(t, "Object(4)", root.Value)
	require.Len(t, root.Children, 4)

	// Priority keys come first, the rest alphabetically.
	assert.Equal(t, "resourceType", root.Children[0].Key)
	assert.True(t, root.Children[0].IsPriority)
	assert.Equal(t, "active", root.Children[1].Key)
	assert.False(t, root.Children[1].IsPriority)
	assert.Equal(t, "age", root.Children[2].Key)
	assert.Equal(t, "number", root.Children[2].Type)
	assert.Equal(t, "44", root.Children[2].Value)
	assert.Equal(t, "nickname", root.Children[3].Key)
	assert.Equal(t, "null", root.Children[3].Type)
	assert.Equal(t, "null", root.Children[3].Value)
}

func TestBuild_Array(t *testing.T) {
	root := Build([]any{"a", "b", "c", "d"})
	assert.Equal(t, "array", root.Type)
	assert.Equal(t, "Array(4)", root.Value)
	require.Len(t, root.Children, 4)
	assert.Equal(t, "[0]", root.Children[0].Key)
	assert.Equal(t, "a", root.Children[0].Value)
}

func TestBuild_Scalar(t *testing.T) {
	root := Build("hello")
	assert.Equal(t, "value", root.Key)
	assert.Equal(t, "string", root.Type)
	assert.Equal(t, "hello", root.Value)
	assert.Empty(t, root.Children)
}

func TestBuild_NestedArraySummary(t *testing.T) {
	value := map[string]any{
		"codes": []any{"a", "b", "c", "d", "e"},
	}

	root := Build(value)
	require.Len(t, root.Children, 1)
	codes := root.Children[0]
	assert.Equal(t, "array", codes.Type)
	assert.Equal(t, "Array(5): a, b, c...", codes.Value)
	assert.Len(t, codes.Children, 5)
}

func TestBuild_ArrayChildCap(t *testing.T) {
	items := make([]any, 30)
	for i := range items {
		items[i] = float64(i)
	}

	root := Build(map[string]any{"items": items})
	require.Len(t, root.Children, 1)
	// Arrays expand at most ten children below the root level.
	assert.Len(t, root.Children[0].Children, maxArrayChildren)
}

func TestBuild_DepthCap(t *testing.T) {
	// Build a chain deeper than the cap.
	value := map[string]any{}
	cur := value
	for i := 0; i < 30; i++ {
		next := map[string]any{}
		cur["child"] = next
		cur = next
	}
	cur["leaf"] = "end"

	root := Build(value, inspector.WithMaxTreeDepth(3))

	n := root
	depth := 0
	for len(n.Children) > 0 {
		n = n.Children[0]
		depth++
	}
	assert.Equal(t, "truncated", n.Type)
	assert.Equal(t, "(...)", n.Value)
	assert.LessOrEqual(t, depth, 4)
}

func TestBuild_ItemCap(t *testing.T) {
	value := map[string]any{}
	// Well past the item budget once expanded.
	items := make([]any, 9)
	for i := range items {
		items[i] = float64(i)
	}
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		value[k] = append([]any{}, items...)
	}

	root := Build(value, inspector.WithMaxTreeItems(10))

	truncated := 0
	var walk func(n *Node)
	total := 0
	walk = func(n *Node) {
		total++
		if n.Type == "truncated" {
			truncated++
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	assert.Greater(t, truncated, 0, "expected truncated leaves under a tight item budget")
	// Truncated markers are leaves, so the tree stays near the budget.
	assert.LessOrEqual(t, total, 10+truncated+1)
}

func TestBuild_Table(t *testing.T) {
	table := map[string]any{
		"thead": map[string]any{
			"tr": map[string]any{
				"th": []any{"Test", "Result"},
			},
		},
		"tbody": map[string]any{
			"tr": []any{
				map[string]any{"td": []any{"Glucose", "95"}},
				map[string]any{"td": []any{"Sodium", "140"}},
			},
		},
	}

	root := Build(map[string]any{"table": table})
	require.Len(t, root.Children, 1)
	tbl := root.Children[0]
	assert.Equal(t, "table", tbl.Type)
	assert.Equal(t, "Table(2 rows)", tbl.Value)
	require.Len(t, tbl.Children, 2)

	row := tbl.Children[0]
	assert.Equal(t, "Row 1", row.Key)
	assert.Equal(t, "tableRow", row.Type)
	require.Len(t, row.Children, 2)
	assert.Equal(t, "Test", row.Children[0].Key)
	assert.Equal(t, "Glucose", row.Children[0].Value)
	assert.Equal(t, "string", row.Children[0].Type)
	assert.Equal(t, "Result", row.Children[1].Key)
	assert.Equal(t, "95", row.Children[1].Value)
	assert.Equal(t, "number", row.Children[1].Type)
}

func TestBuild_TableWithoutHeaders(t *testing.T) {
	table := map[string]any{
		"tr": []any{
			map[string]any{"td": []any{"a", "b"}},
		},
	}

	root := Build(map[string]any{"narrative": table})
	row := root.Children[0].Children[0]
	require.Len(t, row.Children, 2)
	assert.Equal(t, "Column 1", row.Children[0].Key)
	assert.Equal(t, "Column 2", row.Children[1].Key)
}

func TestBuild_LongStringTruncated(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "abcdefgh"
	}

	root := Build(map[string]any{"note": long})
	require.Len(t, root.Children, 1)
	assert.Len(t, root.Children[0].Value, maxValueLen+3)
}
