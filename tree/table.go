package tree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CDA narrative blocks embed XHTML tables. Rendering them as raw
// thead/tbody/tr/td element nodes buries the actual data, so maps that
// look like tables collapse into "table" nodes whose rows pair each cell
// with its column header.

// isTable reports whether a decoded XML map carries table markup.
func isTable(m map[string]any) bool {
	if _, ok := m["thead"]; ok {
		return true
	}
	if _, ok := m["tbody"]; ok {
		return true
	}
	if _, ok := m["tr"]; ok {
		return true
	}
	return false
}

// table renders a decoded XHTML table as one node per row, each cell
// labeled with its column header when the table has one.
func (b *builder) table(key string, m map[string]any, depth int) *Node {
	headers := tableHeaders(m)
	rows := tableRows(m)

	n := &Node{
		Key:   key,
		Type:  "table",
		Value: fmt.Sprintf("Table(%d rows)", len(rows)),
	}

	for i, row := range rows {
		if depth+1 > b.maxDepth || b.itemCount >= b.maxItems {
			n.Children = append(n.Children, &Node{Key: fmt.Sprintf("Row %d", i+1), Type: "truncated", Value: "(...)"})
			break
		}
		b.itemCount++

		rowNode := &Node{Key: fmt.Sprintf("Row %d", i+1), Type: "tableRow"}
		for j, cell := range cells(row) {
			label := fmt.Sprintf("Column %d", j+1)
			if j < len(headers) {
				label = headers[j]
			}
			text := extractText(cell)
			rowNode.Children = append(rowNode.Children, &Node{
				Key:   label,
				Type:  cellType(text),
				Value: text,
			})
			b.itemCount++
		}
		n.Children = append(n.Children, rowNode)
	}
	return n
}

// tableHeaders collects the header texts from thead/tr/th, if present.
func tableHeaders(m map[string]any) []string {
	thead, ok := m["thead"].(map[string]any)
	if !ok {
		return nil
	}
	headerRow := firstRow(thead["tr"])
	if headerRow == nil {
		return nil
	}
	var out []string
	for _, th := range cellList(headerRow["th"]) {
		out = append(out, extractText(th))
	}
	return out
}

// tableRows collects the data rows, preferring tbody/tr over bare tr. A
// thead row mixed into bare tr content is not distinguished here; the
// header pairing still applies per position.
func tableRows(m map[string]any) []any {
	if tbody, ok := m["tbody"].(map[string]any); ok {
		return cellList(tbody["tr"])
	}
	return cellList(m["tr"])
}

// cells returns the td entries of a row map.
func cells(row any) []any {
	m, ok := row.(map[string]any)
	if !ok {
		return nil
	}
	return cellList(m["td"])
}

// firstRow normalizes a tr value to its first row map.
func firstRow(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		return val
	case []any:
		if len(val) > 0 {
			if m, ok := val[0].(map[string]any); ok {
				return m
			}
		}
	}
	return nil
}

// cellList normalizes a decoded XML value to a slice: single children
// decode as a bare value, repeated children as a slice.
func cellList(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	default:
		return []any{val}
	}
}

// extractText digs the display text out of a decoded XML value: the value
// itself when scalar, the #text entry of a map, or the first non-empty
// text of its children.
func extractText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if t, ok := val["#text"].(string); ok {
			return t
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			if k == "@attributes" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if t := extractText(val[k]); t != "" {
				return t
			}
		}
	case []any:
		for _, item := range val {
			if t := extractText(item); t != "" {
				return t
			}
		}
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
	return ""
}

// cellType tags a cell's text as number or string for display.
func cellType(text string) string {
	if text == "" {
		return "string"
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return "number"
	}
	return "string"
}
