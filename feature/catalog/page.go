package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// ItemPage is the render context of a successful item page.
type ItemPage struct {
	Title  string
	ItemID string
	Item   Item
}

// ErrorPage is the render context of a failed item page.
type ErrorPage struct {
	Title   string
	Status  int
	Message string
}

// Pages holds the parsed page templates.
type Pages struct {
	item    *template.Template
	errPage *template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	funcs := template.FuncMap{"display": display}

	item, err := template.New("item").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/item.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse item template: %w", err)
	}
	errPage, err := template.New("error").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse error template: %w", err)
	}
	return &Pages{item: item, errPage: errPage}, nil
}

// RenderItem renders the item page.
func (p *Pages) RenderItem(id string, item Item) ([]byte, error) {
	return execute(p.item, ItemPage{Title: itemTitle(id, item), ItemID: id, Item: item})
}

// RenderError renders the error page for a failed load.
func (p *Pages) RenderError(e *UpstreamError) ([]byte, error) {
	return execute(p.errPage, ErrorPage{Title: e.Message, Status: e.Status, Message: e.Message})
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// itemTitle prefers the record's "name" field and falls back to the identifier.
func itemTitle(id string, item Item) string {
	if name, ok := item["name"].(string); ok && name != "" {
		return name
	}
	return id
}

// display prints scalars as-is and nested values as compact JSON.
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}
