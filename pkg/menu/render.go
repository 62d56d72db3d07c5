package menu

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/mchmarny/navmenu/pkg/html"
)

// renderItems renders sibling nodes, one element per line.
func (m Menu) renderItems(nodes []Node) string {
	lines := make([]string, 0, len(nodes))
	last := len(nodes) - 1

	for i, node := range nodes {
		opts := html.Merge(m.cfg.ItemOptions, node.Options)
		tag := tagName(opts.Remove("tag", defaultItemTag), defaultItemTag)

		var classes []string
		if node.Active {
			classes = append(classes, m.cfg.ActiveCSSClass)
		}
		if i == 0 && m.cfg.FirstItemCSSClass != "" {
			classes = append(classes, m.cfg.FirstItemCSSClass)
		}
		if i == last && m.cfg.LastItemCSSClass != "" {
			classes = append(classes, m.cfg.LastItemCSSClass)
		}
		html.AddClass(opts, classes...)

		body := m.renderItem(node)
		if node.HasSubmenu() {
			tpl := node.SubmenuTemplate
			if tpl == "" {
				tpl = m.cfg.SubmenuTemplate
			}
			body += strings.NewReplacer("{items}", m.renderItems(node.Items)).Replace(tpl)
		}

		lines = append(lines, html.Tag(tag, body, opts))
	}

	return strings.Join(lines, "\n")
}

// renderItem renders the body of a single node. The label is inserted as
// normalized, the URL is encoded.
func (m Menu) renderItem(node Node) string {
	tpl := node.Template

	if node.URL != nil {
		if tpl == "" {
			tpl = m.cfg.LinkTemplate
		}
		return strings.NewReplacer(
			"{url}", html.EncodeAttribute(node.Href),
			"{label}", node.Label,
		).Replace(tpl)
	}

	if tpl == "" {
		tpl = m.cfg.LabelTemplate
	}

	return strings.NewReplacer("{label}", node.Label).Replace(tpl)
}

// tagName resolves a "tag" option. false, nil and "" suppress the element.
func tagName(v any, def string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return def
		}
		return ""
	default:
		return cast.ToString(t)
	}
}
