package menu

import (
	"github.com/mchmarny/navmenu/pkg/html"
	"github.com/mchmarny/navmenu/pkg/route"
)

// normalize walks items in order and returns the surviving nodes and whether
// any of them resolved active. Children are normalized before their parent's
// activity is decided.
func (m Menu) normalize(items []Item, ctx route.Context) ([]Node, bool) {
	nodes := make([]Node, 0, len(items))
	active := false

	for _, item := range items {
		// hidden items are dropped together with their subtree
		if item.Visible != nil && !*item.Visible {
			continue
		}

		encode := m.cfg.EncodeLabels
		if item.Encode != nil {
			encode = *item.Encode
		}

		label := item.Label
		if encode {
			label = html.Encode(label)
		}

		node := Node{
			Label:           label,
			Href:            URLFor(item.URL, ctx),
			URL:             item.URL,
			Template:        item.Template,
			SubmenuTemplate: item.SubmenuTemplate,
			Options:         item.Options,
		}

		hasActiveChild := false
		if item.Items != nil {
			node.Items, hasActiveChild = m.normalize(item.Items, ctx)
			if len(node.Items) == 0 && m.cfg.HideEmptyItems {
				node.Items = nil
				if item.URL == nil {
					continue
				}
			}
		}

		switch spec := item.Active.(type) {
		case Fixed:
			// an explicit flag is kept as is, descendants never override it
			node.Active = bool(spec)
		case Predicate:
			if spec != nil {
				node.Active = spec(item, hasActiveChild, IsItemActive(item, ctx), m)
				break
			}
			node.Active = m.computeActive(item, hasActiveChild, ctx)
		default:
			node.Active = m.computeActive(item, hasActiveChild, ctx)
		}

		if node.Active {
			active = true
		}

		nodes = append(nodes, node)
	}

	return nodes, active
}

func (m Menu) computeActive(item Item, hasActiveChild bool, ctx route.Context) bool {
	if m.cfg.ActivateParents && hasActiveChild {
		return true
	}
	return m.cfg.ActivateItems && IsItemActive(item, ctx)
}
