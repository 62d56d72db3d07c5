package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/navmenu/pkg/html"
	"github.com/mchmarny/navmenu/pkg/route"
)

func at(path string, params map[string]any) *route.Snapshot {
	return &route.Snapshot{Path: path, Values: params}
}

func TestShow_EndToEnd(t *testing.T) {
	m := New().WithItems(
		Item{Label: "Home", URL: Link("site/index")},
		Item{Label: "Products", URL: To("product/index", nil), Items: []Item{
			{Label: "New", URL: Link("product/index/new")},
		}},
	)

	want := "<ul>" +
		`<li><a href="site/index">Home</a></li>` + "\n" +
		`<li class="active"><a href="/product/index">Products</a>` +
		"\n<ul>\n" + `<li><a href="product/index/new">New</a></li>` + "\n</ul>\n" +
		"</li></ul>"

	assert.Equal(t, want, m.Show(at("product/index", nil)))
}

func TestShow_EmptyInput(t *testing.T) {
	assert.Equal(t, "", New().Show(at("site/index", nil)))

	hidden := New().WithItems(
		Item{Label: "Hidden", URL: Link("/x"), Visible: Bool(false)},
		Item{Label: "Empty", Items: []Item{}},
	)
	assert.Equal(t, "", hidden.Show(nil))
}

func TestShow_ContainerOptions(t *testing.T) {
	m := New().
		WithItems(Item{Label: "Home", URL: Link("/")}).
		WithOptions(html.Attributes{"tag": "ol", "id": "nav", "class": "menu"})

	assert.Equal(t, `<ol id="nav" class="menu"><li><a href="/">Home</a></li></ol>`, m.Show(nil))

	bare := m.WithOptions(html.Attributes{"tag": false})
	assert.Equal(t, `<li><a href="/">Home</a></li>`, bare.Show(nil))
}

func TestRender_WritesShowOutput(t *testing.T) {
	m := New().WithItems(Item{Label: "Home", URL: Link("/")})

	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf, nil))
	assert.Equal(t, m.Show(nil), buf.String())
}

func TestRenderItem_TemplateSubstitution(t *testing.T) {
	m := New()
	nodes := m.WithItems(Item{Label: "Home", URL: Link("site/index")}).Normalize(nil)
	require.Len(t, nodes, 1)

	assert.Equal(t, `<a href="site/index">Home</a>`, m.renderItem(nodes[0]))
}

func TestRenderItem_LabelOnlyAndCustomTemplates(t *testing.T) {
	m := New().
		WithLabelTemplate("<span>{label}</span>").
		WithLinkTemplate(`<a class="x" href="{url}">{label}</a>`)

	nodes := m.WithItems(
		Item{Label: "Section"},
		Item{Label: "Docs", URL: Link("/docs?a=1&b=2")},
		Item{Label: "Own", URL: Link("/own"), Template: "[{label}]({url})"},
	).Normalize(nil)
	require.Len(t, nodes, 3)

	assert.Equal(t, "<span>Section</span>", m.renderItem(nodes[0]))
	assert.Equal(t, `<a class="x" href="/docs?a=1&amp;b=2">Docs</a>`, m.renderItem(nodes[1]))
	assert.Equal(t, "[Own](/own)", m.renderItem(nodes[2]))
}

func TestShow_FirstLastActiveClasses(t *testing.T) {
	m := New().
		WithFirstItemCSSClass("first").
		WithLastItemCSSClass("last").
		WithActiveCSSClass("active").
		WithItems(
			Item{Label: "A", URL: Link("/a")},
			Item{Label: "B", URL: Link("/b"), Active: Fixed(true)},
			Item{Label: "C", URL: Link("/c")},
		)

	lines := strings.Split(m.Show(nil), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<ul><li class="first"><a href="/a">A</a></li>`, lines[0])
	assert.Equal(t, `<li class="active"><a href="/b">B</a></li>`, lines[1])
	assert.Equal(t, `<li class="last"><a href="/c">C</a></li></ul>`, lines[2])
}

func TestShow_SingleItemIsFirstAndLast(t *testing.T) {
	m := New().
		WithFirstItemCSSClass("first").
		WithLastItemCSSClass("last").
		WithItems(Item{Label: "Only", URL: Link("/"), Active: Fixed(true)})

	assert.Equal(t, `<ul><li class="active first last"><a href="/">Only</a></li></ul>`, m.Show(nil))
}

func TestShow_ItemOptionsMerge(t *testing.T) {
	m := New().
		WithItemOptions(html.Attributes{"class": "nav-item", "data-x": "1"}).
		WithItems(
			Item{Label: "A", URL: Link("/a"), Active: Fixed(true)},
			Item{Label: "B", URL: Link("/b"), Options: html.Attributes{"class": "special", "tag": "div"}},
			Item{Label: "C", Options: html.Attributes{"tag": false}},
		)

	lines := strings.Split(m.Show(nil), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<ul><li class="nav-item active" data-x="1"><a href="/a">A</a></li>`, lines[0])
	assert.Equal(t, `<div class="special" data-x="1"><a href="/b">B</a></div>`, lines[1])
	assert.Equal(t, `C</ul>`, lines[2])
}

func TestShow_SubmenuTemplateOverride(t *testing.T) {
	m := New().
		WithSubmenuTemplate("<ol>{items}</ol>").
		WithItems(
			Item{Label: "A", URL: Link("/a"), Items: []Item{{Label: "A1", URL: Link("/a1")}}},
			Item{Label: "B", URL: Link("/b"), SubmenuTemplate: "<div>{items}</div>", Items: []Item{{Label: "B1"}}},
		)

	out := m.Show(nil)
	assert.Contains(t, out, `<a href="/a">A</a><ol><li><a href="/a1">A1</a></li></ol>`)
	assert.Contains(t, out, `<a href="/b">B</a><div><li>B1</li></div>`)
}

func TestShow_DoesNotReencodeLabels(t *testing.T) {
	m := New().WithItems(
		Item{Label: "Fish & Chips", URL: Link("/f")},
		Item{Label: "<b>Bold</b>", URL: Link("/b"), Encode: Bool(false)},
	)

	out := m.Show(nil)
	assert.Contains(t, out, ">Fish &amp; Chips</a>")
	assert.Contains(t, out, "><b>Bold</b></a>")
}

func TestWithSetters_ReturnCopies(t *testing.T) {
	base := New()
	changed := base.
		WithActiveCSSClass("on").
		WithEncodeLabels(false).
		WithActivateItems(false).
		WithActivateParents(true).
		WithHideEmptyItems(false).
		WithLinkTemplate("L").
		WithLabelTemplate("B").
		WithSubmenuTemplate("S").
		WithFirstItemCSSClass("f").
		WithLastItemCSSClass("l")

	assert.Equal(t, DefaultConfig(), base.Config())

	cfg := changed.Config()
	assert.Equal(t, "on", cfg.ActiveCSSClass)
	assert.False(t, cfg.EncodeLabels)
	assert.False(t, cfg.ActivateItems)
	assert.True(t, cfg.ActivateParents)
	assert.False(t, cfg.HideEmptyItems)
	assert.Equal(t, "L", cfg.LinkTemplate)
	assert.Equal(t, "B", cfg.LabelTemplate)
	assert.Equal(t, "S", cfg.SubmenuTemplate)
	assert.Equal(t, "f", cfg.FirstItemCSSClass)
	assert.Equal(t, "l", cfg.LastItemCSSClass)
}

func TestWithOptions_ClonesInput(t *testing.T) {
	opts := html.Attributes{"id": "nav"}
	m := New().WithOptions(opts).WithItems(Item{Label: "A"})
	opts["id"] = "changed"

	assert.Equal(t, `<ul id="nav"><li>A</li></ul>`, m.Show(nil))
	assert.Equal(t, `<ul id="nav"><li>A</li></ul>`, m.Show(nil))
}

func TestRoutes(t *testing.T) {
	m := New().WithItems(
		Item{Label: "Home", URL: To("site/index", nil)},
		Item{Label: "Ext", URL: Link("https://example.com")},
		Item{Label: "Products", URL: To("product/index", nil), Items: []Item{
			{Label: "View", URL: To("product/view", map[string]any{"id": 1})},
			{Label: "Again", URL: To("product/index", nil)},
		}},
	)

	assert.Equal(t, []string{"site/index", "product/index", "product/view"}, m.Routes())
}
