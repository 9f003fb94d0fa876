package markup

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// findByID walks a parsed document for the element with the given id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestRenderedValuesSurviveParsing(t *testing.T) {
	values := []string{
		"plain",
		`quotes " and ' apostrophes`,
		"<script>alert(1)</script>",
		"amp & entity &amp; lookalike",
		"multi\nline\ttabbed",
		"unicode ✓ héllo",
	}

	for i, v := range values {
		id := "n" + string(rune('a'+i))
		doc := String(Doctype(Html(Body(
			Div(ID(id), TitleAttr(v), Data("raw", v), Text(v)),
		))))

		parsed, err := html.Parse(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("parse %q: %v", doc, err)
		}
		n := findByID(parsed, id)
		if n == nil {
			t.Fatalf("element %s not found in %q", id, doc)
		}

		attrs := map[string]string{}
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		if attrs["title"] != v {
			t.Errorf("title round trip = %q, want %q", attrs["title"], v)
		}
		if attrs["data-raw"] != v {
			t.Errorf("data-raw round trip = %q, want %q", attrs["data-raw"], v)
		}
		if got := textContent(n); got != v {
			t.Errorf("text round trip = %q, want %q", got, v)
		}
	}
}

func TestRenderedTreeStructure(t *testing.T) {
	doc := String(Doctype(Html(Lang("en"),
		Head(Meta(Charset("utf-8")), Title(Text("T"))),
		Body(
			Main(ID("m"),
				Form(Action("/go"), Method("post"),
					Label(For("q"), Text("Query")),
					Input(ID("q"), Name("q"), Required()),
					Br(),
					Button(Type("submit"), Text("Go")),
				),
				Ul(Range([]string{"x", "y"}, func(s string, _ int) Part { return Li(Text(s)) })),
			),
		),
	)))

	if !strings.HasPrefix(doc, "<!DOCTYPE html><html lang=\"en\">") {
		t.Fatalf("unexpected document start: %q", doc)
	}

	parsed, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	m := findByID(parsed, "m")
	if m == nil || m.Data != "main" {
		t.Fatalf("main not found")
	}

	var tags []string
	for c := m.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			tags = append(tags, c.Data)
		}
	}
	if strings.Join(tags, ",") != "form,ul" {
		t.Errorf("main children = %v, want [form ul]", tags)
	}

	input := findByID(parsed, "q")
	if input == nil || input.FirstChild != nil {
		t.Error("input should parse as a childless void element")
	}
}
