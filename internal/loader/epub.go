package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EPUBFormat reads EPUB files. Each spine item becomes one page.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

func (f *EPUBFormat) Pages(ctx context.Context, path string, log *slog.Logger) ([]string, error) {
	rc, err := epub.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	items := make([]spineItem, 0, len(book.Spine.Itemrefs))
	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			log.Debug("skipping spine item without manifest entry", "path", path)
			continue
		}
		items = append(items, spineItem{href: ref.Item.HREF, open: ref.Item.Open})
	}

	return spinePages(ctx, items, log)
}

// spineItem is one readable document in an EPUB spine.
type spineItem struct {
	href string
	open func() (io.ReadCloser, error)
}

// spinePages converts spine items to pages in order. Items that cannot be
// opened or read are logged and left out.
func spinePages(ctx context.Context, items []spineItem, log *slog.Logger) ([]string, error) {
	var pages []string
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := item.open()
		if err != nil {
			log.Debug("skipping unreadable spine item", "href", item.href, "error", err)
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			log.Debug("skipping unreadable spine item", "href", item.href, "error", err)
			continue
		}
		pages = append(pages, htmlToLines(string(data)))
	}
	return pages, nil
}

// blockElements end a line of text when they open or close.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Tr: true, atom.Section: true, atom.Article: true, atom.Blockquote: true,
	atom.Pre: true, atom.Dt: true, atom.Dd: true, atom.Hr: true,
}

// htmlToLines flattens XHTML into text, one line per block element, so
// module markers and numbered questions keep their own lines.
func htmlToLines(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return ""
	}

	var (
		lines []string
		cur   []string
	)
	breakLine := func() {
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if words := strings.Fields(n.Data); len(words) > 0 {
				cur = append(cur, strings.Join(words, " "))
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Head, atom.Script, atom.Style:
				return
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.DataAtom]
		if block {
			breakLine()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			breakLine()
		}
	}
	walk(doc)
	breakLine()

	return strings.Join(lines, "\n")
}
