package scraper

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var courseAtStartRe = regexp.MustCompile(`^[A-Z]{2,4}\s+\d{3}`)

// freeTextTags are the leaf-ish elements worth scanning when every structured
// strategy has come up empty.
var freeTextTags = map[string]bool{
	"div": true, "span": true, "p": true, "td": true, "th": true,
}

// parseFreeText is the last-resort tier: walk the whole document tree and
// test each candidate node's text for a course code at the start, then reuse
// the block extraction on the node text.
func parseFreeText(page *Page, now time.Time) []CourseMeeting {
	var meetings []CourseMeeting
	for _, root := range page.doc.Nodes {
		walkFreeText(root, func(nodeText string) {
			if m, ok := parseBlockText(nodeText, now); ok {
				meetings = append(meetings, m)
			}
		})
	}
	return meetings
}

func walkFreeText(n *html.Node, visit func(string)) {
	if n.Type == html.ElementNode && freeTextTags[n.Data] {
		if t := strings.TrimSpace(nodeText(n)); courseAtStartRe.MatchString(t) {
			visit(t)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkFreeText(c, visit)
	}
}

// nodeText concatenates all text beneath a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
