package pipeline

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attachmentScheme prefixes image sources that point at cell attachments.
const attachmentScheme = "attachment:"

// AttachmentLookup returns the base64 PNG payload stored under name.
type AttachmentLookup func(name string) (payload string, ok bool)

// RewriteAttachments replaces img[src] values of the form "attachment:NAME"
// with inline PNG data URIs. References that lookup cannot resolve, and
// every other element or attribute, are left untouched.
func RewriteAttachments(fragment string, lookup AttachmentLookup) (string, error) {
	if lookup == nil || !strings.Contains(fragment, attachmentScheme) {
		return fragment, nil
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteImages(n, lookup)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteImages walks the tree and resolves attachment sources in place.
func rewriteImages(n *html.Node, lookup AttachmentLookup) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !strings.HasPrefix(attr.Val, attachmentScheme) {
				continue
			}
			if uri, ok := resolveAttachment(attr.Val, lookup); ok {
				n.Attr[i].Val = uri
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteImages(c, lookup)
	}
}

// resolveAttachment turns "attachment:NAME" into a data URI.
// Goldmark percent-encodes link destinations, so NAME is unescaped first.
func resolveAttachment(src string, lookup AttachmentLookup) (string, bool) {
	name := strings.TrimPrefix(src, attachmentScheme)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	payload, ok := lookup(name)
	if !ok || payload == "" {
		return "", false
	}
	return "data:image/png;base64," + payload, true
}
