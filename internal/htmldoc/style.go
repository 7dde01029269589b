package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// isHidden reports whether the inline style carries display: none.
func isHidden(n *html.Node) bool {
	v, _ := getAttr(n, "style")
	for _, decl := range strings.Split(v, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "display") &&
			strings.EqualFold(strings.TrimSpace(val), "none") {
			return true
		}
	}
	return false
}

// setHidden rewrites the inline display declaration, leaving every other
// declaration in place.
func setHidden(n *html.Node, hidden bool) {
	v, _ := getAttr(n, "style")
	var kept []string
	for _, decl := range strings.Split(v, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		kept = append(kept, decl)
	}
	if hidden {
		kept = append(kept, "display: none")
	}
	if len(kept) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", strings.Join(kept, "; "))
}
