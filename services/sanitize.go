package services

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var cardPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowElements("math", "span")
	p.AllowAttrs("class").OnElements("span") // for MathJax rendering
	return p
}()

// SanitiseCardText strips unsafe markup from card text before it is
// pushed. Anki renders note fields as HTML, so basic formatting, images
// and MathJax spans are let through. Returns an error when nothing
// usable survives the cleanup.
func SanitiseCardText(input string) (string, error) {
	clean := cardPolicy.Sanitize(input)

	if strings.TrimSpace(clean) == "" {
		return "", fmt.Errorf("card text is empty or unsafe")
	}
	return clean, nil
}
