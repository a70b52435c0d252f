package cache

import (
	"context"

	"github.com/zmzehd/markdown2html/pkg/mdhtml"
)

// Render returns the HTML for src, consulting the store first when s
// is non-nil. hit reports whether the result came from the cache.
func Render(ctx context.Context, s *Store, src []byte) (html string, hit bool, err error) {
	if s == nil {
		html, err = mdhtml.ConvertString(string(src))
		return html, false, err
	}
	key := Key(src)
	html, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if ok {
		return html, true, nil
	}
	html, err = mdhtml.ConvertString(string(src))
	if err != nil {
		return "", false, err
	}
	if err := s.Put(ctx, key, html); err != nil {
		return "", false, err
	}
	return html, false, nil
}
