// Package middleware wraps a DocumentCache with extra behavior, such as
// encryption at rest.
package middleware

import "github.com/lime816/whatsappsuitetest-sub002/pkg/ports"

// Middleware allows wrapping a DocumentCache to add behavior.
type Middleware func(ports.DocumentCache) ports.DocumentCache

// Chain applies mws to cache so that the first middleware is the outermost.
func Chain(cache ports.DocumentCache, mws ...Middleware) ports.DocumentCache {
	for i := len(mws) - 1; i >= 0; i-- {
		cache = mws[i](cache)
	}
	return cache
}
