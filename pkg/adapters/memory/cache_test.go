package memory_test

import (
	"testing"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/memory"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/ports"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunDocumentCacheContract(t, cache)
}
