package payloads

import (
	"sync"

	"github.com/reusee/pagehook/registries"
)

// Registry returns the process-wide registry of built payload handlers.
// It is created on first use and never torn down.
var Registry = sync.OnceValue(func() *registries.Registry[Handler] {
	return registries.New[Handler]()
})
