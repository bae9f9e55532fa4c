// Package ids issues identifiers for portal records and documents.
package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns a lexicographically sortable identifier suitable for storage keys.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// DocumentNumber returns a running business-document number such as
// PR-01J5... for purchase requests raised through the portal.
// Numbers sort by issue time, which is what the dashboards list by.
func DocumentNumber(prefix string) string {
	return prefix + "-" + New()
}
