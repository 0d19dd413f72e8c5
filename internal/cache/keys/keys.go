// Package keys derives cache keys from normalized request parameters.
package keys

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

// Prefix namespaces every key this service writes, so a sweep over a shared
// backend only ever touches its own entries.
const Prefix = "wfca_fires_"

// Fires returns the key for one normalized query triple. Equal triples map
// to equal keys, so concurrent callers with the same parameters share an
// entry.
func Fires(q domain.FireQuery) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%d_%s_%s", q.Limit, q.State, q.Search))
	return fmt.Sprintf("%s%016x", Prefix, sum)
}
