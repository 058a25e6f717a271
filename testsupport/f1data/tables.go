package f1data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

// CheckTable decodes every code of the 8 bit range. Codes in want must map
// to the given value, all other codes must be rejected.
func CheckTable[K ~int8 | ~uint8, V any](t *testing.T, tbl codes.Table[K, V], want map[K]V) {
	t.Helper()
	assert.Equal(t, len(want), tbl.Len(), "%s: table size", tbl.Field())
	for i := range 256 {
		code := K(i)
		got, err := tbl.Decode(code)
		if exp, ok := want[code]; ok {
			require.NoError(t, err, "%s: code %d", tbl.Field(), i)
			assert.Equal(t, exp, got, "%s: code %d", tbl.Field(), i)
			continue
		}
		var ice *model.InvalidCodeError
		require.ErrorAs(t, err, &ice, "%s: code %d", tbl.Field(), i)
		assert.Equal(t, tbl.Field(), ice.Field)
	}
}

// Seq is the want map of a table with codes 0..len(values)-1
func Seq[K ~int8 | ~uint8, V any](values ...V) map[K]V {
	ret := make(map[K]V, len(values))
	for i, v := range values {
		ret[K(i)] = v
	}
	return ret
}
