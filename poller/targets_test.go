package poller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTargets(t *testing.T) {
	input := `
# core OLTs
10.0.0.1
10.0.0.2

10.0.0.1
  10.0.0.3
# trailing comment
`

	targets, err := ReadTargets(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}, targets)
}

func TestReadTargetsEmptyInput(t *testing.T) {
	targets, err := ReadTargets(strings.NewReader("# only comments\n\n"))

	require.NoError(t, err)
	assert.Empty(t, targets)
}
