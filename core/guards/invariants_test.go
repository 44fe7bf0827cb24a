package guards

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariantPanicsWithPrefix(t *testing.T) {
	assert.PanicsWithValue(t, "INVARIANT VIOLATED: level 7 missing from mastery", func() {
		Invariant(false, "level %d missing from %s", 7, "mastery")
	})
	assert.NotPanics(t, func() { Invariant(true, "unused") })
}

func TestNoErrorAndMust(t *testing.T) {
	assert.NotPanics(t, func() { NoError(nil, "build") })
	assert.PanicsWithValue(t, "INVARIANT VIOLATED: build gear table: boom", func() {
		NoError(fmt.Errorf("boom"), "build gear table")
	})

	assert.Equal(t, 3, Must(3, nil))
	assert.Panics(t, func() { Must(0, fmt.Errorf("bad")) })
}
