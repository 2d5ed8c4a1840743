package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestL_NeverNil(t *testing.T) {
	assert.NotNil(t, L())
}

func TestSet_ReplacesLogger(t *testing.T) {
	old := L()
	defer Set(old)

	replacement := zap.NewNop()
	Set(replacement)
	assert.Same(t, replacement, L())
}
