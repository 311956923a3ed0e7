package alignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniela/contamination-checker/internal/types"
)

func TestNoop(t *testing.T) {
	var p Pipeline = Noop{}

	err := p.Investigate(context.Background(), []types.InputRecord{
		{Index: 0, Label: "Unknown isolate 47"},
	})
	assert.NoError(t, err)
}
