package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mintfolio/settleapi/base/ctx"
)

func TestRunWithTransactionExpiredContext(t *testing.T) {
	req := require.New(t)
	im := New(nil).(*impl)

	c, cancel := ctx.WithCancel(ctx.Background())
	cancel()

	ran := false
	err := im.RunWithTransaction(c, func(ctx.Ctx) error {
		ran = true
		return nil
	})
	req.ErrorIs(err, context.Canceled)
	req.False(ran)
	// no slot may leak when the caller gave up before acquiring one
	req.Len(im.tokens, maxConcurrentTxns)
}
