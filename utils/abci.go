package utils

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/go-errors/errors"
)

// Logger wraps types which expose a Logger method
type Logger interface {
	Logger(ctx sdk.Context) log.Logger
}

// RunCached runs the given function on a cached branch of the context. The branch and its events are only
// written back if the function returns without error. A panic is recovered and returned as an error.
func RunCached[T any](c sdk.Context, l Logger, f func(sdk.Context) (T, error)) (result T, err error) {
	cms := c.MultiStore().CacheMultiStore()
	ctx := c.WithMultiStore(cms).WithEventManager(sdk.NewEventManager())

	defer func() {
		if r := recover(); r != nil {
			l.Logger(ctx).Error(fmt.Sprintf("recovered from panic in cached context: %v", r))
			l.Logger(ctx).Debug(string(errors.Wrap(r, 2).Stack()))

			result, err = *new(T), fmt.Errorf("panic: %v", r)
		}
	}()

	result, err = f(ctx)
	if err != nil {
		l.Logger(ctx).Debug(fmt.Sprintf("recovered from error in cached context: %s", err.Error()))
		return *new(T), err
	}

	cms.Write()
	c.EventManager().EmitEvents(ctx.EventManager().Events())

	return result, nil
}
