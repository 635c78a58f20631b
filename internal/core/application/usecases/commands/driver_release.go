package commands

import (
	"context"
	"errors"

	"assistance/internal/core/domain/model/kernel"
)

// releaseDriverRemotely flips the provider availability flag back to free
// after the local transaction has already committed. The flip is not part of
// the transaction, so a remote failure cannot be rolled back; instead the
// order is re-read in a fresh transaction and marked for reconciliation so
// the expiration sweeper retries the flip later. Both the remote fault and
// any marking fault are surfaced to the caller.
func releaseDriverRemotely(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	orderID kernel.UUID,
	driverID kernel.UUID,
) error {
	remoteErr := availability.Release(ctx, driverID)
	if remoteErr == nil {
		return nil
	}

	return errors.Join(remoteErr, markDriverReleasePending(ctx, uowFactory, orderID, driverID))
}

func markDriverReleasePending(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	driverID kernel.UUID,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assistanceOrder, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = assistanceOrder.MarkDriverReleasePending(driverID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
