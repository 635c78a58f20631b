package commands

import (
	"context"
	"errors"
	"time"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// ExpireAssignmentsCommandHandler sweeps assignments whose driver never
// answered. Each overdue order goes back to "awaiting assignment" in its own
// transaction, so one failing order does not block the rest of the sweep.
// The handler also retries remote availability flips left pending by earlier
// post-commit failures.
type ExpireAssignmentsCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability DriverAvailabilityService
	publisher    events.Publisher
}

// NewExpireAssignmentsCommandHandler creates a handler for the expiration sweep.
func NewExpireAssignmentsCommandHandler(
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	publisher events.Publisher,
) ExpireAssignmentsCommandHandler {
	return ExpireAssignmentsCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
	}
}

// Handle runs one sweep pass.
// Per-order failures are collected and joined into the returned error; the
// sweep itself always visits every candidate.
func (h *ExpireAssignmentsCommandHandler) Handle(ctx context.Context, cmd ExpireAssignmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.ResponseTimeout())

	overdue, err := h.readOverdue(ctx, cutoff)
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, candidate := range overdue {
		if err = h.expireOne(ctx, candidate.ID()); err != nil {
			sweepErrs = append(sweepErrs, err)
		}
	}

	pending, err := h.readPendingReleases(ctx)
	if err != nil {
		sweepErrs = append(sweepErrs, err)
		return errors.Join(sweepErrs...)
	}

	for _, candidate := range pending {
		if err = h.reconcileOne(ctx, candidate); err != nil {
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *ExpireAssignmentsCommandHandler) readOverdue(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.OrderRepository().GetAllAwaitingDriverResponseBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return overdue, nil
}

func (h *ExpireAssignmentsCommandHandler) readPendingReleases(
	ctx context.Context,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllWithPendingDriverRelease(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pending, nil
}

// expireOne re-reads the order in a fresh transaction so a driver answering
// between the sweep read and the expiration loses nothing: the transition
// check rejects orders that already moved on.
func (h *ExpireAssignmentsCommandHandler) expireOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
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

	if assistanceOrder.Status() != order.AwaitingDriverResponse {
		return nil
	}

	driverID := assistanceOrder.Driver()
	if driverID == nil {
		return ErrOrderHasNoAssignedDriver
	}

	if err = assistanceOrder.TransitionTo(order.AwaitingAssignment); err != nil {
		return err
	}
	assistanceOrder.ReleaseDriver()

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = releaseDriverRemotely(ctx, h.uowFactory, h.availability, orderID, *driverID); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewAssignmentExpiredEvent(assistanceOrder, *driverID))
}

// reconcileOne retries the remote availability flip for a driver whose
// release failed after an earlier local commit. The marker is cleared only
// once the provider accepted the flip; otherwise the next sweep retries.
func (h *ExpireAssignmentsCommandHandler) reconcileOne(ctx context.Context, stale *order.Order) error {
	driverID := stale.PendingReleaseDriver()
	if driverID == nil {
		return nil
	}

	if err := h.availability.Release(ctx, *driverID); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assistanceOrder, err := orderRepo.Get(ctx, stale.ID())
	if err != nil {
		return err
	}

	assistanceOrder.ClearDriverReleasePending()

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
