package commands

import (
	"context"
	"errors"
	"fmt"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/core/ports"
)

// ErrContractIsNotActive is returned when the referenced insurance contract
// does not exist or is suspended. Orders cannot be opened against it.
var ErrContractIsNotActive = errors.New("contract is not active")

// CreateOrderCommandHandler handles the business logic for opening orders.
// Geocodes both street addresses, verifies the contract is active, and
// persists the order in "awaiting assignment" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, contractID, operatorID,
//	    "Calle Mayor 12, Madrid", "Taller Central, Getafe",
//	    order.IncidentTypeAccident, time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
	publisher  events.Publisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence, a Geocoder for
// address resolution and a Publisher for the OrderCreated event.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	geocoder ports.Geocoder,
	publisher events.Publisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Resolves both addresses to coordinates, rejects inactive contracts, and
// creates the order in "awaiting assignment" status. The OrderCreated event
// is published only after the transaction commits.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	incidentCoordinates, err := h.geocoder.Geocode(ctx, cmd.IncidentAddress())
	if err != nil {
		return fmt.Errorf("geocode incident address: %w", err)
	}

	destinationCoordinates, err := h.geocoder.Geocode(ctx, cmd.DestinationAddress())
	if err != nil {
		return fmt.Errorf("geocode destination address: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.ContractRepository().IsActive(ctx, cmd.ContractID())
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("%w: %s", ErrContractIsNotActive, cmd.ContractID())
	}

	assistanceOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ContractID(),
		cmd.OperatorID(),
		incidentCoordinates,
		destinationCoordinates,
		cmd.IncidentType(),
		cmd.IncidentDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewOrderCreatedEvent(assistanceOrder))
}
