// Package http exposes the order lifecycle over a REST API. One route per
// lifecycle command plus the read-side queries; request and response DTOs are
// defined here and mapped by hand.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"assistance/internal/core/application/orchestrators"
	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/application/usecases/queries"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/core/domain/services"
	"assistance/internal/pkg/errs"
)

// Server coordinates between the HTTP routes and the application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	respondHandler         commands.RespondToAssignmentCommandHandler
	confirmArrivalHandler  commands.ConfirmArrivalCommandHandler
	beginWorkHandler       commands.BeginWorkCommandHandler
	completeWorkHandler    commands.CompleteWorkCommandHandler
	confirmPaymentHandler  commands.ConfirmPaymentCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	applyExtraCostsHandler commands.ApplyExtraCostsCommandHandler
	recomputeTotalHandler  commands.RecomputeTotalCommandHandler

	getOrderByIDHandler     queries.GetOrderByIDQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	respondHandler commands.RespondToAssignmentCommandHandler,
	confirmArrivalHandler commands.ConfirmArrivalCommandHandler,
	beginWorkHandler commands.BeginWorkCommandHandler,
	completeWorkHandler commands.CompleteWorkCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	applyExtraCostsHandler commands.ApplyExtraCostsCommandHandler,
	recomputeTotalHandler commands.RecomputeTotalCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		assignDriverHandler:      assignDriverHandler,
		respondHandler:           respondHandler,
		confirmArrivalHandler:    confirmArrivalHandler,
		beginWorkHandler:         beginWorkHandler,
		completeWorkHandler:      completeWorkHandler,
		confirmPaymentHandler:    confirmPaymentHandler,
		cancelOrderHandler:       cancelOrderHandler,
		applyExtraCostsHandler:   applyExtraCostsHandler,
		recomputeTotalHandler:    recomputeTotalHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrderByID)
	api.POST("/orders/:id/driver", s.AssignDriver)
	api.POST("/orders/:id/response", s.RespondToAssignment)
	api.POST("/orders/:id/arrival", s.ConfirmArrival)
	api.POST("/orders/:id/work", s.BeginWork)
	api.POST("/orders/:id/completion", s.CompleteWork)
	api.POST("/orders/:id/payment", s.ConfirmPayment)
	api.POST("/orders/:id/cancellation", s.CancelOrder)
	api.POST("/orders/:id/extra-costs", s.ApplyExtraCosts)
	api.POST("/orders/:id/total", s.RecomputeTotal)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	contractID, err := kernel.UUIDFromString(req.ContractID)
	if err != nil {
		return badRequest(ctx, "invalid contract id")
	}
	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "invalid operator id")
	}
	incidentType, err := order.IncidentTypeFromString(req.IncidentType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		contractID,
		operatorID,
		req.IncidentAddress,
		req.DestinationAddress,
		incidentType,
		req.IncidentDate,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// AssignDriver handles POST /api/v1/orders/:id/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req assignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondToAssignment handles POST /api/v1/orders/:id/response.
func (s *Server) RespondToAssignment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req respondRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewRespondToAssignmentCommand(orderID, driverID, req.Accepted)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.respondHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmArrival handles POST /api/v1/orders/:id/arrival.
func (s *Server) ConfirmArrival(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req flagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.flagSet() {
		return badRequest(ctx, "confirmation flag must be true")
	}

	cmd, err := commands.NewConfirmArrivalCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BeginWork handles POST /api/v1/orders/:id/work.
func (s *Server) BeginWork(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req flagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.flagSet() {
		return badRequest(ctx, "confirmation flag must be true")
	}

	cmd, err := commands.NewBeginWorkCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.beginWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWork handles POST /api/v1/orders/:id/completion.
func (s *Server) CompleteWork(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req flagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.flagSet() {
		return badRequest(ctx, "confirmation flag must be true")
	}

	cmd, err := commands.NewCompleteWorkCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req flagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.flagSet() {
		return badRequest(ctx, "confirmation flag must be true")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyExtraCosts handles POST /api/v1/orders/:id/extra-costs.
func (s *Server) ApplyExtraCosts(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req applyExtraCostsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if !req.OperatorApproved {
		return badRequest(ctx, "extra costs require operator approval")
	}

	items := make([]services.ProposedExtraCost, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := kernel.NewMoneyFromFloat(item.Price)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		items = append(items, services.ProposedExtraCost{Name: item.Name, Price: price})
	}

	cmd, err := commands.NewApplyExtraCostsCommand(orderID, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.applyExtraCostsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecomputeTotal handles POST /api/v1/orders/:id/total.
func (s *Server) RecomputeTotal(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req recomputeTotalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecomputeTotalCommand(orderID, decimal.NewFromFloat(req.KmTraveled))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	total, err := s.recomputeTotalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, totalResponse{TotalCost: total.Float64()})
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	projection, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(projection))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	statusName := ctx.QueryParam("status")
	if statusName == "" {
		return badRequest(ctx, "status query parameter is required")
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummaryResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application failures to HTTP statuses: not-found to
// 404, lifecycle guard and concurrency violations to 409, validation to 400,
// everything else to 500.
func mapError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, orchestrators.ErrDriverNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalStatusTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, orchestrators.ErrDriverNotAvailable),
		errors.Is(err, commands.ErrContractIsNotActive),
		errors.Is(err, commands.ErrRespondingDriverIsNotAssigned),
		errors.Is(err, commands.ErrOrderHasNoAssignedDriver):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	ContractID         string    `json:"contractId"`
	OperatorID         string    `json:"operatorId"`
	IncidentAddress    string    `json:"incidentAddress"`
	DestinationAddress string    `json:"destinationAddress"`
	IncidentType       string    `json:"incidentType"`
	IncidentDate       time.Time `json:"incidentDate"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type respondRequest struct {
	DriverID string `json:"driverId"`
	Accepted bool   `json:"accepted"`
}

// flagRequest carries the single confirmation flag the arrival, work,
// completion and payment routes expect. Exactly one of the fields is set
// depending on the route; any true flag confirms.
type flagRequest struct {
	AtIncident bool `json:"atIncident"`
	InProgress bool `json:"inProgress"`
	Completed  bool `json:"completed"`
	Paid       bool `json:"paid"`
}

func (r flagRequest) flagSet() bool {
	return r.AtIncident || r.InProgress || r.Completed || r.Paid
}

type applyExtraCostsRequest struct {
	OperatorApproved bool                   `json:"operatorApproved"`
	Items            []extraCostItemRequest `json:"items"`
}

type extraCostItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type recomputeTotalRequest struct {
	KmTraveled float64 `json:"kmTraveled"`
}

type totalResponse struct {
	TotalCost float64 `json:"totalCost"`
}

type coordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type extraCostResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type orderResponse struct {
	ID                     string              `json:"id"`
	ContractID             string              `json:"contractId"`
	OperatorID             string              `json:"operatorId"`
	DriverID               *string             `json:"driverId,omitempty"`
	IncidentCoordinates    coordinatesResponse `json:"incidentCoordinates"`
	DestinationCoordinates coordinatesResponse `json:"destinationCoordinates"`
	IncidentType           string              `json:"incidentType"`
	IncidentDate           time.Time           `json:"incidentDate"`
	Status                 string              `json:"status"`
	TotalCost              float64             `json:"totalCost"`
	ExtraCosts             []extraCostResponse `json:"extraCosts"`
}

type orderSummaryResponse struct {
	ID           string    `json:"id"`
	DriverID     *string   `json:"driverId,omitempty"`
	IncidentType string    `json:"incidentType"`
	IncidentDate time.Time `json:"incidentDate"`
	Status       string    `json:"status"`
	TotalCost    float64   `json:"totalCost"`
}

func toOrderResponse(projection queries.GetOrderByIDQueryResponse) orderResponse {
	extraCosts := make([]extraCostResponse, len(projection.ExtraCosts))
	for i, item := range projection.ExtraCosts {
		extraCosts[i] = extraCostResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return orderResponse{
		ID:         projection.ID.String(),
		ContractID: projection.ContractID.String(),
		OperatorID: projection.OperatorID.String(),
		DriverID:   uuidPtrToString(projection.DriverID),
		IncidentCoordinates: coordinatesResponse{
			Latitude:  projection.IncidentCoordinates.Latitude(),
			Longitude: projection.IncidentCoordinates.Longitude(),
		},
		DestinationCoordinates: coordinatesResponse{
			Latitude:  projection.DestinationCoordinates.Latitude(),
			Longitude: projection.DestinationCoordinates.Longitude(),
		},
		IncidentType: projection.IncidentType,
		IncidentDate: projection.IncidentDate,
		Status:       projection.Status,
		TotalCost:    projection.TotalCost,
		ExtraCosts:   extraCosts,
	}
}

func toOrderSummaryResponse(row queries.GetOrdersByStatusQueryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:           row.ID.String(),
		DriverID:     uuidPtrToString(row.DriverID),
		IncidentType: row.IncidentType,
		IncidentDate: row.IncidentDate,
		Status:       row.Status,
		TotalCost:    row.TotalCost,
	}
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
