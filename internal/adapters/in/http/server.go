// Package http exposes the delivery backend over a JSON API. The transport
// verifies the request identity, builds commands and queries, and maps the
// core's error taxonomy onto HTTP status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"zapship/internal/core/application/usecases/commands"
	"zapship/internal/core/application/usecases/queries"
	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. The gateway has
// already verified the token; this layer only reads the resolved claims.
const (
	headerUserEmail = "X-User-Email"
	headerUserRole  = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createParcelHandler         commands.CreateParcelCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	markParcelPaidHandler       commands.MarkParcelPaidCommandHandler
	cashOutParcelHandler        commands.CashOutParcelCommandHandler
	submitApplicationHandler    commands.SubmitRiderApplicationCommandHandler
	approveApplicationHandler   commands.ApproveRiderApplicationCommandHandler
	registerUserHandler         commands.RegisterUserCommandHandler

	riderEarningsHandler        queries.GetRiderEarningsQueryHandler
	trackParcelHandler          queries.TrackParcelQueryHandler
	parcelsByCreatorHandler     queries.GetParcelsByCreatorQueryHandler
	assignableParcelsHandler    queries.GetAssignableParcelsQueryHandler
	availableRidersHandler      queries.GetAvailableRidersQueryHandler
	pendingApplicationsHandler  queries.GetPendingApplicationsQueryHandler
	paymentHistoryHandler       queries.GetPaymentHistoryQueryHandler
	pendingCashoutTotalsHandler queries.GetPendingCashoutTotalsQueryHandler
}

// NewServer creates an HTTP server over the full set of use case handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	markParcelPaidHandler commands.MarkParcelPaidCommandHandler,
	cashOutParcelHandler commands.CashOutParcelCommandHandler,
	submitApplicationHandler commands.SubmitRiderApplicationCommandHandler,
	approveApplicationHandler commands.ApproveRiderApplicationCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	riderEarningsHandler queries.GetRiderEarningsQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	parcelsByCreatorHandler queries.GetParcelsByCreatorQueryHandler,
	assignableParcelsHandler queries.GetAssignableParcelsQueryHandler,
	availableRidersHandler queries.GetAvailableRidersQueryHandler,
	pendingApplicationsHandler queries.GetPendingApplicationsQueryHandler,
	paymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	pendingCashoutTotalsHandler queries.GetPendingCashoutTotalsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		assignRiderHandler:          assignRiderHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		markParcelPaidHandler:       markParcelPaidHandler,
		cashOutParcelHandler:        cashOutParcelHandler,
		submitApplicationHandler:    submitApplicationHandler,
		approveApplicationHandler:   approveApplicationHandler,
		registerUserHandler:         registerUserHandler,
		riderEarningsHandler:        riderEarningsHandler,
		trackParcelHandler:          trackParcelHandler,
		parcelsByCreatorHandler:     parcelsByCreatorHandler,
		assignableParcelsHandler:    assignableParcelsHandler,
		availableRidersHandler:      availableRidersHandler,
		pendingApplicationsHandler:  pendingApplicationsHandler,
		paymentHistoryHandler:       paymentHistoryHandler,
		pendingCashoutTotalsHandler: pendingCashoutTotalsHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.GetMyParcels)
	api.GET("/parcels/assignable", s.GetAssignableParcels)
	api.GET("/parcels/track/:trackingId", s.TrackParcel)
	api.POST("/parcels/:id/rider", s.AssignRider)
	api.PATCH("/parcels/:id/status", s.UpdateDeliveryStatus)
	api.POST("/parcels/:id/cashout", s.CashOutParcel)

	api.POST("/payments", s.RecordPayment)
	api.GET("/payments", s.GetPaymentHistory)

	api.POST("/riders", s.SubmitRiderApplication)
	api.GET("/riders/available", s.GetAvailableRiders)
	api.GET("/riders/pending", s.GetPendingApplications)
	api.PATCH("/riders/:id", s.ReviewRiderApplication)
	api.GET("/riders/earnings", s.GetRiderEarnings)
	api.GET("/riders/pending-cashouts", s.GetPendingCashoutTotals)

	api.POST("/users/login", s.RegisterUser)
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req CreateParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	senderRegion, err := kernel.NewRegion(req.SenderRegion)
	if err != nil {
		return s.writeError(ctx, err)
	}
	receiverRegion, err := kernel.NewRegion(req.ReceiverRegion)
	if err != nil {
		return s.writeError(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		req.TrackingID,
		req.Title,
		caller.Email(),
		senderRegion,
		receiverRegion,
		req.SenderCenter,
		req.DeliveryCost,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ID:         parcelID.String(),
		TrackingID: req.TrackingID,
	})
}

// GetMyParcels handles GET /api/v1/parcels - the caller's own parcels.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetParcelsByCreatorQuery(caller.Email())
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.parcelsByCreatorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(rows))
}

// GetAssignableParcels handles GET /api/v1/parcels/assignable - paid parcels
// awaiting a rider.
func (s *Server) GetAssignableParcels(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = caller.RequireAdmin("list assignable parcels"); err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.assignableParcelsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAssignableParcelsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(rows))
}

// TrackParcel handles GET /api/v1/parcels/track/:trackingId. Tracking codes
// are shared with receivers who have no account, so the lookup takes no
// identity headers.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("trackingId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	row, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcel(row))
}

// AssignRider handles POST /api/v1/parcels/:id/rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AssignRiderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(caller, parcelID, riderID, req.RiderName, req.RiderEmail)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/parcels/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	status, err := parcel.ParseDeliveryStatus(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(caller, parcelID, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CashOutParcel handles POST /api/v1/parcels/:id/cashout.
func (s *Server) CashOutParcel(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCashOutParcelCommand(caller, parcelID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cashOutParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewMarkParcelPaidCommand(
		parcelID, req.Amount, req.TransactionID, req.PaymentMethod, caller.Email())
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.markParcelPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPaymentHistory handles GET /api/v1/payments - the caller's payments.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentHistoryQuery(caller.Email())
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.paymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPayments(rows))
}

// SubmitRiderApplication handles POST /api/v1/riders.
func (s *Server) SubmitRiderApplication(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req SubmitRiderApplicationRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	// Applications are filed for the authenticated identity.
	email := req.Email
	if email == "" {
		email = caller.Email()
	}

	region, err := kernel.NewRegion(req.Region)
	if err != nil {
		return s.writeError(ctx, err)
	}

	applicationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRiderApplicationCommand(
		applicationID, req.Name, email, req.Phone, req.District, region)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.submitApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitRiderApplicationResponse{ID: applicationID.String()})
}

// GetAvailableRiders handles GET /api/v1/riders/available?district=...
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = caller.RequireAdmin("list available riders"); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetAvailableRidersQuery(ctx.QueryParam("district"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.availableRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiders(rows))
}

// GetPendingApplications handles GET /api/v1/riders/pending.
func (s *Server) GetPendingApplications(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = caller.RequireAdmin("list pending applications"); err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.pendingApplicationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingApplicationsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiders(rows))
}

// ReviewRiderApplication handles PATCH /api/v1/riders/:id.
func (s *Server) ReviewRiderApplication(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req ReviewRiderApplicationRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	var applicationStatus *rider.ApplicationStatus
	if req.ApplicationStatus != nil {
		parsed, parseErr := rider.ParseApplicationStatus(*req.ApplicationStatus)
		if parseErr != nil {
			return s.writeError(ctx, parseErr)
		}
		applicationStatus = &parsed
	}

	var workStatus *rider.WorkStatus
	if req.WorkStatus != nil {
		parsed, parseErr := rider.ParseWorkStatus(*req.WorkStatus)
		if parseErr != nil {
			return s.writeError(ctx, parseErr)
		}
		workStatus = &parsed
	}

	cmd, err := commands.NewApproveRiderApplicationCommand(caller, applicationID, applicationStatus, workStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.approveApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderEarnings handles GET /api/v1/riders/earnings. An optional as_of
// query parameter (RFC 3339) pins the report to an instant; pinned reports
// bypass the cache.
func (s *Server) GetRiderEarnings(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = caller.RequireRider("view rider earnings"); err != nil {
		return s.writeError(ctx, err)
	}

	var query queries.GetRiderEarningsQuery
	if asOfParam := ctx.QueryParam("as_of"); asOfParam != "" {
		asOf, parseErr := time.Parse(time.RFC3339, asOfParam)
		if parseErr != nil {
			return s.writeBadRequest(ctx, "as_of must be an RFC 3339 timestamp")
		}
		query, err = queries.NewGetRiderEarningsQueryAsOf(caller.Email(), asOf)
	} else {
		query, err = queries.NewGetRiderEarningsQuery(caller.Email())
	}
	if err != nil {
		return s.writeError(ctx, err)
	}

	report, err := s.riderEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetPendingCashoutTotals handles GET /api/v1/riders/pending-cashouts.
func (s *Server) GetPendingCashoutTotals(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = caller.RequireAdmin("list pending cashout totals"); err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.pendingCashoutTotalsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingCashoutTotalsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPendingCashouts(rows))
}

// RegisterUser handles POST /api/v1/users/login - records the caller in the
// user registry, creating the account on first login.
func (s *Server) RegisterUser(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(caller.Email())
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// caller builds the typed capability from the verified identity headers.
func (s *Server) caller(ctx echo.Context) (account.Caller, error) {
	email := ctx.Request().Header.Get(headerUserEmail)
	roleValue := ctx.Request().Header.Get(headerUserRole)
	if roleValue == "" {
		roleValue = account.RoleUser.String()
	}

	role, err := account.ParseRole(roleValue)
	if err != nil {
		return account.Caller{}, err
	}

	return account.NewCaller(email, role)
}

func (s *Server) writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the core's error taxonomy onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPartialWrite):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
