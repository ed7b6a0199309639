// Package http exposes the approval pipeline over a REST API. Every request
// carries the caller's role in the X-Actor-Role header; the server only
// translates wire shapes, all rules live in the application core.
package http

import (
	"net/http"

	"mandi/internal/core/application/usecases/commands"
	"mandi/internal/core/application/usecases/queries"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the caller's role label, resolved by the identity
// layer in front of this service.
const actorHeader = "X-Actor-Role"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createEntryHandler      commands.CreateEntryCommandHandler
	attachGradingHandler    commands.AttachGradingCommandHandler
	updateGradingHandler    commands.UpdateGradingCommandHandler
	decideHandler           commands.DecideCommandHandler
	attachCookingHandler    commands.AttachCookingCommandHandler
	setOfferHandler         commands.SetOfferCommandHandler
	fillMissingHandler      commands.FillMissingCommandHandler
	assignSupervisorHandler commands.AssignSupervisorCommandHandler
	recordTripHandler       commands.RecordTripCommandHandler
	recordWeightHandler     commands.RecordWeightCommandHandler
	closeLotHandler         commands.CloseLotCommandHandler
	settleOwnerHandler      commands.SettleOwnerCommandHandler
	settleManagerHandler    commands.SettleManagerCommandHandler
	approveReviewHandler    commands.ApproveReviewCommandHandler

	// Query handlers
	getEntryProgressHandler    queries.GetEntryProgressQueryHandler
	getIncompleteOffersHandler queries.GetIncompleteOffersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createEntryHandler commands.CreateEntryCommandHandler,
	attachGradingHandler commands.AttachGradingCommandHandler,
	updateGradingHandler commands.UpdateGradingCommandHandler,
	decideHandler commands.DecideCommandHandler,
	attachCookingHandler commands.AttachCookingCommandHandler,
	setOfferHandler commands.SetOfferCommandHandler,
	fillMissingHandler commands.FillMissingCommandHandler,
	assignSupervisorHandler commands.AssignSupervisorCommandHandler,
	recordTripHandler commands.RecordTripCommandHandler,
	recordWeightHandler commands.RecordWeightCommandHandler,
	closeLotHandler commands.CloseLotCommandHandler,
	settleOwnerHandler commands.SettleOwnerCommandHandler,
	settleManagerHandler commands.SettleManagerCommandHandler,
	approveReviewHandler commands.ApproveReviewCommandHandler,
	getEntryProgressHandler queries.GetEntryProgressQueryHandler,
	getIncompleteOffersHandler queries.GetIncompleteOffersQueryHandler,
) *Server {
	return &Server{
		createEntryHandler:         createEntryHandler,
		attachGradingHandler:       attachGradingHandler,
		updateGradingHandler:       updateGradingHandler,
		decideHandler:              decideHandler,
		attachCookingHandler:       attachCookingHandler,
		setOfferHandler:            setOfferHandler,
		fillMissingHandler:         fillMissingHandler,
		assignSupervisorHandler:    assignSupervisorHandler,
		recordTripHandler:          recordTripHandler,
		recordWeightHandler:        recordWeightHandler,
		closeLotHandler:            closeLotHandler,
		settleOwnerHandler:         settleOwnerHandler,
		settleManagerHandler:       settleManagerHandler,
		approveReviewHandler:       approveReviewHandler,
		getEntryProgressHandler:    getEntryProgressHandler,
		getIncompleteOffersHandler: getIncompleteOffersHandler,
	}
}

// RegisterRoutes wires the API onto the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()

	api := e.Group("/api/v1")
	api.POST("/entries", s.CreateEntry)
	api.POST("/entries/:entryID/grading", s.AttachGrading)
	api.PUT("/entries/:entryID/grading", s.UpdateGrading)
	api.POST("/entries/:entryID/decision", s.Decide)
	api.POST("/entries/:entryID/cooking", s.AttachCooking)
	api.POST("/entries/:entryID/offer", s.SetOffer)
	api.POST("/entries/:entryID/offer/fields", s.FillMissing)
	api.POST("/entries/:entryID/allotment", s.AssignSupervisor)
	api.POST("/entries/:entryID/allotment/close", s.CloseLot)
	api.POST("/entries/:entryID/trips", s.RecordTrip)
	api.POST("/entries/:entryID/trips/:tripID/weight", s.RecordWeight)
	api.POST("/entries/:entryID/trips/:tripID/settlement/owner", s.SettleOwner)
	api.POST("/entries/:entryID/trips/:tripID/settlement/manager", s.SettleManager)
	api.POST("/entries/:entryID/approval", s.ApproveReview)
	api.GET("/entries/:entryID/progress", s.GetEntryProgress)
	api.GET("/offers/incomplete", s.GetIncompleteOffers)
}

// actor resolves the caller's role from the request header.
func actor(ctx echo.Context) (role.Role, error) {
	return role.Parse(ctx.Request().Header.Get(actorHeader))
}

// bind decodes and validates the request body.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requestBody", err)
	}
	return ctx.Validate(req)
}

// pathUUID parses one UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateEntry handles POST /api/v1/entries.
func (s *Server) CreateEntry(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateEntryRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	entryID, err := kernel.UUIDFromString(req.EntryID)
	if err != nil {
		return respondError(ctx, err)
	}
	entryType, err := parseEntryType(req.EntryType)
	if err != nil {
		return respondError(ctx, err)
	}
	packaging, err := parsePackaging(req.Packaging)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateEntryCommand(
		caller, entryID, req.EntryDate, entryType, req.Bags, packaging, req.Variety)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createEntryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// AttachGrading handles POST /api/v1/entries/:entryID/grading.
func (s *Server) AttachGrading(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req GradingRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	gradingID, err := kernel.UUIDFromString(req.GradingID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachGradingCommand(
		caller, entryID, gradingID,
		req.Moisture,
		req.CutOne, req.BendOne, req.CutTwo, req.BendTwo,
		req.MixPercent, req.DefectPercent,
		req.GradedBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.attachGradingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// UpdateGrading handles PUT /api/v1/entries/:entryID/grading.
func (s *Server) UpdateGrading(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req GradingRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateGradingCommand(
		caller, entryID,
		req.Moisture,
		req.CutOne, req.BendOne, req.CutTwo, req.BendTwo,
		req.MixPercent, req.DefectPercent,
		req.GradedBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateGradingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// Decide handles POST /api/v1/entries/:entryID/decision.
func (s *Server) Decide(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req DecideRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	decision, err := parseLotDecision(req.Decision)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDecideCommand(caller, entryID, decision)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.decideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// AttachCooking handles POST /api/v1/entries/:entryID/cooking.
func (s *Server) AttachCooking(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AttachCookingRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	cookingID, err := kernel.UUIDFromString(req.CookingID)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := parseCookingStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachCookingCommand(caller, entryID, cookingID, status, req.Remarks)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.attachCookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// SetOffer handles POST /api/v1/entries/:entryID/offer.
func (s *Server) SetOffer(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetOfferRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	offerID, err := kernel.UUIDFromString(req.OfferID)
	if err != nil {
		return respondError(ctx, err)
	}
	baseRateType, err := parseBaseRateType(req.BaseRateType)
	if err != nil {
		return respondError(ctx, err)
	}
	baseRateUnit, err := parseRateUnit("baseRateUnit", req.BaseRateUnit)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetOfferCommand(
		caller, entryID, offerID,
		req.OfferRate,
		baseRateType, baseRateUnit, req.BaseRateValue,
		req.CustomDivisor, req.EgbValue,
		req.delegation(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// FillMissing handles POST /api/v1/entries/:entryID/offer/fields.
func (s *Server) FillMissing(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req FillMissingRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFillMissingCommand(caller, entryID, req.values())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.fillMissingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// AssignSupervisor handles POST /api/v1/entries/:entryID/allotment.
func (s *Server) AssignSupervisor(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignSupervisorRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	allotmentID, err := kernel.UUIDFromString(req.AllotmentID)
	if err != nil {
		return respondError(ctx, err)
	}
	supervisorID, err := kernel.UUIDFromString(req.SupervisorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignSupervisorCommand(caller, entryID, allotmentID, supervisorID, req.AllottedBags)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignSupervisorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// RecordTrip handles POST /api/v1/entries/:entryID/trips.
func (s *Server) RecordTrip(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordTripRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	tripID, err := kernel.UUIDFromString(req.TripID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordTripCommand(
		caller, entryID, tripID, req.LorryNumber, req.Bags, req.Cut, req.Bend, req.Remarks)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// RecordWeight handles POST /api/v1/entries/:entryID/trips/:tripID/weight.
func (s *Server) RecordWeight(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}
	tripID, err := pathUUID(ctx, "tripID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordWeightRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	weightID, err := kernel.UUIDFromString(req.WeightID)
	if err != nil {
		return respondError(ctx, err)
	}
	target, err := storageTarget(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordWeightCommand(
		caller, entryID, tripID, weightID, req.GrossWeight, req.TareWeight, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// storageTarget builds the destination of a weight record from the request.
func storageTarget(req RecordWeightRequest) (lot.StorageTarget, error) {
	kind, err := parseStorageKind(req.StorageKind)
	if err != nil {
		return lot.StorageTarget{}, err
	}
	if kind == lot.StorageWarehouse {
		return lot.WarehouseTarget(), nil
	}

	targetID, err := kernel.UUIDFromString(req.TargetID)
	if err != nil {
		return lot.StorageTarget{}, err
	}
	return lot.DirectTarget(kind, targetID, req.TargetVariety)
}

// CloseLot handles POST /api/v1/entries/:entryID/allotment/close.
func (s *Server) CloseLot(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req CloseLotRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCloseLotCommand(caller, entryID, req.ClosedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.closeLotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// SettleOwner handles POST /api/v1/entries/:entryID/trips/:tripID/settlement/owner.
func (s *Server) SettleOwner(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}
	tripID, err := pathUUID(ctx, "tripID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SettleOwnerRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	settlementID, err := kernel.UUIDFromString(req.SettlementID)
	if err != nil {
		return respondError(ctx, err)
	}
	input, err := req.ownerInput()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleOwnerCommand(caller, entryID, tripID, settlementID, input)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.settleOwnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// SettleManager handles POST /api/v1/entries/:entryID/trips/:tripID/settlement/manager.
func (s *Server) SettleManager(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}
	tripID, err := pathUUID(ctx, "tripID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SettleManagerRequest
	if err = bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}
	input, err := req.managerInput()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleManagerCommand(caller, entryID, tripID, input)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.settleManagerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// ApproveReview handles POST /api/v1/entries/:entryID/approval.
func (s *Server) ApproveReview(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveReviewCommand(caller, entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// TripProgress is the derived stage of one trip.
type TripProgress struct {
	TripID string `json:"tripId"`
	Stage  string `json:"stage"`
}

// EntryProgress is the progress report of one entry.
type EntryProgress struct {
	EntryID  string         `json:"entryId"`
	Status   string         `json:"status"`
	Progress string         `json:"progress"`
	Trips    []TripProgress `json:"trips"`
}

// GetEntryProgress handles GET /api/v1/entries/:entryID/progress.
func (s *Server) GetEntryProgress(ctx echo.Context) error {
	entryID, err := pathUUID(ctx, "entryID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetEntryProgressQuery(entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.getEntryProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	trips := make([]TripProgress, len(progress.Trips))
	for i, trip := range progress.Trips {
		trips[i] = TripProgress{
			TripID: trip.TripID.String(),
			Stage:  trip.Stage,
		}
	}

	return ctx.JSON(http.StatusOK, EntryProgress{
		EntryID:  progress.EntryID.String(),
		Status:   progress.Status,
		Progress: progress.Progress,
		Trips:    trips,
	})
}

// IncompleteOffer lists the unfilled delegated fields of one offer.
type IncompleteOffer struct {
	EntryID       string   `json:"entryId"`
	OfferID       string   `json:"offerId"`
	MissingFields []string `json:"missingFields"`
}

// GetIncompleteOffers handles GET /api/v1/offers/incomplete.
func (s *Server) GetIncompleteOffers(ctx echo.Context) error {
	query := queries.NewGetIncompleteOffersQuery()

	offers, err := s.getIncompleteOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]IncompleteOffer, len(offers))
	for i, offer := range offers {
		response[i] = IncompleteOffer{
			EntryID:       offer.EntryID.String(),
			OfferID:       offer.OfferID.String(),
			MissingFields: offer.MissingFields,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
