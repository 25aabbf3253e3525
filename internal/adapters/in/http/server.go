// Package http exposes the order operations over a JSON API.
// Route handlers stay thin: decode, build a command or query, dispatch,
// translate the outcome into a status code.
package http

import (
	"errors"
	"net/http"
	"time"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOfferHandler       commands.AcceptOfferCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deactivateOrderHandler   commands.DeactivateOrderCommandHandler

	// Query handlers
	getOrdersHandler                queries.GetOrdersQueryHandler
	getOrderByIDHandler             queries.GetOrderByIDQueryHandler
	getResponsePendingOrdersHandler queries.GetResponsePendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deactivateOrderHandler commands.DeactivateOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getResponsePendingOrdersHandler queries.GetResponsePendingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		acceptOfferHandler:              acceptOfferHandler,
		updateOrderStatusHandler:        updateOrderStatusHandler,
		deactivateOrderHandler:          deactivateOrderHandler,
		getOrdersHandler:                getOrdersHandler,
		getOrderByIDHandler:             getOrderByIDHandler,
		getResponsePendingOrdersHandler: getResponsePendingOrdersHandler,
	}
}

// RegisterRoutes binds the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/response-pending", s.GetResponsePendingOrders)
	api.GET("/orders/:orderId", s.GetOrderByID)
	api.DELETE("/orders/:orderId", s.DeactivateOrder)

	api.POST("/order-details/:orderDetailId/translator-offer", s.acceptOffer(order.RoleTranslator))
	api.POST("/order-details/:orderDetailId/editor-offer", s.acceptOffer(order.RoleEditor))
	api.POST("/order-details/:orderDetailId/proofreader-offer", s.acceptOffer(order.RoleProofReader))

	api.PUT("/translation-operations/:operationId/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders - places a new translation order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := parseUUID(req.ID)
	if err != nil {
		// The order id may be client-generated for idempotent retries;
		// when absent one is assigned here.
		if req.ID != "" {
			return badRequest(ctx, "Invalid order id")
		}
		orderID = kernel.NewUUID()
	}

	sourceLanguageID, err := parseUUID(req.SourceLanguageID)
	if err != nil {
		return badRequest(ctx, "Invalid source language id")
	}

	targetLanguageIDs := make([]kernel.UUID, 0, len(req.TargetLanguageIDs))
	for _, raw := range req.TargetLanguageIDs {
		targetID, parseErr := parseUUID(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid target language id")
		}
		targetLanguageIDs = append(targetLanguageIDs, targetID)
	}

	terminologyID, err := parseUUID(req.TerminologyID)
	if err != nil {
		return badRequest(ctx, "Invalid terminology id")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	translationQualityID, err := parseUUID(req.TranslationQualityID)
	if err != nil {
		return badRequest(ctx, "Invalid translation quality id")
	}

	companyID, err := parseOptionalUUID(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company id")
	}

	companyTerminologyID, err := parseOptionalUUID(req.CompanyTerminologyID)
	if err != nil {
		return badRequest(ctx, "Invalid company terminology id")
	}

	companyDocumentTemplateID, err := parseOptionalUUID(req.CompanyDocumentTemplateID)
	if err != nil {
		return badRequest(ctx, "Invalid company document template id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		sourceLanguageID,
		targetLanguageIDs,
		terminologyID,
		customerID,
		translationQualityID,
		companyID,
		companyTerminologyID,
		companyDocumentTemplateID,
		req.CharCount,
		req.CharCountWithSpaces,
		req.PageCount,
		req.DocumentPath,
		req.CampaignCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:                    created.ID().String(),
		Status:                created.Status().String(),
		CalculatedPrice:       created.CalculatedPrice(),
		VatPrice:              created.VatPrice(),
		PotentialDeliveryDate: created.DeliveryEstimate(),
	})
}

// acceptOffer builds the handler for one of the three offer acceptance routes.
// All three share the claim path; only the role differs.
func (s *Server) acceptOffer(role order.Role) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderDetailID, err := parseUUID(ctx.Param("orderDetailId"))
		if err != nil {
			return badRequest(ctx, "Invalid order detail id")
		}

		var req AcceptOfferRequest
		if err = ctx.Bind(&req); err != nil {
			return badRequest(ctx, "Invalid request body")
		}

		userID, err := parseUUID(req.UserID)
		if err != nil {
			return badRequest(ctx, "Invalid user id")
		}

		cmd, err := commands.NewAcceptOfferCommand(orderDetailID, userID, role, req.Price)
		if err != nil {
			return badRequest(ctx, "Invalid offer data: "+err.Error())
		}

		if handleErr := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return writeError(ctx, handleErr)
		}

		return ctx.NoContent(http.StatusOK)
	}
}

// UpdateOrderStatus handles PUT /api/v1/translation-operations/:operationId/status.
// The order is addressed through one of its translation operations because
// that is the identifier downstream collaborators hold.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	operationID, err := parseUUID(ctx.Param("operationId"))
	if err != nil {
		return badRequest(ctx, "Invalid translation operation id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, ok := statusFromString(req.Status)
	if !ok {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(operationID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeactivateOrder handles DELETE /api/v1/orders/:orderId - soft-deletes an order.
func (s *Server) DeactivateOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeactivateOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.deactivateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderByID handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderView(resp))
}

// GetOrders handles GET /api/v1/orders - lists all orders as summary rows.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryView, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryView{
			ID:                    o.ID.String(),
			CustomerID:            o.CustomerID.String(),
			Status:                o.Status,
			CalculatedPrice:       o.CalculatedPrice,
			VatPrice:              o.VatPrice,
			PotentialDeliveryDate: o.PotentialDeliveryDate,
			Active:                o.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetResponsePendingOrders handles GET /api/v1/orders/response-pending -
// lists active orders with operations still open for translator offers.
func (s *Server) GetResponsePendingOrders(ctx echo.Context) error {
	query := queries.NewGetResponsePendingOrdersQuery()

	pending, err := s.getResponsePendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ResponsePendingOrderView, len(pending))
	for i, p := range pending {
		response[i] = ResponsePendingOrderView{
			ID:                    p.ID.String(),
			TranslationQualityID:  p.TranslationQualityID.String(),
			CalculatedPrice:       p.CalculatedPrice,
			PotentialDeliveryDate: p.PotentialDeliveryDate,
			OpenOperationCount:    p.OpenOperationCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderView is the JSON projection of a single order.
type OrderView struct {
	ID                    string            `json:"id"`
	Status                string            `json:"status"`
	CalculatedPrice       decimal.Decimal   `json:"calculatedPrice"`
	VatPrice              decimal.Decimal   `json:"vatPrice"`
	PotentialDeliveryDate time.Time         `json:"potentialDeliveryDate"`
	Active                bool              `json:"active"`
	Details               []OrderDetailView `json:"details"`
}

// OrderDetailView is the JSON projection of one order detail.
type OrderDetailView struct {
	ID                      string          `json:"id"`
	TranslationOperationID  string          `json:"translationOperationId"`
	ProgressStatus          string          `json:"progressStatus"`
	TranslatorOfferedPrice  decimal.Decimal `json:"translatorOfferedPrice"`
	TranslatorAcceptedPrice decimal.Decimal `json:"translatorAcceptedPrice"`
}

// OrderSummaryView is the JSON projection of one order listing row.
type OrderSummaryView struct {
	ID                    string          `json:"id"`
	CustomerID            string          `json:"customerId"`
	Status                string          `json:"status"`
	CalculatedPrice       decimal.Decimal `json:"calculatedPrice"`
	VatPrice              decimal.Decimal `json:"vatPrice"`
	PotentialDeliveryDate time.Time       `json:"potentialDeliveryDate"`
	Active                bool            `json:"active"`
}

// ResponsePendingOrderView is the JSON projection of one pending order.
type ResponsePendingOrderView struct {
	ID                    string          `json:"id"`
	TranslationQualityID  string          `json:"translationQualityId"`
	CalculatedPrice       decimal.Decimal `json:"calculatedPrice"`
	PotentialDeliveryDate time.Time       `json:"potentialDeliveryDate"`
	OpenOperationCount    int             `json:"openOperationCount"`
}

func orderView(resp queries.GetOrderByIDQueryResponse) OrderView {
	details := make([]OrderDetailView, len(resp.Details))
	for i, d := range resp.Details {
		details[i] = OrderDetailView{
			ID:                      d.ID.String(),
			TranslationOperationID:  d.TranslationOperationID.String(),
			ProgressStatus:          d.ProgressStatus,
			TranslatorOfferedPrice:  d.TranslatorOfferedPrice,
			TranslatorAcceptedPrice: d.TranslatorAcceptedPrice,
		}
	}

	return OrderView{
		ID:                    resp.ID.String(),
		Status:                resp.Status,
		CalculatedPrice:       resp.CalculatedPrice,
		VatPrice:              resp.VatPrice,
		PotentialDeliveryDate: resp.PotentialDeliveryDate,
		Active:                resp.Active,
		Details:               details,
	}
}

// statusFromString maps the request's status name onto the domain value.
func statusFromString(s string) (order.Status, bool) {
	switch s {
	case "Created":
		return order.Created, true
	case "InProcess":
		return order.InProcess, true
	default:
		return order.Unknown, false
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, commands.ErrDocumentRegistrationFailed),
		errors.Is(err, commands.ErrPartCountEstimationFailed):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
