// Package http is the inbound HTTP adapter: an echo server translating
// requests into commands and queries, plus the token middleware that turns a
// bearer token into an authenticated actor.
package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	registerUserHandler     commands.RegisterUserCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	editRestaurantHandler   commands.EditRestaurantCommandHandler
	createDishHandler       commands.CreateDishCommandHandler
	editDishHandler         commands.EditDishCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	editOrderHandler        commands.EditOrderCommandHandler
	takeOrderHandler        commands.TakeOrderCommandHandler

	loginHandler         queries.LoginQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	getRestaurantHandler queries.GetRestaurantQueryHandler

	signer TokenSigner
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	editRestaurantHandler commands.EditRestaurantCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	editDishHandler commands.EditDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getRestaurantHandler queries.GetRestaurantQueryHandler,
	signer TokenSigner,
) *Server {
	return &Server{
		registerUserHandler:     registerUserHandler,
		createRestaurantHandler: createRestaurantHandler,
		editRestaurantHandler:   editRestaurantHandler,
		createDishHandler:       createDishHandler,
		editDishHandler:         editDishHandler,
		createOrderHandler:      createOrderHandler,
		editOrderHandler:        editOrderHandler,
		takeOrderHandler:        takeOrderHandler,
		loginHandler:            loginHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersHandler:        getOrdersHandler,
		getRestaurantHandler:    getRestaurantHandler,
		signer:                  signer,
	}
}

// RegisterRoutes mounts the API under /api/v1. Registration, login, and the
// restaurant read are public; everything else requires a valid token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/restaurants/:restaurantID", s.GetRestaurant)

	protected := api.Group("", AuthMiddleware(s.signer))
	protected.POST("/restaurants", s.CreateRestaurant)
	protected.PUT("/restaurants/:restaurantID", s.EditRestaurant)
	protected.POST("/restaurants/:restaurantID/dishes", s.CreateDish)
	protected.PUT("/restaurants/:restaurantID/dishes/:dishID", s.EditDish)
	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders", s.GetOrders)
	protected.GET("/orders/:orderID", s.GetOrder)
	protected.PUT("/orders/:orderID/status", s.EditOrder)
	protected.POST("/orders/:orderID/take", s.TakeOrder)
}

// Register handles POST /api/v1/auth/register - creates a new account.
func (s *Server) Register(c echo.Context) error {
	var body registerRequest
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	role, err := user.RoleFromString(body.Role)
	if err != nil {
		return respondBadRequest(c, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, body.Email, body.Password, role)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"userId": userID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a token.
func (s *Server) Login(c echo.Context) error {
	var body loginRequest
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewLoginQuery(body.Email, body.Password)
	if err != nil {
		return respondBadRequest(c, err)
	}

	verified, err := s.loginHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.signer.Sign(verified.UserID, verified.Role)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, loginResponse{
		Token:  token,
		UserID: verified.UserID.String(),
		Role:   verified.Role.String(),
	})
}

// GetRestaurant handles GET /api/v1/restaurants/:restaurantID - public menu read.
func (s *Server) GetRestaurant(c echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(c.Param("restaurantID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	response, err := s.getRestaurantHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, toRestaurantResponse(response))
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	var body restaurantRequest
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(actor, restaurantID, body.Name, body.Address)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.createRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"restaurantId": restaurantID.String()})
}

// EditRestaurant handles PUT /api/v1/restaurants/:restaurantID.
func (s *Server) EditRestaurant(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	restaurantID, err := kernel.UUIDFromString(c.Param("restaurantID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var body restaurantRequest
	if err = c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewEditRestaurantCommand(actor, restaurantID, body.Name, body.Address)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.editRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// CreateDish handles POST /api/v1/restaurants/:restaurantID/dishes.
func (s *Server) CreateDish(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	restaurantID, err := kernel.UUIDFromString(c.Param("restaurantID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var body dishRequest
	if err = c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	price, err := kernel.NewPrice(body.Price)
	if err != nil {
		return respondBadRequest(c, err)
	}
	options, err := optionsFromRequest(body.Options)
	if err != nil {
		return respondBadRequest(c, err)
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		actor, restaurantID, dishID, body.Name, body.Description, price, options)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.createDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"dishId": dishID.String()})
}

// EditDish handles PUT /api/v1/restaurants/:restaurantID/dishes/:dishID.
func (s *Server) EditDish(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	restaurantID, err := kernel.UUIDFromString(c.Param("restaurantID"))
	if err != nil {
		return respondBadRequest(c, err)
	}
	dishID, err := kernel.UUIDFromString(c.Param("dishID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var body dishRequest
	if err = c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	price, err := kernel.NewPrice(body.Price)
	if err != nil {
		return respondBadRequest(c, err)
	}
	options, err := optionsFromRequest(body.Options)
	if err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewEditDishCommand(
		actor, restaurantID, dishID, body.Name, body.Description, price, options)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.editDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// CreateOrder handles POST /api/v1/orders - places a priced order.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	var body createOrderRequest
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return respondBadRequest(c, err)
	}
	items, err := itemRequestsFromBody(body.Items)
	if err != nil {
		return respondBadRequest(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, restaurantID, items)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// GetOrders handles GET /api/v1/orders - role-scoped listing with an
// optional ?status= filter.
func (s *Server) GetOrders(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(c, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(actor, status)
	if err != nil {
		return respondBadRequest(c, err)
	}

	responses, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, toOrderResponses(responses))
}

// GetOrder handles GET /api/v1/orders/:orderID - participant-only read.
func (s *Server) GetOrder(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	response, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, toOrderResponse(response))
}

// EditOrder handles PUT /api/v1/orders/:orderID/status - progresses the
// order through its lifecycle.
func (s *Server) EditOrder(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var body editOrderStatusRequest
	if err = c.Bind(&body); err != nil {
		return respondBadRequest(c, err)
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewEditOrderCommand(actor, orderID, status)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.editOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// TakeOrder handles POST /api/v1/orders/:orderID/take - claims a cooked
// order for delivery. Exactly one of any set of concurrent takers wins.
func (s *Server) TakeOrder(c echo.Context) error {
	actor, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("missing token"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewTakeOrderCommand(actor, orderID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err = s.takeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}
