package http

import (
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
)

// Request bodies. Identifiers arrive as canonical UUID strings and are
// parsed into kernel.UUID before any command is built.

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type restaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type choiceRequest struct {
	Name  string `json:"name"`
	Extra int64  `json:"extra"`
}

type optionRequest struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Extra   int64           `json:"extra"`
	Choices []choiceRequest `json:"choices"`
}

type dishRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int64           `json:"price"`
	Options     []optionRequest `json:"options"`
}

type selectionRequest struct {
	Option string `json:"option"`
	Choice string `json:"choice"`
}

type itemRequest struct {
	DishID     string             `json:"dishId"`
	Selections []selectionRequest `json:"selections"`
}

type createOrderRequest struct {
	RestaurantID string        `json:"restaurantId"`
	Items        []itemRequest `json:"items"`
}

type editOrderStatusRequest struct {
	Status string `json:"status"`
}

func optionsFromRequest(requests []optionRequest) ([]restaurant.DishOption, error) {
	options := make([]restaurant.DishOption, 0, len(requests))
	for _, req := range requests {
		option, err := optionFromRequest(req)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

func optionFromRequest(req optionRequest) (restaurant.DishOption, error) {
	if req.Kind == restaurant.ChoiceList.String() {
		choices := make([]restaurant.DishChoice, 0, len(req.Choices))
		for _, c := range req.Choices {
			extra, err := kernel.NewPrice(c.Extra)
			if err != nil {
				return restaurant.DishOption{}, err
			}
			choice, err := restaurant.NewDishChoice(c.Name, extra)
			if err != nil {
				return restaurant.DishOption{}, err
			}
			choices = append(choices, choice)
		}
		return restaurant.NewChoiceOption(req.Name, choices)
	}

	extra, err := kernel.NewPrice(req.Extra)
	if err != nil {
		return restaurant.DishOption{}, err
	}
	return restaurant.NewFlatOption(req.Name, extra)
}

func itemRequestsFromBody(requests []itemRequest) ([]services.ItemRequest, error) {
	items := make([]services.ItemRequest, 0, len(requests))
	for _, req := range requests {
		dishID, err := kernel.UUIDFromString(req.DishID)
		if err != nil {
			return nil, err
		}

		selections := make([]order.Selection, 0, len(req.Selections))
		for _, s := range req.Selections {
			selection, selErr := order.NewSelection(s.Option, s.Choice)
			if selErr != nil {
				return nil, selErr
			}
			selections = append(selections, selection)
		}

		item, err := services.NewItemRequest(dishID, selections)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Response bodies. Query results carry kernel.UUID values; the transport
// serializes them as strings.

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type selectionResponse struct {
	Option string `json:"option"`
	Choice string `json:"choice,omitempty"`
}

type orderItemResponse struct {
	ID         string              `json:"id"`
	DishID     string              `json:"dishId"`
	Price      int64               `json:"price"`
	Selections []selectionResponse `json:"selections,omitempty"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	RestaurantID string              `json:"restaurantId"`
	CustomerID   string              `json:"customerId"`
	DriverID     string              `json:"driverId,omitempty"`
	Status       string              `json:"status"`
	Total        int64               `json:"total"`
	Items        []orderItemResponse `json:"items"`
}

func toOrderResponse(source queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(source.Items))
	for _, item := range source.Items {
		selections := make([]selectionResponse, 0, len(item.Selections))
		for _, s := range item.Selections {
			selections = append(selections, selectionResponse{Option: s.Option, Choice: s.Choice})
		}
		items = append(items, orderItemResponse{
			ID:         item.ID.String(),
			DishID:     item.DishID.String(),
			Price:      item.Price,
			Selections: selections,
		})
	}

	response := orderResponse{
		ID:           source.ID.String(),
		RestaurantID: source.RestaurantID.String(),
		CustomerID:   source.CustomerID.String(),
		Status:       source.Status,
		Total:        source.Total,
		Items:        items,
	}
	if source.DriverID != nil {
		response.DriverID = source.DriverID.String()
	}
	return response
}

func toOrderResponses(sources []queries.OrderResponse) []orderResponse {
	responses := make([]orderResponse, 0, len(sources))
	for _, source := range sources {
		responses = append(responses, toOrderResponse(source))
	}
	return responses
}

type choiceResponse struct {
	Name  string `json:"name"`
	Extra int64  `json:"extra,omitempty"`
}

type optionResponse struct {
	Name    string           `json:"name"`
	Kind    string           `json:"kind"`
	Extra   int64            `json:"extra,omitempty"`
	Choices []choiceResponse `json:"choices,omitempty"`
}

type dishResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       int64            `json:"price"`
	Options     []optionResponse `json:"options,omitempty"`
}

type restaurantResponse struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"ownerId"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Menu    []dishResponse `json:"menu"`
}

func toRestaurantResponse(source queries.GetRestaurantQueryResponse) restaurantResponse {
	menu := make([]dishResponse, 0, len(source.Menu))
	for _, dish := range source.Menu {
		options := make([]optionResponse, 0, len(dish.Options))
		for _, option := range dish.Options {
			choices := make([]choiceResponse, 0, len(option.Choices))
			for _, choice := range option.Choices {
				choices = append(choices, choiceResponse{Name: choice.Name, Extra: choice.Extra})
			}
			options = append(options, optionResponse{
				Name:    option.Name,
				Kind:    option.Kind,
				Extra:   option.Extra,
				Choices: choices,
			})
		}
		menu = append(menu, dishResponse{
			ID:          dish.ID.String(),
			Name:        dish.Name,
			Description: dish.Description,
			Price:       dish.Price,
			Options:     options,
		})
	}

	return restaurantResponse{
		ID:      source.ID.String(),
		OwnerID: source.OwnerID.String(),
		Name:    source.Name,
		Address: source.Address,
		Menu:    menu,
	}
}
