// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence, including the menu. Dish options are stored as a
// JSON document and validated back into their closed forms on load.
package restaurantrepo

import (
	"encoding/json"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Address string
	Menu    []DishDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents one menu entry. Options are stored as a JSON array of
// {name, kind, extra, choices} objects, the same shape the read side decodes.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        int64
	Options      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

type optionDTO struct {
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Extra   int64       `json:"extra,omitempty"`
	Choices []choiceDTO `json:"choices,omitempty"`
}

type choiceDTO struct {
	Name  string `json:"name"`
	Extra int64  `json:"extra,omitempty"`
}

// fromDomain converts a restaurant domain aggregate to its database
// representation.
func fromDomain(aggregate *restaurant.Restaurant) (RestaurantDTO, error) {
	menu := make([]DishDTO, 0, len(aggregate.Menu()))
	for _, dish := range aggregate.Menu() {
		dto, err := dishFromDomain(aggregate.ID(), dish)
		if err != nil {
			return RestaurantDTO{}, err
		}
		menu = append(menu, dto)
	}

	return RestaurantDTO{
		ID:      aggregate.ID().Bytes(),
		OwnerID: aggregate.OwnerID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Menu:    menu,
	}, nil
}

func dishFromDomain(restaurantID kernel.UUID, dish *restaurant.Dish) (DishDTO, error) {
	options := make([]optionDTO, 0, len(dish.Options()))
	for _, option := range dish.Options() {
		choices := make([]choiceDTO, 0, len(option.Choices()))
		for _, choice := range option.Choices() {
			choices = append(choices, choiceDTO{
				Name:  choice.Name(),
				Extra: choice.Extra().Amount(),
			})
		}
		options = append(options, optionDTO{
			Name:    option.Name(),
			Kind:    option.Kind().String(),
			Extra:   option.Extra().Amount(),
			Choices: choices,
		})
	}

	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return DishDTO{}, err
	}

	return DishDTO{
		ID:           dish.ID().Bytes(),
		RestaurantID: restaurantID.Bytes(),
		Name:         dish.Name(),
		Description:  dish.Description(),
		Price:        dish.Price().Amount(),
		Options:      optionsJSON,
	}, nil
}

// toDomain converts a database DTO to a restaurant domain aggregate using
// RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	menu := make([]*restaurant.Dish, 0, len(dto.Menu))
	for _, dishDTO := range dto.Menu {
		dish, dishErr := dishToDomain(dishDTO)
		if dishErr != nil {
			return nil, dishErr
		}
		menu = append(menu, dish)
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Address, menu)
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	var optionDTOs []optionDTO
	if len(dto.Options) > 0 {
		if err = json.Unmarshal(dto.Options, &optionDTOs); err != nil {
			return nil, err
		}
	}

	options := make([]restaurant.DishOption, 0, len(optionDTOs))
	for _, o := range optionDTOs {
		option, optErr := optionToDomain(o)
		if optErr != nil {
			return nil, optErr
		}
		options = append(options, option)
	}

	return restaurant.RestoreDish(id, dto.Name, dto.Description, price, options)
}

// optionToDomain rebuilds a stored option through the domain constructors so
// a malformed document is rejected at the storage boundary.
func optionToDomain(dto optionDTO) (restaurant.DishOption, error) {
	switch dto.Kind {
	case restaurant.ChoiceList.String():
		choices := make([]restaurant.DishChoice, 0, len(dto.Choices))
		for _, c := range dto.Choices {
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
		return restaurant.NewChoiceOption(dto.Name, choices)
	case restaurant.FlatSurcharge.String():
		extra, err := kernel.NewPrice(dto.Extra)
		if err != nil {
			return restaurant.DishOption{}, err
		}
		return restaurant.NewFlatOption(dto.Name, extra)
	default:
		return restaurant.DishOption{}, errs.NewValueIsInvalidErrorWithCause("option kind",
			fmt.Errorf("%q is not a valid option kind", dto.Kind))
	}
}
