package restaurant

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// OptionKind distinguishes the two shapes a dish option can take.
// An option is either a flat surcharge or a list of mutually exclusive
// choices; it is never both. The closed enum keeps pricing exhaustive
// and panic-free on data loaded from storage.
type OptionKind int

const (
	// UnknownOptionKind represents an invalid or undefined kind.
	UnknownOptionKind OptionKind = iota

	// FlatSurcharge adds a fixed amount when the option is selected.
	FlatSurcharge

	// ChoiceList offers mutually exclusive choices, each optionally
	// carrying its own surcharge.
	ChoiceList
)

// Validate checks that the OptionKind is one of the defined kinds.
func (k OptionKind) Validate() error {
	if k != FlatSurcharge && k != ChoiceList {
		return errs.NewValueIsInvalidErrorWithCause("optionKind", fmt.Errorf("%d is not a valid option kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k OptionKind) String() string {
	switch k {
	case FlatSurcharge:
		return "FlatSurcharge"
	case ChoiceList:
		return "ChoiceList"
	default:
		return "Unknown"
	}
}

// DishChoice is one selectable value under a ChoiceList option.
// The surcharge may be zero, meaning the choice is free.
type DishChoice struct {
	name  string
	extra kernel.Price
}

// NewDishChoice creates a choice with an optional surcharge.
func NewDishChoice(name string, extra kernel.Price) (DishChoice, error) {
	if name == "" {
		return DishChoice{}, errs.NewValueIsRequiredError("choice name")
	}
	return DishChoice{name: name, extra: extra}, nil
}

// Name returns the choice's name, matched against customer selections.
func (c DishChoice) Name() string {
	return c.name
}

// Extra returns the choice's surcharge.
func (c DishChoice) Extra() kernel.Price {
	return c.extra
}

// DishOption is a named customization on a dish. Its kind decides how a
// selection of this option affects the item price: FlatSurcharge adds
// Extra unconditionally, ChoiceList adds the surcharge of the chosen
// choice (if any).
type DishOption struct {
	name    string
	kind    OptionKind
	extra   kernel.Price
	choices []DishChoice
}

// NewFlatOption creates an option that adds a fixed surcharge when selected.
func NewFlatOption(name string, extra kernel.Price) (DishOption, error) {
	if name == "" {
		return DishOption{}, errs.NewValueIsRequiredError("option name")
	}
	return DishOption{
		name:  name,
		kind:  FlatSurcharge,
		extra: extra,
	}, nil
}

// NewChoiceOption creates an option offering mutually exclusive choices.
// The choice list must not be empty and choice names must be unique
// within the option.
func NewChoiceOption(name string, choices []DishChoice) (DishOption, error) {
	if name == "" {
		return DishOption{}, errs.NewValueIsRequiredError("option name")
	}
	if len(choices) == 0 {
		return DishOption{}, errs.NewValueIsRequiredError("choices")
	}

	seen := make(map[string]bool, len(choices))
	for _, choice := range choices {
		if choice.name == "" {
			return DishOption{}, errs.NewValueIsRequiredError("choice name")
		}
		if seen[choice.name] {
			return DishOption{}, errs.NewValueIsInvalidErrorWithCause("choices",
				errors.New("duplicate choice name: "+choice.name))
		}
		seen[choice.name] = true
	}

	return DishOption{
		name:    name,
		kind:    ChoiceList,
		choices: append([]DishChoice(nil), choices...),
	}, nil
}

// Name returns the option's name, matched against customer selections.
func (o DishOption) Name() string {
	return o.name
}

// Kind returns the option's shape.
func (o DishOption) Kind() OptionKind {
	return o.kind
}

// Extra returns the flat surcharge. Meaningful only for FlatSurcharge options.
func (o DishOption) Extra() kernel.Price {
	return o.extra
}

// Choices returns a copy of the choice list. Meaningful only for ChoiceList options.
func (o DishOption) Choices() []DishChoice {
	return append([]DishChoice(nil), o.choices...)
}

// ChoiceByName looks up a choice by name.
// Returns false when the name matches no choice.
func (o DishOption) ChoiceByName(name string) (DishChoice, bool) {
	for _, choice := range o.choices {
		if choice.name == name {
			return choice, true
		}
	}
	return DishChoice{}, false
}

// Validate checks the option's structural invariants. Used when options
// are reconstructed from their storage representation.
func (o DishOption) Validate() error {
	if o.name == "" {
		return errs.NewValueIsRequiredError("option name")
	}
	if err := o.kind.Validate(); err != nil {
		return err
	}
	if o.kind == ChoiceList && len(o.choices) == 0 {
		return errs.NewValueIsRequiredError("choices")
	}
	return nil
}
