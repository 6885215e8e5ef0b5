// Package restaurant contains the Restaurant aggregate: a restaurant, its
// menu of dishes, and the dish customization structures.
//
// Dish options are modeled as a closed tagged structure (OptionKind): an
// option is either a flat surcharge or a list of mutually exclusive choices.
// This is validated at the storage boundary so the pricing logic can match
// selections exhaustively without defending against malformed data.
package restaurant
