package models

import (
	"strconv"
	"strings"
)

// Kind is the variant tag of an Item. The numeric values are written to disk,
// so existing values must never be renumbered.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFruit
	KindVegetable
	KindCanned
)

// CanPrice is the flat price of a single can.
const CanPrice = 1.25

var fruitRates = map[string]float64{
	"local":    0.5,
	"tropical": 3.0,
	"imported": 5.0,
}

var vegetableRates = map[string]float64{
	"leafy-green": 0.3,
	"cruciferous": 0.1,
	"root":        0.5,
}

func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindVegetable:
		return "vegetable"
	case KindCanned:
		return "canned"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	return k == KindFruit || k == KindVegetable || k == KindCanned
}

// ParseKind maps the add-item menu choice (1, 2 or 3) to a Kind.
func ParseKind(choice int) (Kind, bool) {
	k := Kind(choice)
	if choice < 0 || choice > 255 || !k.Valid() {
		return KindUnknown, false
	}
	return k, true
}

// Item is a priced cart entry. Kind selects which of the remaining fields
// are meaningful: Type and Count for fruit, Type and Weight for vegetables,
// Count for canned goods.
type Item struct {
	Kind   Kind
	Name   string
	Type   string
	Count  int
	Weight float64
}

// NewFruit returns a fruit priced per piece by its type.
func NewFruit(name, fruitType string, quantity int) Item {
	return Item{Kind: KindFruit, Name: name, Type: fruitType, Count: quantity}
}

// NewVegetable returns a vegetable priced by weight and type.
func NewVegetable(name, vegType string, weight float64) Item {
	return Item{Kind: KindVegetable, Name: name, Type: vegType, Weight: weight}
}

// NewCannedItem returns canned goods priced per can.
func NewCannedItem(name string, cans int) Item {
	return Item{Kind: KindCanned, Name: name, Count: cans}
}

// Cost returns the price of the item. Unrecognised types and kinds cost 0.
func (it Item) Cost() float64 {
	switch it.Kind {
	case KindFruit:
		return float64(it.Count) * fruitRates[strings.ToLower(it.Type)]
	case KindVegetable:
		return it.Weight * vegetableRates[normalizeVegetableType(it.Type)]
	case KindCanned:
		return float64(it.Count) * CanPrice
	default:
		return 0
	}
}

// "Leafy Green" is what the prompt suggests, "leafy-green" is the canonical key.
func normalizeVegetableType(t string) string {
	return strings.Join(strings.Fields(strings.ToLower(t)), "-")
}
