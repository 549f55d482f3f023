package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFruitCost(t *testing.T) {
	cases := []struct {
		fruitType string
		qty       int
		want      float64
	}{
		{"local", 10, 5.0},
		{"Local", 1, 0.5},
		{"Tropical", 4, 12.0},
		{"TROPICAL", 2, 6.0},
		{"imported", 3, 15.0},
		{"exotic", 5, 0},
		{"", 5, 0},
		{"local ", 5, 0},
		{"imported", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.fruitType, func(t *testing.T) {
			assert.InDelta(t, tc.want, NewFruit("x", tc.fruitType, tc.qty).Cost(), 1e-9)
		})
	}
}

func TestVegetableCost(t *testing.T) {
	cases := []struct {
		vegType string
		weight  float64
		want    float64
	}{
		{"root", 2.0, 1.0},
		{"ROOT", 1.0, 0.5},
		{"cruciferous", 10, 1.0},
		{"leafy-green", 10, 3.0},
		{"Leafy Green", 10, 3.0},
		{"leafy  green", 10, 3.0},
		{"leafygreen", 10, 0},
		{"tuber", 3, 0},
		{"", 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.vegType, func(t *testing.T) {
			assert.InDelta(t, tc.want, NewVegetable("y", tc.vegType, tc.weight).Cost(), 1e-9)
		})
	}
}

func TestCannedCost(t *testing.T) {
	assert.Equal(t, 3.75, NewCannedItem("z", 3).Cost())
	assert.Equal(t, 0.0, NewCannedItem("z", 0).Cost())
	assert.Equal(t, 5.0, NewCannedItem("Beans", 4).Cost())
}

func TestUnknownKindCostsNothing(t *testing.T) {
	it := Item{Kind: Kind(42), Name: "mystery", Type: "local", Count: 10, Weight: 3}
	assert.Equal(t, 0.0, it.Cost())
	assert.Equal(t, 0.0, Item{}.Cost())
}

func TestCostIsDeterministic(t *testing.T) {
	it := NewVegetable("kale", "Leafy Green", 1.7)
	first := it.Cost()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, it.Cost())
	}
}

func TestNameIsStoredUnchanged(t *testing.T) {
	assert.Equal(t, "  Banana ", NewFruit("  Banana ", "local", 1).Name)
	assert.Equal(t, "CaBbAgE", NewVegetable("CaBbAgE", "cruciferous", 1).Name)
}

func TestParseKind(t *testing.T) {
	for choice, want := range map[int]Kind{1: KindFruit, 2: KindVegetable, 3: KindCanned} {
		got, ok := ParseKind(choice)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, choice := range []int{-1, 0, 4, 256, 257} {
		_, ok := ParseKind(choice)
		assert.False(t, ok, "choice %d", choice)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "fruit", KindFruit.String())
	assert.Equal(t, "vegetable", KindVegetable.String())
	assert.Equal(t, "canned", KindCanned.String())
	assert.Equal(t, "unknown(9)", Kind(9).String())
}
