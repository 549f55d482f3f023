package store

import (
	"errors"
	"math"
	"testing"

	models "cart-manager/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleItems() []models.Item {
	return []models.Item{
		models.NewFruit("Banana", "local", 10),
		models.NewVegetable("Kale", "Leafy Green", 1.75),
		models.NewCannedItem("Beans", 4),
		models.NewFruit("Mango", "unknown-type", 3),
		models.NewFruit("banana", "IMPORTED", 0),
		models.NewVegetable("", "", 0),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sampleItems()
	out, err := Decode(Encode(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecodeEmpty(t *testing.T) {
	out, err := Decode(Encode(nil))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestEncodeDecodePreservesOddValues(t *testing.T) {
	in := []models.Item{
		{Kind: models.KindFruit, Name: "neg", Type: "local", Count: -3},
		{Kind: models.KindVegetable, Name: "unicode ✓ 名前", Type: "root", Weight: math.SmallestNonzeroFloat64},
		{Kind: models.KindCanned, Name: "big", Count: math.MaxInt32},
	}
	out, err := Decode(Encode(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	item := encodeItem(models.NewCannedItem("Soup", 2))
	item = protowire.AppendTag(item, 99, protowire.BytesType)
	item = protowire.AppendString(item, "future field")

	b := []byte(fileMagic)
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, formatVersion)
	b = protowire.AppendTag(b, fieldItem, protowire.BytesType)
	b = protowire.AppendBytes(b, item)

	out, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, models.NewCannedItem("Soup", 2), out[0])
}

func TestDecodeCorrupt(t *testing.T) {
	valid := Encode(sampleItems())

	withVersion := func(v uint64) []byte {
		b := []byte(fileMagic)
		b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
		return protowire.AppendVarint(b, v)
	}
	withItem := func(item []byte) []byte {
		b := withVersion(formatVersion)
		b = protowire.AppendTag(b, fieldItem, protowire.BytesType)
		return protowire.AppendBytes(b, item)
	}
	badKind := protowire.AppendTag(nil, itemKind, protowire.VarintType)
	badKind = protowire.AppendVarint(badKind, 7)
	hugeKind := protowire.AppendTag(nil, itemKind, protowire.VarintType)
	hugeKind = protowire.AppendVarint(hugeKind, 1<<20)
	noKind := protowire.AppendTag(nil, itemName, protowire.BytesType)
	noKind = protowire.AppendString(noKind, "orphan")

	cases := map[string][]byte{
		"empty":           {},
		"bad magic":       append([]byte("CARX"), valid[4:]...),
		"magic only":      []byte(fileMagic),
		"truncated":       valid[:len(valid)-3],
		"future version":  withVersion(2),
		"zero version":    withVersion(0),
		"unknown kind":    withItem(badKind),
		"kind overflow":   withItem(hugeKind),
		"missing kind":    withItem(noKind),
		"garbage payload": append([]byte(fileMagic), 0xff, 0xff, 0xff),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := Decode(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
			assert.Nil(t, out)
		})
	}
}
