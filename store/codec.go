package store

import (
	"bytes"
	"fmt"
	"math"

	models "cart-manager/model"

	"google.golang.org/protobuf/encoding/protowire"
)

// On-disk layout: the magic bytes followed by a protobuf-wire message
//
//	1: varint  format version
//	2: bytes   item record (repeated, in cart order)
//
// and each item record is
//
//	1: varint  kind
//	2: bytes   name
//	3: bytes   type
//	4: varint  count (zigzag)
//	5: fixed64 weight (IEEE-754 bits)
//
// Unknown fields are skipped on decode.
const (
	fileMagic     = "CART"
	formatVersion = 1
)

const (
	fieldVersion protowire.Number = 1
	fieldItem    protowire.Number = 2
)

const (
	itemKind   protowire.Number = 1
	itemName   protowire.Number = 2
	itemType   protowire.Number = 3
	itemCount  protowire.Number = 4
	itemWeight protowire.Number = 5
)

// Encode serialises items into the cart file format.
func Encode(items []models.Item) []byte {
	b := []byte(fileMagic)
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, formatVersion)
	for _, it := range items {
		b = protowire.AppendTag(b, fieldItem, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeItem(it))
	}
	return b
}

func encodeItem(it models.Item) []byte {
	var b []byte
	b = protowire.AppendTag(b, itemKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(it.Kind))
	b = protowire.AppendTag(b, itemName, protowire.BytesType)
	b = protowire.AppendString(b, it.Name)
	b = protowire.AppendTag(b, itemType, protowire.BytesType)
	b = protowire.AppendString(b, it.Type)
	b = protowire.AppendTag(b, itemCount, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(it.Count)))
	b = protowire.AppendTag(b, itemWeight, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(it.Weight))
	return b
}

// Decode parses data produced by Encode. Any malformed input yields an
// error wrapping ErrCorrupt and no items.
func Decode(data []byte) ([]models.Item, error) {
	if !bytes.HasPrefix(data, []byte(fileMagic)) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	data = data[len(fileMagic):]

	var (
		version     uint64
		haveVersion bool
	)
	items := []models.Item{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, wireErr(n)
		}
		data = data[n:]

		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, wireErr(n)
			}
			version, haveVersion = v, true
			data = data[n:]
		case num == fieldItem && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, wireErr(n)
			}
			it, err := decodeItem(raw)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", len(items), err)
			}
			items = append(items, it)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, wireErr(n)
			}
			data = data[n:]
		}
	}

	if !haveVersion {
		return nil, fmt.Errorf("%w: missing format version", ErrCorrupt)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrCorrupt, version)
	}
	return items, nil
}

func decodeItem(data []byte) (models.Item, error) {
	var it models.Item
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return it, wireErr(n)
		}
		data = data[n:]

		switch {
		case num == itemKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return it, wireErr(n)
			}
			if v > math.MaxUint8 {
				return it, fmt.Errorf("%w: kind %d out of range", ErrCorrupt, v)
			}
			it.Kind = models.Kind(v)
			data = data[n:]
		case (num == itemName || num == itemType) && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return it, wireErr(n)
			}
			if num == itemName {
				it.Name = s
			} else {
				it.Type = s
			}
			data = data[n:]
		case num == itemCount && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return it, wireErr(n)
			}
			it.Count = int(protowire.DecodeZigZag(v))
			data = data[n:]
		case num == itemWeight && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return it, wireErr(n)
			}
			it.Weight = math.Float64frombits(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return it, wireErr(n)
			}
			data = data[n:]
		}
	}

	if !it.Kind.Valid() {
		return it, fmt.Errorf("%w: unknown item kind %d", ErrCorrupt, it.Kind)
	}
	return it, nil
}

func wireErr(n int) error {
	return fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
}
