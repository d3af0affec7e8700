package dtype

import (
	"math"

	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/heap"
	"github.com/scigo/hdf5ro/internal/message"
)

// DecodeSlice decodes n contiguous elements of data as dt into a []T,
// failing with KindTypeMismatch if T doesn't match dt's Kind. r is
// required only when dt is a variable-length string, to resolve each
// element's global heap reference.
func DecodeSlice[T Elem](dt *message.Datatype, data []byte, n uint64, r *binary.Reader) ([]T, error) {
	fileKind, err := KindOf(dt)
	if err != nil {
		return nil, err
	}
	wantKind := kindOf[T]()
	if fileKind != wantKind {
		return nil, &binary.ParseError{Kind: binary.KindTypeMismatch, Context: "element type", WantKind: wantKind.String(), GotKind: fileKind.String()}
	}

	out := make([]T, n)
	switch wantKind {
	case KindInt32:
		vals, err := decodeInt32(dt, data, n)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	case KindInt64:
		vals, err := decodeInt64(dt, data, n)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	case KindFloat32:
		vals, err := decodeFloat32(dt, data, n)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	case KindFloat64:
		vals, err := decodeFloat64(dt, data, n)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	case KindBool:
		vals, err := decodeBool(dt, data, n)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	case KindString:
		vals, err := decodeString(dt, data, n, r)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = any(v).(T)
		}
	}
	return out, nil
}

func elementBytes(data []byte, size, i int) ([]byte, error) {
	off := i * size
	if off+size > len(data) {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "element data", Need: int64(off + size - len(data))}
	}
	return data[off : off+size], nil
}

func decodeInt32(dt *message.Datatype, data []byte, n uint64) ([]int32, error) {
	size := int(dt.Size)
	out := make([]int32, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		out[i] = int32(binary.DecodeUint(b))
	}
	return out, nil
}

func decodeInt64(dt *message.Datatype, data []byte, n uint64) ([]int64, error) {
	size := int(dt.Size)
	out := make([]int64, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		out[i] = int64(binary.DecodeUint(b))
	}
	return out, nil
}

func decodeFloat32(dt *message.Datatype, data []byte, n uint64) ([]float32, error) {
	size := int(dt.Size)
	out := make([]float32, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		out[i] = math.Float32frombits(uint32(binary.DecodeUint(b)))
	}
	return out, nil
}

func decodeFloat64(dt *message.Datatype, data []byte, n uint64) ([]float64, error) {
	size := int(dt.Size)
	out := make([]float64, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		out[i] = math.Float64frombits(binary.DecodeUint(b))
	}
	return out, nil
}

func decodeBool(dt *message.Datatype, data []byte, n uint64) ([]bool, error) {
	size := int(dt.Size)
	out := make([]bool, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		out[i] = b[0] != 0
	}
	return out, nil
}

func decodeString(dt *message.Datatype, data []byte, n uint64, r *binary.Reader) ([]string, error) {
	if dt.Class == message.ClassVarLen {
		return decodeVarLenString(data, n, r)
	}
	return decodeFixedString(dt, data, n)
}

func decodeFixedString(dt *message.Datatype, data []byte, n uint64) ([]string, error) {
	size := int(dt.Size)
	out := make([]string, n)
	for i := range out {
		b, err := elementBytes(data, size, i)
		if err != nil {
			return nil, err
		}
		end := len(b)
		for j, c := range b {
			if c == 0 {
				end = j
				break
			}
		}
		if dt.StringPadding == message.PadSpacePad {
			for end > 0 && b[end-1] == ' ' {
				end--
			}
		}
		out[i] = string(b[:end])
	}
	return out, nil
}

// decodeVarLenString resolves each element's 16-byte global heap
// descriptor, caching heap collections by address since many elements
// commonly share one collection.
func decodeVarLenString(data []byte, n uint64, r *binary.Reader) ([]string, error) {
	if r == nil {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVariant, Context: "variable-length string", Value: 0}
	}

	const refSize = 16
	out := make([]string, n)
	cache := make(map[uint64]*heap.GlobalHeap)

	for i := range out {
		b, err := elementBytes(data, refSize, i)
		if err != nil {
			return nil, err
		}
		id, err := heap.ParseGlobalHeapID(b)
		if err != nil {
			return nil, err
		}
		if id.CollectionAddress == 0 {
			continue
		}
		gh, ok := cache[id.CollectionAddress]
		if !ok {
			gh, err = heap.ReadGlobalHeap(r, id.CollectionAddress)
			if err != nil {
				return nil, err
			}
			cache[id.CollectionAddress] = gh
		}
		str, err := gh.GetString(uint16(id.ObjectIndex))
		if err != nil {
			return nil, err
		}
		out[i] = str
	}
	return out, nil
}
