package common

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Provides general helper functions for conversions between host side data and the raw bytes that get copied
// into device memory.

// RawBytes writes a given object as its little endian byte representation voiding all type information in the
// process. Only fixed size values and slices of them are supported, see binary.Write.
func RawBytes(p interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		return nil, fmt.Errorf("binary.Write failed: %w", err)
	}
	return buf.Bytes(), nil
}

// ToByteArr drops type reference from float array to allow Go to pass an unsafe.Pointer to Vulkan. The returned
// slice aliases in.
func ToByteArr(in []float32) []byte {
	if len(in) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&in[0])), len(in)*4)
}

// Uint32ByteArr is ToByteArr for index data.
func Uint32ByteArr(in []uint32) []byte {
	if len(in) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&in[0])), len(in)*4)
}
