// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memsize enumerates memory operand sizes.  A size describes the
// accessed element type and count; broadcast sizes describe a single element
// which is replicated across the vector.
package memsize

import (
	"fmt"
)

type MemorySize uint8

const (
	Unknown = MemorySize(iota)
	UInt16
	UInt32
	UInt64
	UInt128
	SegPtr16
	SegPtr32
	Bound16_WordWord
	Bound32_DwordDword
	Packed64_Int8
	Packed64_Int16
	Packed64_Int32
	Packed64_Float32
	Packed128_Int8
	Packed128_Int16
	Packed128_UInt16
	Packed128_Int32
	Packed128_UInt32
	Packed128_Int64
	Packed128_UInt64
	Packed128_Float32
	Packed128_Float64
	Packed256_Int8
	Packed256_Int16
	Packed256_UInt16
	Packed256_Int32
	Packed256_UInt32
	Packed256_Int64
	Packed256_UInt64
	Packed256_Float32
	Packed256_Float64
	Packed256_UInt128
	Packed512_Int8
	Packed512_Int16
	Packed512_UInt16
	Packed512_Int32
	Packed512_UInt32
	Packed512_Int64
	Packed512_UInt64
	Packed512_Float32
	Packed512_Float64
	Packed512_UInt128
	Broadcast64_Float32
	Broadcast128_Int32
	Broadcast128_UInt32
	Broadcast128_Int64
	Broadcast128_UInt64
	Broadcast128_Float32
	Broadcast128_Float64
	Broadcast256_Int32
	Broadcast256_UInt32
	Broadcast256_Int64
	Broadcast256_UInt64
	Broadcast256_Float32
	Broadcast256_Float64
	Broadcast512_Int32
	Broadcast512_UInt32
	Broadcast512_Int64
	Broadcast512_UInt64
	Broadcast512_Float32
	Broadcast512_Float64

	NumMemorySizes
)

type info struct {
	size     uint8
	elemSize uint8
	bcstBits uint16 // vector width of a broadcast
	name     string
}

// Size of the memory access in bytes.  Broadcast sizes access one element.
func (s MemorySize) Size() int { return int(s.info().size) }

// ElementSize in bytes.
func (s MemorySize) ElementSize() int { return int(s.info().elemSize) }

func (s MemorySize) IsBroadcast() bool { return s.info().bcstBits != 0 }

// BroadcastCount is the number of vector elements a broadcast element is
// replicated to, or 0 if s is not a broadcast size.
func (s MemorySize) BroadcastCount() int {
	i := s.info()
	if i.bcstBits == 0 {
		return 0
	}
	return int(i.bcstBits) / (int(i.elemSize) * 8)
}

func (s MemorySize) String() string {
	if s < NumMemorySizes {
		return infos[s].name
	}
	return fmt.Sprintf("<memory size %d>", uint8(s))
}

func (s MemorySize) info() (i info) {
	if s < NumMemorySizes {
		i = infos[s]
	}
	return
}

var infos = [NumMemorySizes]info{
	Unknown:              {0, 0, 0, "Unknown"},
	UInt16:               {2, 2, 0, "UInt16"},
	UInt32:               {4, 4, 0, "UInt32"},
	UInt64:               {8, 8, 0, "UInt64"},
	UInt128:              {16, 16, 0, "UInt128"},
	SegPtr16:             {4, 4, 0, "SegPtr16"},
	SegPtr32:             {6, 6, 0, "SegPtr32"},
	Bound16_WordWord:     {4, 2, 0, "Bound16_WordWord"},
	Bound32_DwordDword:   {8, 4, 0, "Bound32_DwordDword"},
	Packed64_Int8:        {8, 1, 0, "Packed64_Int8"},
	Packed64_Int16:       {8, 2, 0, "Packed64_Int16"},
	Packed64_Int32:       {8, 4, 0, "Packed64_Int32"},
	Packed64_Float32:     {8, 4, 0, "Packed64_Float32"},
	Packed128_Int8:       {16, 1, 0, "Packed128_Int8"},
	Packed128_Int16:      {16, 2, 0, "Packed128_Int16"},
	Packed128_UInt16:     {16, 2, 0, "Packed128_UInt16"},
	Packed128_Int32:      {16, 4, 0, "Packed128_Int32"},
	Packed128_UInt32:     {16, 4, 0, "Packed128_UInt32"},
	Packed128_Int64:      {16, 8, 0, "Packed128_Int64"},
	Packed128_UInt64:     {16, 8, 0, "Packed128_UInt64"},
	Packed128_Float32:    {16, 4, 0, "Packed128_Float32"},
	Packed128_Float64:    {16, 8, 0, "Packed128_Float64"},
	Packed256_Int8:       {32, 1, 0, "Packed256_Int8"},
	Packed256_Int16:      {32, 2, 0, "Packed256_Int16"},
	Packed256_UInt16:     {32, 2, 0, "Packed256_UInt16"},
	Packed256_Int32:      {32, 4, 0, "Packed256_Int32"},
	Packed256_UInt32:     {32, 4, 0, "Packed256_UInt32"},
	Packed256_Int64:      {32, 8, 0, "Packed256_Int64"},
	Packed256_UInt64:     {32, 8, 0, "Packed256_UInt64"},
	Packed256_Float32:    {32, 4, 0, "Packed256_Float32"},
	Packed256_Float64:    {32, 8, 0, "Packed256_Float64"},
	Packed256_UInt128:    {32, 16, 0, "Packed256_UInt128"},
	Packed512_Int8:       {64, 1, 0, "Packed512_Int8"},
	Packed512_Int16:      {64, 2, 0, "Packed512_Int16"},
	Packed512_UInt16:     {64, 2, 0, "Packed512_UInt16"},
	Packed512_Int32:      {64, 4, 0, "Packed512_Int32"},
	Packed512_UInt32:     {64, 4, 0, "Packed512_UInt32"},
	Packed512_Int64:      {64, 8, 0, "Packed512_Int64"},
	Packed512_UInt64:     {64, 8, 0, "Packed512_UInt64"},
	Packed512_Float32:    {64, 4, 0, "Packed512_Float32"},
	Packed512_Float64:    {64, 8, 0, "Packed512_Float64"},
	Packed512_UInt128:    {64, 16, 0, "Packed512_UInt128"},
	Broadcast64_Float32:  {4, 4, 64, "Broadcast64_Float32"},
	Broadcast128_Int32:   {4, 4, 128, "Broadcast128_Int32"},
	Broadcast128_UInt32:  {4, 4, 128, "Broadcast128_UInt32"},
	Broadcast128_Int64:   {8, 8, 128, "Broadcast128_Int64"},
	Broadcast128_UInt64:  {8, 8, 128, "Broadcast128_UInt64"},
	Broadcast128_Float32: {4, 4, 128, "Broadcast128_Float32"},
	Broadcast128_Float64: {8, 8, 128, "Broadcast128_Float64"},
	Broadcast256_Int32:   {4, 4, 256, "Broadcast256_Int32"},
	Broadcast256_UInt32:  {4, 4, 256, "Broadcast256_UInt32"},
	Broadcast256_Int64:   {8, 8, 256, "Broadcast256_Int64"},
	Broadcast256_UInt64:  {8, 8, 256, "Broadcast256_UInt64"},
	Broadcast256_Float32: {4, 4, 256, "Broadcast256_Float32"},
	Broadcast256_Float64: {8, 8, 256, "Broadcast256_Float64"},
	Broadcast512_Int32:   {4, 4, 512, "Broadcast512_Int32"},
	Broadcast512_UInt32:  {4, 4, 512, "Broadcast512_UInt32"},
	Broadcast512_Int64:   {8, 8, 512, "Broadcast512_Int64"},
	Broadcast512_UInt64:  {8, 8, 512, "Broadcast512_UInt64"},
	Broadcast512_Float32: {4, 4, 512, "Broadcast512_Float32"},
	Broadcast512_Float64: {8, 8, 512, "Broadcast512_Float64"},
}
