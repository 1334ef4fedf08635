// Package serialization saves and loads scalar parameter state in the
// SafeTensors format.
//
// Every parameter is stored as a rank-0 F64 tensor:
//
//	[8 bytes: header size (uint64 LE)]
//	[header: JSON, name -> {dtype, shape, data_offsets}, optional __metadata__]
//	[data: 8 bytes per parameter, little-endian IEEE 754]
//
// Entries are written in alphabetical order, so the same state always
// produces the same bytes. Files load in any SafeTensors reader.
package serialization
