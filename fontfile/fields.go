// FoundryTools - command line tools for editing OpenType fonts
// Copyright (C) 2026  SolidTux
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontfile

import "encoding/binary"

func u16(data []byte, offs int) uint16 {
	return binary.BigEndian.Uint16(data[offs : offs+2])
}

func putU16(data []byte, offs int, v uint16) {
	binary.BigEndian.PutUint16(data[offs:offs+2], v)
}

func i16(data []byte, offs int) int16 {
	return int16(binary.BigEndian.Uint16(data[offs : offs+2]))
}

func putI16(data []byte, offs int, v int16) {
	binary.BigEndian.PutUint16(data[offs:offs+2], uint16(v))
}

func u32(data []byte, offs int) uint32 {
	return binary.BigEndian.Uint32(data[offs : offs+4])
}

func putU32(data []byte, offs int, v uint32) {
	binary.BigEndian.PutUint32(data[offs:offs+4], v)
}

func i64(data []byte, offs int) int64 {
	return int64(binary.BigEndian.Uint64(data[offs : offs+8]))
}

func putI64(data []byte, offs int, v int64) {
	binary.BigEndian.PutUint64(data[offs:offs+8], uint64(v))
}

func isBitSet(x uint16, n int) bool {
	return x&(1<<n) != 0
}

func setBit(x uint16, n int) uint16 {
	return x | 1<<n
}

func clearBit(x uint16, n int) uint16 {
	return x &^ (1 << n)
}
