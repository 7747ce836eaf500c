// Package checksum implements the reflected CRC-32 used by the ZIP format
// for per-entry integrity fields (polynomial 0xEDB88320, initial and final
// value 0xFFFFFFFF).
package checksum

// poly is the reversed ISO-3309 polynomial shared by ZIP, gzip and Ethernet.
const poly = 0xEDB88320

var table = buildTable()

// buildTable precomputes the byte-at-a-time lookup table by running the
// reference bit-by-bit rounds once per byte value.
func buildTable() [256]uint32 {
	var t [256]uint32
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Sum returns the CRC-32 of data as stored in ZIP headers.
// The empty sequence sums to 0x00000000.
func Sum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = table[byte(crc)^b] ^ crc>>8
	}
	return ^crc
}
