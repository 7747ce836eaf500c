// Package zipfmt encodes the three PKZIP record types that make up a
// stored (uncompressed) archive: the local file header, the central
// directory file header, and the end-of-central-directory record.
//
// Every multi-byte field is little-endian. The encoders are pure
// byte-packing; length fields are written from the supplied slices, so
// callers must have checked them against the 16/32-bit field capacities
// beforehand.
package zipfmt

const (
	localFileHeaderSignature  = 0x04034b50 // "PK\x03\x04"
	centralDirectorySignature = 0x02014b50 // "PK\x01\x02"
	endOfCentralDirSignature  = 0x06054b50 // "PK\x05\x06"

	// Fixed record sizes, excluding the variable-length name and content
	// bytes that follow the fixed part.
	LocalFileHeaderLen  = 30
	CentralDirectoryLen = 46
	EndOfCentralDirLen  = 22

	// Stored entries need nothing past the original 1.0 format.
	versionNeeded = 10
	// Upper byte 3 marks the UNIX platform in version-made-by.
	versionMadeBy = 0x0300 | versionNeeded

	methodStored = 0
)

// fieldBuf appends little-endian header fields to a byte slice.
type fieldBuf []byte

func (b *fieldBuf) uint16(v uint16) {
	*b = append(*b, byte(v), byte(v>>8))
}

func (b *fieldBuf) uint32(v uint32) {
	*b = append(*b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (b *fieldBuf) raw(p []byte) {
	*b = append(*b, p...)
}

// AppendLocalFileHeader appends one entry's local file header followed by
// its raw content bytes and returns the extended slice.
func AppendLocalFileHeader(dst, name, content []byte, crc uint32, stamp DOSStamp) []byte {
	b := fieldBuf(dst)
	b.uint32(localFileHeaderSignature)
	b.uint16(versionNeeded)
	b.uint16(0) // flags
	b.uint16(methodStored)
	b.uint16(stamp.Time)
	b.uint16(stamp.Date)
	b.uint32(crc)
	b.uint32(uint32(len(content))) // compressed size
	b.uint32(uint32(len(content))) // uncompressed size, equal when stored
	b.uint16(uint16(len(name)))
	b.uint16(0) // extra field length
	b.raw(name)
	b.raw(content)
	return b
}

// AppendCentralDirectory appends one entry's central directory file header.
// offset is the byte position of the entry's local file header within the
// archive.
func AppendCentralDirectory(dst, name []byte, contentLen int, crc uint32, stamp DOSStamp, offset uint32) []byte {
	b := fieldBuf(dst)
	b.uint32(centralDirectorySignature)
	b.uint16(versionMadeBy)
	b.uint16(versionNeeded)
	b.uint16(0) // flags
	b.uint16(methodStored)
	b.uint16(stamp.Time)
	b.uint16(stamp.Date)
	b.uint32(crc)
	b.uint32(uint32(contentLen))
	b.uint32(uint32(contentLen))
	b.uint16(uint16(len(name)))
	b.uint16(0) // extra field length
	b.uint16(0) // comment length
	b.uint16(0) // disk number start
	b.uint16(0) // internal attributes
	b.uint32(0) // external attributes
	b.uint32(offset)
	b.raw(name)
	return b
}

// AppendEndOfCentralDir appends the single trailer record. The entry count
// is written twice, as total entries and entries on this disk, because the
// archive is always single-disk.
func AppendEndOfCentralDir(dst []byte, entries uint16, cdSize, cdOffset uint32) []byte {
	b := fieldBuf(dst)
	b.uint32(endOfCentralDirSignature)
	b.uint16(0) // disk number
	b.uint16(0) // disk with central directory
	b.uint16(entries)
	b.uint16(entries)
	b.uint32(cdSize)
	b.uint32(cdOffset)
	b.uint16(0) // comment length
	return b
}
