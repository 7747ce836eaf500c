package zipkit

// MediaType is the media type of the archives Build produces.
const MediaType = "application/zip"

// Entry is one logical file to place in an archive.
type Entry struct {
	// Name is the entry's path inside the archive (e.g. "notes/a.txt").
	// Callers supply a non-empty name; emptiness validation happens at
	// the calling surface, not here.
	Name string

	// Content is the entry's full content, stored verbatim.
	Content string
}

// encodedEntry is an Entry's byte form, owned by one build and discarded
// once its headers are emitted.
type encodedEntry struct {
	name    []byte
	content []byte
	crc     uint32
}
