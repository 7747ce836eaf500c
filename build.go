package zipkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/zipkit/internal/checksum"
	"github.com/meigma/zipkit/internal/textenc"
	"github.com/meigma/zipkit/internal/zipfmt"
)

// Build assembles a stored (uncompressed) ZIP archive from entries and
// returns it as one contiguous buffer of media type [MediaType].
//
// Entries appear in the archive in input order, each as a local file
// header followed by its raw content, then one central directory entry
// per file, then the end-of-central-directory record. The result is
// readable by any standard ZIP tool.
//
// Build is all-or-nothing: a codec failure, an overflowing header field,
// or context cancellation returns a nil buffer and no partial output.
func Build(ctx context.Context, entries []Entry, opts ...BuildOption) ([]byte, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.modTime.IsZero() {
		cfg.modTime = time.Now()
	}

	b := &builder{cfg: cfg}
	b.log().Info("building archive", "entries", len(entries))

	if len(entries) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d entries exceed the 16-bit entry count", ErrFieldOverflow, len(entries))
	}

	encoded, err := b.encodeEntries(ctx, entries)
	if err != nil {
		return nil, err
	}

	archive, err := b.assemble(encoded)
	if err != nil {
		return nil, err
	}

	b.log().Info("archive built", "size", len(archive))
	return archive, nil
}

// builder holds state for one archive build.
type builder struct {
	cfg buildConfig
}

// log returns the logger, falling back to a discard logger if nil.
func (b *builder) log() *slog.Logger {
	if b.cfg.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b.cfg.logger
}

// encodeEntries runs the text codec and checksum over every entry.
// With more than one worker configured, entries encode in parallel; the
// result slice is indexed by input position so emission stays ordered.
func (b *builder) encodeEntries(ctx context.Context, entries []Entry) ([]encodedEntry, error) {
	encoded := make([]encodedEntry, len(entries))

	if b.cfg.workers > 1 {
		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(b.cfg.workers)
		for i, e := range entries {
			i, e := i, e
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				enc, err := encodeEntry(e)
				if err != nil {
					return err
				}
				encoded[i] = enc
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return encoded, nil
	}

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		enc, err := encodeEntry(e)
		if err != nil {
			return nil, err
		}
		encoded[i] = enc
	}
	return encoded, nil
}

// encodeEntry converts one entry to bytes and bounds-checks the lengths
// against their header fields.
func encodeEntry(e Entry) (encodedEntry, error) {
	name, err := textenc.EncodeString(e.Name)
	if err != nil {
		return encodedEntry{}, fmt.Errorf("encode name %q: %w", e.Name, err)
	}
	content, err := textenc.EncodeString(e.Content)
	if err != nil {
		return encodedEntry{}, fmt.Errorf("encode content of %q: %w", e.Name, err)
	}

	if len(name) > math.MaxUint16 {
		return encodedEntry{}, fmt.Errorf("%w: name of %q is %d bytes", ErrFieldOverflow, truncateName(e.Name), len(name))
	}
	if uint64(len(content)) > math.MaxUint32 {
		return encodedEntry{}, fmt.Errorf("%w: content of %q is %d bytes", ErrFieldOverflow, e.Name, len(content))
	}

	return encodedEntry{name: name, content: content, crc: checksum.Sum(content)}, nil
}

// truncateName keeps overflow error messages readable for absurd names.
func truncateName(name string) string {
	const max = 64
	if len(name) <= max {
		return name
	}
	return name[:max] + "..."
}

// assemble concatenates the record blocks in archive order, threading the
// offset and central directory size accumulators through a single pass.
func (b *builder) assemble(encoded []encodedEntry) ([]byte, error) {
	stamp := zipfmt.NewDOSStamp(b.cfg.modTime)

	var localSize, cdSize uint64
	for _, e := range encoded {
		localSize += zipfmt.LocalFileHeaderLen + uint64(len(e.name)) + uint64(len(e.content))
		cdSize += zipfmt.CentralDirectoryLen + uint64(len(e.name))
	}
	if localSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: central directory offset %d exceeds 32 bits", ErrFieldOverflow, localSize)
	}
	if cdSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: central directory size %d exceeds 32 bits", ErrFieldOverflow, cdSize)
	}

	locals := make([]byte, 0, localSize)
	central := make([]byte, 0, cdSize)
	var offset uint64
	for _, e := range encoded {
		locals = zipfmt.AppendLocalFileHeader(locals, e.name, e.content, e.crc, stamp)
		central = zipfmt.AppendCentralDirectory(central, e.name, len(e.content), e.crc, stamp, uint32(offset))
		offset += zipfmt.LocalFileHeaderLen + uint64(len(e.name)) + uint64(len(e.content))
	}

	archive := make([]byte, 0, localSize+cdSize+zipfmt.EndOfCentralDirLen)
	archive = append(archive, locals...)
	archive = append(archive, central...)
	archive = zipfmt.AppendEndOfCentralDir(archive, uint16(len(encoded)), uint32(cdSize), uint32(localSize))

	b.log().Debug("records assembled",
		"central_dir_offset", localSize,
		"central_dir_size", cdSize,
	)
	return archive, nil
}
