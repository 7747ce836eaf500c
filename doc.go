// Package zipkit builds minimal stored (uncompressed) ZIP archives in
// memory from ordered lists of name/content entries.
//
// The produced archive is plain PKZIP version 1.0: one local file header
// plus raw content per entry, a central directory, and a single
// end-of-central-directory record. No compression, no ZIP64, no extra
// fields.
//
// # Quick Start
//
// Build an archive and hand it to whatever delivers the download:
//
//	data, err := zipkit.Build(ctx, []zipkit.Entry{
//	    {Name: "a.txt", Content: "hi"},
//	    {Name: "b.txt", Content: "bye"},
//	})
//	if err != nil {
//	    return err
//	}
//	w.Header().Set("Content-Type", zipkit.MediaType)
//	w.Write(data)
//
// A build is all-or-nothing: any unencodable character or overflowing
// header field aborts the whole build and no partial archive is returned.
//
// # Reproducible archives
//
// Header timestamps default to the wall clock at the start of each build.
// Fix them to make rebuilds byte-identical:
//
//	data, err := zipkit.Build(ctx, entries, zipkit.BuildWithModTime(release))
package zipkit
