package deck

import "path/filepath"

// Source names the origin of one deck document. A Source carries only the
// coordinates the Loader needs to fetch bytes; how those bytes are read is
// the Loader's business.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind distinguishes how a Source's bytes are obtained.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile points at a document on the host filesystem.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS points at an entry inside the fs.FS configured with WithFS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Location() string { return s.name }
func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

// SourceFromBytes wraps a payload already held in memory; name appears in
// error messages and nothing else.
func SourceFromBytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}
