package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source names where a document lives. The loader switches on the kind, so
// callers can hand over a disk path, an fs.FS entry, or a remote URL through
// one parameter.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind discriminates the loading strategies a Source can select.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile wraps a cleaned disk path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS wraps the name of an entry inside the loader's configured
// fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL wraps a remote document location. The string is validated
// here rather than at load time; a malformed URL is wiring, not input, so it
// panics.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: source URL is empty")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: source URL %q does not parse: %v", raw, err))
	}
	return urlSource{raw: raw}
}
