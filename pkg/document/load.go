package document

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markup/pkg/css"
	"github.com/goliatone/go-markup/pkg/html"
	"github.com/goliatone/go-markup/pkg/render"
	"github.com/goliatone/go-markup/pkg/scope"
)

// Kind separates HTML node documents from CSS declaration documents.
type Kind int

const (
	KindHTML Kind = iota
	KindCSS
)

func (k Kind) String() string {
	if k == KindCSS {
		return "css"
	}
	return "html"
}

// Document is one parsed file. Exactly one of Node or Decls is set, matching
// Kind.
type Document struct {
	Name  string
	Path  string
	Kind  Kind
	Node  html.Node
	Decls css.Decls
}

var documentExts = []string{".yaml", ".yml", ".json"}

// Classify reports whether file is a document and of which kind, returning the
// document name: the path without extension. Files named *.css.yaml (or .yml,
// .json) are CSS documents.
func Classify(file string) (name string, kind Kind, ok bool) {
	ext := strings.ToLower(path.Ext(file))
	matched := false
	for _, candidate := range documentExts {
		if ext == candidate {
			matched = true
			break
		}
	}
	if !matched {
		return "", KindHTML, false
	}

	name = strings.TrimSuffix(file, path.Ext(file))
	if strings.EqualFold(path.Ext(name), ".css") {
		return strings.TrimSuffix(name, path.Ext(name)), KindCSS, true
	}
	return name, KindHTML, true
}

// Parse decodes data as a document of the given kind.
func Parse(name string, kind Kind, data []byte) (Document, error) {
	doc := Document{Name: name, Path: name, Kind: kind}
	var err error
	switch kind {
	case KindCSS:
		doc.Decls, err = ParseDecls(data)
	default:
		doc.Node, err = ParseNode(data)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// LoadFS walks fsys and parses every document it finds, sorted by name.
// Document names must be unique across kinds because they name output files.
func LoadFS(fsys fs.FS) ([]Document, error) {
	if fsys == nil {
		return nil, nil
	}

	seen := make(map[string]string)
	var docs []Document
	err := fs.WalkDir(fsys, ".", func(file string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		name, kind, ok := Classify(file)
		if !ok {
			return nil
		}
		if previous, exists := seen[name]; exists {
			return fmt.Errorf("document: duplicate document %q (files %s and %s)", name, previous, file)
		}
		seen[name] = file

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("document: read %s: %w", file, err)
		}
		doc, err := Parse(name, kind, data)
		if err != nil {
			return err
		}
		doc.Path = file
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// LoadFile parses a single document from disk.
func LoadFile(file string) (Document, error) {
	name, kind, ok := Classify(filepath.ToSlash(file))
	if !ok {
		return Document{}, fmt.Errorf("document: unsupported file %s", file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", file, err)
	}
	doc, err := Parse(path.Base(name), kind, data)
	if err != nil {
		return Document{}, err
	}
	doc.Path = file
	return doc, nil
}

// ParseContext decodes a context mapping. format is a file extension:
// ".toml" uses TOML, anything else is read as YAML (which covers JSON).
func ParseContext(data []byte, format string) (scope.Context, error) {
	raw := map[string]any{}
	var err error
	switch strings.ToLower(format) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("document: parse context: %w", err)
	}
	return scope.Context(raw), nil
}

// LoadContext reads a context file (.toml, .yaml, .yml or .json).
func LoadContext(file string) (scope.Context, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("document: read context %s: %w", file, err)
	}
	return ParseContext(data, filepath.Ext(file))
}

// Target binds doc to the engine of its kind with the given context so a
// render.Registry can build it.
func (d Document) Target(h *html.Engine, c *css.Engine, ctx scope.Context) render.Target {
	if d.Kind == KindCSS {
		return c.Target(d.Name, CSSComponent(c, d.Decls), nil, ctx)
	}
	return h.Target(d.Name, HTMLComponent(h, d.Node), nil, ctx)
}

// Component returns doc as an HTML component; CSS documents use CSSComponent.
func (d Document) Component(h *html.Engine) (html.Component, error) {
	if d.Kind != KindHTML {
		return nil, fmt.Errorf("document: %s is a %s document", d.Name, d.Kind)
	}
	return HTMLComponent(h, d.Node), nil
}
