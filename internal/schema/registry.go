package schema

import (
	"path/filepath"
	"strings"
)

// rule maps a filename keyword onto a kind.
type rule struct {
	keyword string
	kind    Kind
}

// rules are evaluated in order and the first match wins. Specific protocol
// keywords come before the generic "project" keyword. "asimov" is the tool's
// namespace prefix, so it is tried last: asimov-roadmap.yaml is a roadmap.
var rules = []rule{
	{"sycophancy", KindSycophancy},
	{"freshness", KindFreshness},
	{"migrations", KindMigrations},
	{"green", KindGreen},
	{"warmup", KindWarmup},
	{"sprint", KindSprint},
	{"roadmap", KindRoadmap},
	{"project", KindProject},
	{"asimov", KindAsimov},
}

// KindFor returns the kind for a filename, or KindUnknown. Only the base name
// is considered and matching is case-insensitive.
func KindFor(filename string) Kind {
	name := strings.ToLower(filepath.Base(filename))
	for _, r := range rules {
		if strings.Contains(name, r.keyword) {
			return r.kind
		}
	}
	return KindUnknown
}

// For returns the schema document for a filename, or nil when the file is not
// a protocol file.
func For(filename string) *Document {
	return Get(KindFor(filename))
}

// Lookup returns the kind and schema document for a filename. ok is false when
// the file is not a protocol file; callers should skip it rather than fail.
func Lookup(filename string) (Kind, *Document, bool) {
	kind := KindFor(filename)
	doc := Get(kind)
	if doc == nil {
		return KindUnknown, nil, false
	}
	return kind, doc, true
}

// IsProtocolFile reports whether filename names a YAML file the registry recognizes.
func IsProtocolFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	return KindFor(filename) != KindUnknown
}
