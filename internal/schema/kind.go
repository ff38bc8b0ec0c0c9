// Package schema holds the structural contracts for protocol files and the
// registry that maps a filename onto one of them.
package schema

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a protocol file.
type Kind string

const (
	// KindAsimov represents asimov.yaml (harm prevention / human veto rules).
	KindAsimov Kind = "asimov"
	// KindFreshness represents freshness.yaml (date-aware search rules).
	KindFreshness Kind = "freshness"
	// KindSycophancy represents sycophancy.yaml (truth over comfort rules).
	KindSycophancy Kind = "sycophancy"
	// KindGreen represents green.yaml (local-first, efficiency rules).
	KindGreen Kind = "green"
	// KindSprint represents sprint.yaml (session boundary rules).
	KindSprint Kind = "sprint"
	// KindWarmup represents warmup.yaml (session bootstrap).
	KindWarmup Kind = "warmup"
	// KindMigrations represents migrations.yaml (functional equivalence rules).
	KindMigrations Kind = "migrations"
	// KindProject represents project.yaml (project identity and quality gates).
	KindProject Kind = "project"
	// KindRoadmap represents roadmap.yaml (milestone planning).
	KindRoadmap Kind = "roadmap"
	// KindUnknown is returned for files the registry does not recognize.
	KindUnknown Kind = "unknown"
)

// knownKinds is the closed set of kinds, in regeneration order.
var knownKinds = []Kind{
	KindAsimov,
	KindFreshness,
	KindSycophancy,
	KindGreen,
	KindWarmup,
	KindMigrations,
	KindSprint,
	KindRoadmap,
	KindProject,
}

// Kinds returns every known kind in a stable order. The returned slice is a copy.
func Kinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Filename returns the file name a kind is stored under inside the protocol directory.
func (k Kind) Filename() string {
	if k == KindUnknown || k == "" {
		return ""
	}
	return string(k) + ".yaml"
}

// UserOwned reports whether files of this kind hold hand-authored planning data.
// User-owned files are created from a template when absent and never overwritten.
func (k Kind) UserOwned() bool {
	switch k {
	case KindRoadmap, KindSprint, KindProject:
		return true
	default:
		return false
	}
}

// Known reports whether k is one of the kinds in Kinds().
func (k Kind) Known() bool {
	for _, known := range knownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind parses a kind name (case-insensitive, optional .yaml/.yml suffix).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
	k := Kind(name)
	if !k.Known() {
		return KindUnknown, fmt.Errorf("invalid kind: %s (valid kinds: %s)", s, strings.Join(KindNames(), ", "))
	}
	return k, nil
}

// KindNames returns the names of all known kinds.
func KindNames() []string {
	names := make([]string, 0, len(knownKinds))
	for _, k := range knownKinds {
		names = append(names, string(k))
	}
	return names
}
