package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownTypeName is the canonical sentinel category for source codes the
// translation table does not recognize. Unrecognized input is filed here
// rather than rejected.
const UnknownTypeName = "Desconhecido"

// TypeTranslations maps normalized source codes (English) to canonical
// Portuguese names. Built once at startup and injected into the registry.
type TypeTranslations struct {
	toPt map[string]string
	toEn map[string]string
}

// DefaultTypeTranslations returns the fixed 18-category table.
func DefaultTypeTranslations() *TypeTranslations {
	toPt := map[string]string{
		"normal":   "Normal",
		"fighting": "Lutador",
		"flying":   "Voador",
		"poison":   "Venenoso",
		"ground":   "Terrestre",
		"rock":     "Pedra",
		"bug":      "Inseto",
		"ghost":    "Fantasma",
		"steel":    "Aço",
		"metal":    "Aço", // legacy synonym used by older payloads
		"fire":     "Fogo",
		"water":    "Água",
		"grass":    "Planta",
		"electric": "Elétrico",
		"psychic":  "Psíquico",
		"ice":      "Gelo",
		"dragon":   "Dragão",
		"dark":     "Sombrio",
		"fairy":    "Fada",
	}
	toEn := make(map[string]string, len(toPt))
	for en, pt := range toPt {
		if en == "metal" {
			continue // synonym; "steel" is the canonical reverse mapping
		}
		toEn[NormalizeTypeName(pt)] = en
	}
	return &TypeTranslations{toPt: toPt, toEn: toEn}
}

// ToPt translates a normalized source code to its canonical name.
// Unmapped codes translate to UnknownTypeName.
func (t *TypeTranslations) ToPt(code string) string {
	if pt, ok := t.toPt[code]; ok {
		return pt
	}
	return UnknownTypeName
}

// ToEn translates a normalized canonical name back to the source code.
// Input that is not a known canonical name passes through unchanged, so
// source codes like "fire" resolve directly.
func (t *TypeTranslations) ToEn(normalized string) string {
	if en, ok := t.toEn[normalized]; ok {
		return en
	}
	return normalized
}

// NormalizeTypeName prepares free-text input for comparison and translation:
// trim, lowercase, strip diacritics and hyphens.
func NormalizeTypeName(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	stripped, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), v)
	if err == nil {
		v = stripped
	}
	return strings.ReplaceAll(v, "-", "")
}

// TypeRegistry resolves free-text type names in either language to a single
// canonical row, creating rows lazily on first encounter.
type TypeRegistry struct {
	types        repository.TypeRepository
	translations *TypeTranslations
	logger       *logrus.Logger
}

// NewTypeRegistry creates a TypeRegistry with an injected translation table.
func NewTypeRegistry(types repository.TypeRepository, translations *TypeTranslations, logger *logrus.Logger) *TypeRegistry {
	return &TypeRegistry{
		types:        types,
		translations: translations,
		logger:       logger,
	}
}

// Resolve returns the canonical Type for a name in either language,
// inserting a new row when no equivalent exists. Blank input resolves to the
// "normal" category; unrecognized input resolves to the unknown sentinel.
func (s *TypeRegistry) Resolve(ctx context.Context, nameOrCode string) (*model.Type, error) {
	normalized := NormalizeTypeName(nameOrCode)
	if normalized == "" {
		normalized = "normal"
	}

	nameEn := s.translations.ToEn(normalized)
	namePt := s.translations.ToPt(nameEn)

	existing, err := s.types.FindByNamePt(ctx, namePt)
	if err != nil {
		return nil, fmt.Errorf("lookup type by canonical name: %w", err)
	}
	if existing == nil {
		existing, err = s.types.FindByNameEn(ctx, nameEn)
		if err != nil {
			return nil, fmt.Errorf("lookup type by source name: %w", err)
		}
	}
	if existing != nil {
		return existing, nil
	}

	created := &model.Type{NamePt: namePt, NameEn: nameEn}
	if err := s.types.Create(ctx, created); err != nil {
		// a concurrent resolve may have inserted the same concept first
		if existing, lookupErr := s.types.FindByNamePt(ctx, namePt); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("create type %q: %w", namePt, err)
	}
	s.logger.WithField("name_pt", created.NamePt).WithField("name_en", created.NameEn).
		Info("registered new type")
	return created, nil
}

// ResolveAll resolves every entry of a name list, preserving order.
func (s *TypeRegistry) ResolveAll(ctx context.Context, names []string) ([]model.Type, error) {
	resolved := make([]model.Type, 0, len(names))
	seen := make(map[uint64]bool, len(names))
	for _, name := range names {
		t, err := s.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		resolved = append(resolved, *t)
	}
	return resolved, nil
}
