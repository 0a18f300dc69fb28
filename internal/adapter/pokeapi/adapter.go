package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"CentroPokemon/internal/config"
	"CentroPokemon/internal/interfaces"
	"CentroPokemon/internal/model"
	"CentroPokemon/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Adapter fetches and normalizes Pokémon data from the PokeAPI REST service.
// It satisfies the provider contract: every failure degrades to an absent
// result, never an error.
type Adapter struct {
	cfg        *config.PokeAPIConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAdapter creates a PokeAPI adapter using the shared HTTP client.
func NewAdapter(cfg *config.PokeAPIConfig, logger *logrus.Logger) interfaces.PokemonProvider {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

// FetchPokemon loads /pokemon/{nameOrID} plus its species record and merges
// both into one normalized shape.
func (a *Adapter) FetchPokemon(ctx context.Context, nameOrID string) *model.ExternalPokemon {
	var raw model.PokeAPIPokemon
	url := fmt.Sprintf("%s/pokemon/%s", a.cfg.BaseURL, strings.ToLower(strings.TrimSpace(nameOrID)))
	if !a.getJSON(ctx, url, &raw) {
		return nil
	}
	if raw.ID == 0 || raw.Name == "" {
		a.logger.WithField("query", nameOrID).Warn("pokeapi returned an unusable pokemon payload")
		return nil
	}

	ext := &model.ExternalPokemon{
		PokeAPIID: raw.ID,
		NameEn:    raw.Name,
		SpriteURL: bestSprite(&raw.Sprites),
	}
	for _, t := range raw.Types {
		if name := t.Type.Name; name != "" {
			ext.TypeCodes = append(ext.TypeCodes, name)
		}
	}
	for _, ab := range raw.Abilities {
		if name := ab.Ability.Name; name != "" {
			ext.Abilities = append(ext.Abilities, name)
		}
	}
	ext.BaseStats = extractStats(&raw)

	// species data is best-effort; the base record alone is still usable
	var species model.PokeAPISpecies
	speciesURL := fmt.Sprintf("%s/pokemon-species/%d", a.cfg.BaseURL, raw.ID)
	if a.getJSON(ctx, speciesURL, &species) {
		ext.NamePt = localizedName(&species)
		ext.DescriptionPt, ext.DescriptionEn = flavorTexts(&species)
	}
	return ext
}

// FetchTypeRoster lists the source ids of all Pokémon carrying a type code.
func (a *Adapter) FetchTypeRoster(ctx context.Context, typeCode string) []string {
	var roster model.PokeAPITypeRoster
	url := fmt.Sprintf("%s/type/%s", a.cfg.BaseURL, strings.ToLower(strings.TrimSpace(typeCode)))
	if !a.getJSON(ctx, url, &roster) {
		return nil
	}
	ids := make([]string, 0, len(roster.Pokemon))
	for _, entry := range roster.Pokemon {
		if id := trailingID(entry.Pokemon.URL); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// getJSON performs one GET with bounded retries, reporting success only for
// a decodable 200 response.
func (a *Adapter) getJSON(ctx context.Context, url string, out interface{}) bool {
	attempts := a.cfg.RetryCount + 1
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			a.logger.WithError(err).WithField("url", url).Warn("pokeapi request build failed")
			return false
		}
		resp, err := a.httpClient.Do(req)
		if err != nil {
			a.logger.WithError(err).WithField("url", url).Warn("pokeapi request failed")
			continue
		}
		ok := func() bool {
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				a.logger.WithField("url", url).WithField("status", resp.StatusCode).
					Warn("pokeapi returned non-200")
				return false
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				a.logger.WithError(err).WithField("url", url).Warn("pokeapi payload decode failed")
				return false
			}
			return true
		}()
		if ok {
			return true
		}
	}
	return false
}

// bestSprite picks the highest quality image reference available.
func bestSprite(s *model.PokeAPISprites) string {
	if v := s.Other.OfficialArtwork.FrontDefault; v != "" {
		return v
	}
	if v := s.Other.DreamWorld.FrontDefault; v != "" {
		return v
	}
	if v := s.Other.Home.FrontDefault; v != "" {
		return v
	}
	return s.FrontDefault
}

// extractStats maps the named stat entries onto the six base attributes.
func extractStats(raw *model.PokeAPIPokemon) *model.ExternalStats {
	if len(raw.Stats) == 0 {
		return nil
	}
	stats := &model.ExternalStats{}
	for _, s := range raw.Stats {
		switch s.Stat.Name {
		case "hp":
			stats.HP = s.BaseStat
		case "attack":
			stats.Attack = s.BaseStat
		case "defense":
			stats.Defense = s.BaseStat
		case "speed":
			stats.Speed = s.BaseStat
		case "special-attack":
			stats.SpecialAttack = s.BaseStat
		case "special-defense":
			stats.SpecialDefense = s.BaseStat
		}
	}
	return stats
}

// localizedName prefers pt-BR, falling back to the English display name.
func localizedName(species *model.PokeAPISpecies) string {
	for _, n := range species.Names {
		if n.Language.Name == "pt-BR" {
			return n.Name
		}
	}
	for _, n := range species.Names {
		if n.Language.Name == "en" {
			return n.Name
		}
	}
	return ""
}

// flavorTexts extracts the first pt-BR and en flavor entries, cleaned of the
// source's embedded line and page breaks.
func flavorTexts(species *model.PokeAPISpecies) (pt, en string) {
	for _, e := range species.FlavorTextEntries {
		text := cleanFlavorText(e.FlavorText)
		if pt == "" && e.Language.Name == "pt-BR" {
			pt = text
		}
		if en == "" && e.Language.Name == "en" {
			en = text
		}
		if pt != "" && en != "" {
			break
		}
	}
	return pt, en
}

func cleanFlavorText(raw string) string {
	replaced := strings.NewReplacer("\n", " ", "\f", " ").Replace(raw)
	return strings.TrimSpace(replaced)
}

// trailingID pulls the numeric id out of a resource URL such as
// ".../pokemon/25/".
func trailingID(resourceURL string) string {
	parts := strings.Split(strings.TrimSuffix(resourceURL, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
