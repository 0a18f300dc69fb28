package model

// ExternalPokemon is the normalized record produced by the external data
// adapter. Any fetch failure collapses to an absent record before this shape
// reaches the services.
type ExternalPokemon struct {
	PokeAPIID     int64
	NameEn        string
	NamePt        string // empty when the source has no localized name
	SpriteURL     string
	TypeCodes     []string // raw source codes, e.g. "fire"
	Abilities     []string // ordered as listed by the source
	BaseStats     *ExternalStats
	DescriptionPt string
	DescriptionEn string
}

// ExternalStats carries the six base attributes from the source.
type ExternalStats struct {
	HP             int
	Attack         int
	Defense        int
	Speed          int
	SpecialAttack  int
	SpecialDefense int
}

// ===== Raw PokeAPI payloads (decode targets only) =====

// PokeAPIPokemon mirrors GET /pokemon/{name-or-id}.
type PokeAPIPokemon struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
		Slot int `json:"slot"`
	} `json:"abilities"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites PokeAPISprites `json:"sprites"`
}

// PokeAPISprites mirrors the sprites block; only the slots we pick from.
type PokeAPISprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
		DreamWorld struct {
			FrontDefault string `json:"front_default"`
		} `json:"dream_world"`
		Home struct {
			FrontDefault string `json:"front_default"`
		} `json:"home"`
	} `json:"other"`
}

// PokeAPISpecies mirrors GET /pokemon-species/{id}.
type PokeAPISpecies struct {
	Names []struct {
		Name     string `json:"name"`
		Language struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"names"`
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

// PokeAPITypeRoster mirrors GET /type/{name}, reduced to the member list.
type PokeAPITypeRoster struct {
	Pokemon []struct {
		Pokemon struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"pokemon"`
	} `json:"pokemon"`
}
