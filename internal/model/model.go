package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Trainer is a registered account owning a Pokémon collection.
// Username and e-mail are unique (case-insensitive lookups are done in the
// repository); the password is stored as an argon2id encoded hash, never raw.
type Trainer struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(128);not null"`
	Username     string    `gorm:"column:username;type:varchar(64);uniqueIndex;not null"`
	Email        string    `gorm:"column:email;type:varchar(128);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(256);not null" json:"-"`
	Phone        *string   `gorm:"column:phone;type:varchar(32)"`
	Active       bool      `gorm:"column:active;type:boolean;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamp;default:now()"`
}

// Pokemon is a collection entry: either catalog-only (no trainer) or owned.
// The (trainer_id, poke_api_id) pair is unique so a double-add of the same
// catalog entry fails at the storage layer instead of creating duplicates.
type Pokemon struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	PokeAPIID *int64         `gorm:"column:poke_api_id;type:bigint;uniqueIndex:uk_trainer_pokeapi"`
	TrainerID *uint64        `gorm:"column:trainer_id;type:bigint;uniqueIndex:uk_trainer_pokeapi;index"`
	NamePt    string         `gorm:"column:name_pt;type:varchar(128);not null"`
	NameEn    string         `gorm:"column:name_en;type:varchar(128)"`
	SpriteURL string         `gorm:"column:sprite_url;type:varchar(512)"`
	CurrentHP *int           `gorm:"column:current_hp;type:int"`
	MaxHP     *int           `gorm:"column:max_hp;type:int"`
	Level     int            `gorm:"column:level;type:int;default:1"`
	Abilities datatypes.JSON `gorm:"column:abilities;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamp;default:now()"`

	Trainer      *Trainer             `gorm:"foreignKey:TrainerID;constraint:OnDelete:CASCADE" json:"-"`
	Types        []Type               `gorm:"many2many:pokemon_types"`
	Stats        *PokemonStats        `gorm:"foreignKey:PokemonID"`
	Descriptions []PokemonDescription `gorm:"foreignKey:PokemonID"`
}

// Heal restores current HP to the maximum. A no-op when max HP is unset.
func (p *Pokemon) Heal() {
	if p.MaxHP == nil {
		return
	}
	hp := *p.MaxHP
	p.CurrentHP = &hp
}

// NeedsHealing reports whether current HP is below max HP.
// Entries with unset health fields never need healing.
func (p *Pokemon) NeedsHealing() bool {
	return p.CurrentHP != nil && p.MaxHP != nil && *p.CurrentHP < *p.MaxHP
}

// AbilityList decodes the stored ability array. Order is preserved.
func (p *Pokemon) AbilityList() []string {
	if len(p.Abilities) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(p.Abilities, &list); err != nil {
		return nil
	}
	return list
}

// Type is a bilingual category label (e.g. Fogo/fire). NamePt is canonical
// and unique; one row exists per concept regardless of input spelling.
type Type struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	NamePt string `gorm:"column:name_pt;type:varchar(64);uniqueIndex;not null"`
	NameEn string `gorm:"column:name_en;type:varchar(64);not null"`
}

// PokemonStats holds the six base attributes, one row per Pokémon.
type PokemonStats struct {
	ID             uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	PokemonID      uint64 `gorm:"column:pokemon_id;type:bigint;uniqueIndex;not null"`
	HP             int    `gorm:"column:hp;type:int;not null"`
	Attack         int    `gorm:"column:attack;type:int;not null"`
	Defense        int    `gorm:"column:defense;type:int;not null"`
	Speed          int    `gorm:"column:speed;type:int;not null"`
	SpecialAttack  int    `gorm:"column:special_attack;type:int;not null"`
	SpecialDefense int    `gorm:"column:special_defense;type:int;not null"`
}

// PokemonDescription is free-form flavor text in both languages.
type PokemonDescription struct {
	ID        uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	PokemonID uint64  `gorm:"column:pokemon_id;type:bigint;index;not null"`
	TextPt    *string `gorm:"column:text_pt;type:text"`
	TextEn    *string `gorm:"column:text_en;type:text"`
}

// Appointment is a scheduled visit for a trainer's own Pokémon. Ownership is
// validated at creation time only.
type Appointment struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	AppointmentUUID string    `gorm:"column:appointment_uuid;type:varchar(64);uniqueIndex;not null"`
	TrainerID       uint64    `gorm:"column:trainer_id;type:bigint;index;not null"`
	PokemonID       uint64    `gorm:"column:pokemon_id;type:bigint;not null"`
	Category        string    `gorm:"column:category;type:varchar(32);not null"`
	ScheduledAt     time.Time `gorm:"column:scheduled_at;type:timestamp;not null"`
	Notes           *string   `gorm:"column:notes;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt       time.Time `gorm:"column:updated_at;type:timestamp;default:now()"`
}

func (Trainer) TableName() string            { return "trainers" }
func (Pokemon) TableName() string            { return "pokemons" }
func (Type) TableName() string               { return "types" }
func (PokemonStats) TableName() string       { return "pokemon_stats" }
func (PokemonDescription) TableName() string { return "pokemon_descriptions" }
func (Appointment) TableName() string        { return "appointments" }
