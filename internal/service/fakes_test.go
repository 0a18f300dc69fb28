package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"CentroPokemon/internal/model"
	"CentroPokemon/internal/repository"

	"github.com/sirupsen/logrus"
)

// In-memory repository fakes used by the service tests.

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeTrainerRepo struct {
	seq      uint64
	trainers map[uint64]*model.Trainer
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[uint64]*model.Trainer)}
}

func (f *fakeTrainerRepo) Create(_ context.Context, t *model.Trainer) error {
	for _, existing := range f.trainers {
		if strings.EqualFold(existing.Username, t.Username) || strings.EqualFold(existing.Email, t.Email) {
			return repository.ErrDuplicateKey
		}
	}
	f.seq++
	t.ID = f.seq
	f.trainers[t.ID] = t
	return nil
}

func (f *fakeTrainerRepo) FindByID(_ context.Context, id uint64) (*model.Trainer, error) {
	return f.trainers[id], nil
}

func (f *fakeTrainerRepo) FindByUsername(_ context.Context, username string) (*model.Trainer, error) {
	for _, t := range f.trainers {
		if strings.EqualFold(t.Username, username) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTrainerRepo) FindByEmail(_ context.Context, email string) (*model.Trainer, error) {
	for _, t := range f.trainers {
		if strings.EqualFold(t.Email, email) {
			return t, nil
		}
	}
	return nil, nil
}

type fakeTypeRepo struct {
	seq   uint64
	types []*model.Type
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{}
}

func (f *fakeTypeRepo) Create(_ context.Context, t *model.Type) error {
	for _, existing := range f.types {
		if strings.EqualFold(existing.NamePt, t.NamePt) {
			return repository.ErrDuplicateKey
		}
	}
	f.seq++
	t.ID = f.seq
	f.types = append(f.types, t)
	return nil
}

func (f *fakeTypeRepo) FindByNamePt(_ context.Context, name string) (*model.Type, error) {
	for _, t := range f.types {
		if strings.EqualFold(t.NamePt, name) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTypeRepo) FindByNameEn(_ context.Context, name string) (*model.Type, error) {
	for _, t := range f.types {
		if strings.EqualFold(t.NameEn, name) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTypeRepo) List(_ context.Context) ([]*model.Type, error) {
	return f.types, nil
}

type fakePokemonRepo struct {
	seq      uint64
	pokemons map[uint64]*model.Pokemon
}

func newFakePokemonRepo() *fakePokemonRepo {
	return &fakePokemonRepo{pokemons: make(map[uint64]*model.Pokemon)}
}

func (f *fakePokemonRepo) Create(_ context.Context, p *model.Pokemon) error {
	if p.TrainerID != nil && p.PokeAPIID != nil {
		for _, existing := range f.pokemons {
			if existing.TrainerID != nil && existing.PokeAPIID != nil &&
				*existing.TrainerID == *p.TrainerID && *existing.PokeAPIID == *p.PokeAPIID {
				return repository.ErrDuplicateKey
			}
		}
	}
	f.seq++
	p.ID = f.seq
	f.pokemons[p.ID] = p
	return nil
}

func (f *fakePokemonRepo) Save(_ context.Context, p *model.Pokemon) error {
	if p.ID == 0 {
		f.seq++
		p.ID = f.seq
	}
	f.pokemons[p.ID] = p
	return nil
}

func (f *fakePokemonRepo) SaveAll(_ context.Context, list []*model.Pokemon) error {
	for _, p := range list {
		f.pokemons[p.ID] = p
	}
	return nil
}

func (f *fakePokemonRepo) Delete(_ context.Context, p *model.Pokemon) error {
	delete(f.pokemons, p.ID)
	return nil
}

func (f *fakePokemonRepo) ReplaceTypes(_ context.Context, p *model.Pokemon, types []model.Type) error {
	p.Types = types
	f.pokemons[p.ID] = p
	return nil
}

func (f *fakePokemonRepo) FindByIDAndTrainer(_ context.Context, id, trainerID uint64) (*model.Pokemon, error) {
	p := f.pokemons[id]
	if p == nil || p.TrainerID == nil || *p.TrainerID != trainerID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePokemonRepo) FindByTrainer(_ context.Context, trainerID uint64) ([]*model.Pokemon, error) {
	var list []*model.Pokemon
	for _, p := range f.pokemons {
		if p.TrainerID != nil && *p.TrainerID == trainerID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakePokemonRepo) FindByTrainerAndPokeAPIID(_ context.Context, trainerID uint64, pokeAPIID int64) (*model.Pokemon, error) {
	for _, p := range f.pokemons {
		if p.TrainerID != nil && *p.TrainerID == trainerID &&
			p.PokeAPIID != nil && *p.PokeAPIID == pokeAPIID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePokemonRepo) FindByPokeAPIID(_ context.Context, pokeAPIID int64) (*model.Pokemon, error) {
	for _, p := range f.pokemons {
		if p.TrainerID == nil && p.PokeAPIID != nil && *p.PokeAPIID == pokeAPIID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePokemonRepo) FindByNameEn(_ context.Context, name string) (*model.Pokemon, error) {
	for _, p := range f.pokemons {
		if p.TrainerID == nil && strings.EqualFold(p.NameEn, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePokemonRepo) FindByNamePt(_ context.Context, name string) (*model.Pokemon, error) {
	for _, p := range f.pokemons {
		if p.TrainerID == nil && strings.EqualFold(p.NamePt, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePokemonRepo) CountByTrainer(_ context.Context, trainerID uint64) (int64, error) {
	var count int64
	for _, p := range f.pokemons {
		if p.TrainerID != nil && *p.TrainerID == trainerID {
			count++
		}
	}
	return count, nil
}

func (f *fakePokemonRepo) ListCatalogStalest(_ context.Context, limit int) ([]*model.Pokemon, error) {
	var list []*model.Pokemon
	for _, p := range f.pokemons {
		if p.TrainerID == nil && p.PokeAPIID != nil {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeAppointmentRepo struct {
	seq          uint64
	appointments []*model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	f.seq++
	a.ID = f.seq
	f.appointments = append(f.appointments, a)
	return nil
}

func (f *fakeAppointmentRepo) ListByTrainer(_ context.Context, trainerID uint64) ([]*model.Appointment, error) {
	var list []*model.Appointment
	for _, a := range f.appointments {
		if a.TrainerID == trainerID {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ScheduledAt.Before(list[j].ScheduledAt) })
	return list, nil
}

// compile-time interface checks
var (
	_ repository.TrainerRepository     = (*fakeTrainerRepo)(nil)
	_ repository.TypeRepository        = (*fakeTypeRepo)(nil)
	_ repository.PokemonRepository     = (*fakePokemonRepo)(nil)
	_ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)
)
