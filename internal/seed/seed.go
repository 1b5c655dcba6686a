package seed

import (
	"context"
	"log"

	"reentrybuddy/internal/repository"
)

// Seeder populates the record store with demo users and histories.
type Seeder struct {
	factory *Factory
}

// NewSeeder creates a Seeder over the given record store.
func NewSeeder(store repository.RecordStore) *Seeder {
	return &Seeder{factory: NewFactory(store)}
}

// SeedDemo creates `users` demo users, each with up to `days` of check-in
// history. Every third user gets a broken streak.
func (s *Seeder) SeedDemo(ctx context.Context, users, days int) error {
	for i := 0; i < users; i++ {
		user, err := s.factory.CreateUser(ctx)
		if err != nil {
			return err
		}

		gapEvery := 0
		if i%3 == 2 {
			gapEvery = 4
		}

		created, err := s.factory.SeedHistory(ctx, user, days, gapEvery)
		if err != nil {
			return err
		}

		log.Printf("Seeded %s %s with %d check-ins", user.FirstName, user.LastName, created)
	}

	return nil
}
