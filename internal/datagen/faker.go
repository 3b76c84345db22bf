// Package datagen generates synthetic raw source files for demos and
// load testing.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for
// reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// Street generates a random street address.
func (f *Faker) Street() string {
	return f.faker.Street()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// Int generates a random integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.Number(min, max)
}

// Date generates a random date between start and end.
func (f *Faker) Date(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// Element picks a random element from the slice.
func Element[T any](f *Faker, items []T) T {
	return items[f.Int(0, len(items)-1)]
}
