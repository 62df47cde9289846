//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit. Every value a
// generator draws comes from one Faker, so a seed fixes the whole dataset.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a specific seed for reproducibility.
func NewFaker(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// StreetName generates a random street name.
func (f *Faker) StreetName() string {
	return f.faker.StreetName()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	if max <= min {
		return min
	}
	return f.faker.IntRange(min, max)
}

// Int64 generates a random int64 between min and max (inclusive).
func (f *Faker) Int64(min, max int64) int64 {
	return int64(f.Int(int(min), int(max)))
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.Float64(0, 1) < p
}

// Digits generates a random string of digits of length n.
func (f *Faker) Digits(n int) string {
	return f.faker.DigitN(uint(n))
}

// DateRange returns a time between start and end, truncated to whole
// seconds. The result is never before start.
func (f *Faker) DateRange(start, end time.Time) time.Time {
	start = start.Truncate(time.Second)
	if !end.After(start) {
		return start
	}
	t := f.faker.DateRange(start, end).UTC().Truncate(time.Second)
	if t.Before(start) {
		return start
	}
	return t
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return items[0]
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}

// Sample returns n distinct elements of items in random order. n is capped
// at len(items); items itself is not modified.
func Sample[T any](f *Faker, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := f.Int(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
