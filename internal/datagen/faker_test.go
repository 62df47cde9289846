//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker(1)
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFaker(seed)
	f2 := NewFaker(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
	if n1, n2 := f1.Name(), f2.Name(); n1 != n2 {
		t.Errorf("Same seed produced different names: %q != %q", n1, n2)
	}
}

func TestFakerStrings(t *testing.T) {
	f := NewFaker(2)
	if f.Name() == "" {
		t.Error("Name returned empty string")
	}
	if f.Company() == "" {
		t.Error("Company returned empty string")
	}
	if f.StreetName() == "" {
		t.Error("StreetName returned empty string")
	}
}

func TestFakerInt(t *testing.T) {
	f := NewFaker(3)
	for i := 0; i < 100; i++ {
		v := f.Int(10, 20)
		if v < 10 || v > 20 {
			t.Errorf("Int(10, 20) returned %d, out of range", v)
		}
	}
	if v := f.Int(5, 5); v != 5 {
		t.Errorf("Int(5, 5) returned %d", v)
	}
}

func TestFakerInt64(t *testing.T) {
	f := NewFaker(4)
	for i := 0; i < 100; i++ {
		v := f.Int64(7000000000, 9999999999)
		if v < 7000000000 || v > 9999999999 {
			t.Errorf("Int64 returned %d, out of range", v)
		}
	}
}

func TestFakerFloat64(t *testing.T) {
	f := NewFaker(5)
	for i := 0; i < 100; i++ {
		v := f.Float64(3.0, 5.0)
		if v < 3.0 || v > 5.0 {
			t.Errorf("Float64(3.0, 5.0) returned %f, out of range", v)
		}
	}
}

func TestFakerChance(t *testing.T) {
	f := NewFaker(6)
	for i := 0; i < 50; i++ {
		if f.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
	}
	hits := 0
	for i := 0; i < 1000; i++ {
		if f.Chance(0.9) {
			hits++
		}
	}
	if hits < 800 || hits > 980 {
		t.Errorf("Chance(0.9) hit %d/1000 times", hits)
	}
}

func TestFakerDigits(t *testing.T) {
	f := NewFaker(7)
	d := f.Digits(9)
	if len(d) != 9 {
		t.Fatalf("Digits(9) returned %q", d)
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			t.Errorf("Digits returned non-digit %q", d)
		}
	}
}

func TestFakerDateRange(t *testing.T) {
	f := NewFaker(8)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := f.DateRange(start, end)
		if d.Before(start) || d.After(end) {
			t.Errorf("DateRange returned %v, out of range", d)
		}
		if d.Nanosecond() != 0 {
			t.Errorf("DateRange returned sub-second time %v", d)
		}
	}

	if d := f.DateRange(end, start); !d.Equal(end) {
		t.Errorf("Inverted DateRange should return start, got %v", d)
	}
	if d := f.DateRange(start, start); !d.Equal(start) {
		t.Errorf("Empty DateRange should return start, got %v", d)
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker(9)
	items := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		item := Choose(f, items)
		found := false
		for _, v := range items {
			if v == item {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Choose returned %q, not in items", item)
		}
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker(10)
	var items []string
	if item := Choose(f, items); item != "" {
		t.Errorf("Choose on empty slice should return zero value, got %q", item)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFaker(11)
	items := []string{"never", "always"}
	weights := []int{0, 100}
	for i := 0; i < 50; i++ {
		if got := ChooseWeighted(f, items, weights); got != "always" {
			t.Fatalf("ChooseWeighted returned zero-weight item %q", got)
		}
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	f := NewFaker(12)
	if got := ChooseWeighted(f, []int{}, []int{}); got != 0 {
		t.Errorf("ChooseWeighted on empty slice returned %d", got)
	}
	if got := ChooseWeighted(f, []int{4, 5}, []int{0, 0}); got != 4 {
		t.Errorf("ChooseWeighted with zero total weight returned %d", got)
	}
}

func TestSample(t *testing.T) {
	f := NewFaker(13)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	original := append([]int(nil), items...)

	for n := 0; n <= len(items)+2; n++ {
		got := Sample(f, items, n)
		want := min(n, len(items))
		if len(got) != want {
			t.Fatalf("Sample(n=%d) returned %d items", n, len(got))
		}
		seen := make(map[int]bool)
		for _, v := range got {
			if seen[v] {
				t.Fatalf("Sample(n=%d) repeated %d: %v", n, v, got)
			}
			seen[v] = true
		}
	}

	for i := range items {
		if items[i] != original[i] {
			t.Fatalf("Sample modified its input: %v", items)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(4.26, 1); got != 4.3 {
		t.Errorf("Round(4.26, 1) = %v", got)
	}
	if got := Round(12.3456789, 6); got != 12.345679 {
		t.Errorf("Round(12.3456789, 6) = %v", got)
	}
}
