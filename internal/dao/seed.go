package dao

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

var (
	seedCities     = []string{"Amsterdam", "Antwerp", "Brussels", "Ghent", "Leuven", "Mechelen", "Bruges"}
	seedCategories = []string{"Culture", "Sport", "Education", "Leisure", "Mobility"}
	seedOfferTypes = []string{"DISCOUNT", "FREE", "VOUCHER"}
	seedGrantKinds = []string{"UITPAS", "SOCIAL", "STUDENT", "SENIOR"}
	seedStatuses   = []string{"ACTIVE", "ACTIVE", "ACTIVE", "EXPIRED", "DRAFT"}
	seedFirstNames = []string{"Lotte", "Ruben", "Emma", "Noah", "Louise", "Arthur", "Nora", "Jules"}
	seedLastNames  = []string{"Peeters", "Janssens", "Maes", "Jacobs", "Mertens", "Willems", "Claes"}
	seedTitles     = []string{"Museum pass", "Swimming pool", "Theatre night", "Bike rental", "Cinema", "Library card", "Zoo visit"}
)

// Seed fills empty tables with n deterministic demo records each.
func (s *Store) Seed(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	pick := func(vv []string) string { return vv[r.Intn(len(vv))] }

	seeders := []struct {
		table string
		cols  []string
		row   func(i int) []any
	}{
		{
			table: "offers",
			cols:  []string{"id", "title", "city", "category", "type", "status", "price", "created_at"},
			row: func(i int) []any {
				return []any{
					fmt.Sprintf("off-%04d", i+1),
					fmt.Sprintf("%s %d", pick(seedTitles), i+1),
					pick(seedCities), pick(seedCategories), pick(seedOfferTypes), pick(seedStatuses),
					r.Intn(5000),
					base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
				}
			},
		},
		{
			table: "grants",
			cols:  []string{"id", "name", "kind", "city", "status", "amount", "created_at"},
			row: func(i int) []any {
				kind := pick(seedGrantKinds)
				return []any{
					fmt.Sprintf("gr-%04d", i+1),
					fmt.Sprintf("%s grant %d", kind, i+1),
					kind, pick(seedCities), pick(seedStatuses),
					r.Intn(20000),
					base.Add(time.Duration(i) * 2 * time.Hour).Format(time.RFC3339),
				}
			},
		},
		{
			table: "passholders",
			cols:  []string{"id", "first_name", "last_name", "city", "grant_kind", "status", "created_at"},
			row: func(i int) []any {
				return []any{
					fmt.Sprintf("ph-%04d", i+1),
					pick(seedFirstNames), pick(seedLastNames),
					pick(seedCities), pick(seedGrantKinds), pick(seedStatuses),
					base.Add(time.Duration(i) * 3 * time.Hour).Format(time.RFC3339),
				}
			},
		},
	}

	for _, sd := range seeders {
		var count int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+sd.table).Scan(&count); err != nil {
			return fmt.Errorf("failed to inspect %s: %w", sd.table, err)
		}
		if count > 0 {
			continue
		}
		if err := s.seedTable(ctx, sd.table, sd.cols, n, sd.row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) seedTable(ctx context.Context, table string, cols []string, n int, row func(int) []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", table, err)
	}
	for i := 0; i < n; i++ {
		if err := s.insert(ctx, tx, table, cols, row(i)...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to seed %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", table, err)
	}
	return nil
}
