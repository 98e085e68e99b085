package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tourze/raffle-core/internal/domain"
)

var (
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

// ensureMigrations applies migrations once for all tests in the package
func ensureMigrations(t *testing.T) {
	t.Helper()

	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	if migrationsApplied {
		return
	}

	ctx := context.Background()
	if err := applyMigrations(ctx, testPool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	migrationsApplied = true
}

// applyMigrations runs all migration files in order, stripping goose markers
// so the files can be executed directly
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := string(content)
		contentStr = strings.Replace(contentStr, "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}
		contentStr = strings.TrimSpace(contentStr)

		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// ---- Seed helpers ----

func seedActivity(t *testing.T, start, end time.Time, valid bool) int64 {
	t.Helper()

	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO raffle_activity (title, start_time, end_time, valid)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		"test activity", start, end, valid).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	return id
}

func seedPool(t *testing.T, activityID int64, sortNumber int) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := testPool.QueryRow(ctx, `
		INSERT INTO raffle_pool (name, sort_number) VALUES ($1, $2) RETURNING id`,
		"test pool", sortNumber).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed pool: %v", err)
	}

	_, err = testPool.Exec(ctx, `
		INSERT INTO raffle_activity_pool (activity_id, pool_id) VALUES ($1, $2)`,
		activityID, id)
	if err != nil {
		t.Fatalf("failed to link pool to activity: %v", err)
	}
	return id
}

type awardSeed struct {
	poolID      int64
	name        string
	probability int
	quantity    int
	dayLimit    *int
	sortNumber  int
	valid       bool
}

func seedAward(t *testing.T, s awardSeed) int64 {
	t.Helper()

	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO raffle_award (pool_id, name, probability, quantity, day_limit, sort_number, valid)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		s.poolID, s.name, s.probability, s.quantity, s.dayLimit, s.sortNumber, s.valid).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed award: %v", err)
	}
	return id
}

func seedChance(t *testing.T, activityID int64, userID uuid.UUID, status domain.ChanceStatus) *domain.Chance {
	t.Helper()

	repo := NewRaffleRepository(testPool)
	chance := &domain.Chance{
		ActivityID: activityID,
		UserID:     userID,
		Status:     domain.ChanceStatusInit,
	}
	if err := repo.CreateChance(context.Background(), chance); err != nil {
		t.Fatalf("failed to seed chance: %v", err)
	}

	if status != domain.ChanceStatusInit {
		chance.Status = status
		if err := repo.SaveChance(context.Background(), chance); err != nil {
			t.Fatalf("failed to move seeded chance to %s: %v", status, err)
		}
	}
	return chance
}

func intPtr(v int) *int {
	return &v
}
