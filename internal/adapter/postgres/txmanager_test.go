package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabvault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabvault-backend/internal/adapter/postgres/testhelper"
)

const insertFavorite = `INSERT INTO favorites (id, client_id, headword, headword_normalized, source, result)
	 VALUES ($1, $2, 'tx', 'tx', 'primary', '{}'::jsonb)`

// favoriteExists checks whether a favorite row with the given ID exists in the database.
func favoriteExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("favoriteExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertFavorite, id, uuid.New())
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !favoriteExists(t, pool, id) {
		t.Fatal("expected favorite to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, execErr := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertFavorite, id, uuid.New()); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if favoriteExists(t, pool, id) {
		t.Fatal("expected favorite NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if favoriteExists(t, pool, id) {
			t.Fatal("expected favorite NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertFavorite, id, uuid.New()); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("outer failure")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		inner := tm.RunInTx(ctx, func(ctx context.Context) error {
			_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertFavorite, id, uuid.New())
			return err
		})
		if inner != nil {
			return inner
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if favoriteExists(t, pool, id) {
		t.Fatal("expected inner insert to roll back with the outer transaction")
	}
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertFavorite, id, uuid.New()); err != nil {
			return err
		}

		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM favorites WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected favorite to be visible within the transaction")
		}
		if favoriteExists(t, pool, id) {
			t.Fatal("expected favorite to be invisible outside the transaction before commit")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !favoriteExists(t, pool, id) {
		t.Fatal("expected favorite to exist after committed transaction")
	}
}
