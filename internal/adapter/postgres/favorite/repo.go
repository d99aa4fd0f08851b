// Package favorite implements the favorites repository using PostgreSQL.
// Results are stored verbatim as jsonb; tags are a text[] column.
package favorite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vocabvault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabvault-backend/internal/domain"
)

const table = "favorites"

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	columns   = []string{"id", "client_id", "result", "tags", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorites repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a favorite owned by clientID.
// Returns domain.ErrNotFound if it does not exist or belongs to another client.
func (r *Repo) GetByID(ctx context.Context, clientID, id uuid.UUID) (*domain.Favorite, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "client_id": clientID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get favorite: %w", err)
	}

	f, err := scanFavorite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", id)
	}
	return f, nil
}

// GetByHeadword returns the favorite a client saved for a headword from a
// given source. headwordNormalized must already be normalized.
func (r *Repo) GetByHeadword(ctx context.Context, clientID uuid.UUID, headwordNormalized string, source domain.Source) (*domain.Favorite, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"client_id":           clientID,
			"headword_normalized": headwordNormalized,
			"source":              source.String(),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get favorite by headword: %w", err)
	}

	f, err := scanFavorite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", headwordNormalized)
	}
	return f, nil
}

// List returns the client's favorites carrying every tag in filter.Tags,
// newest first, together with the total number of matches.
func (r *Repo) List(ctx context.Context, clientID uuid.UUID, filter domain.FavoriteFilter) ([]domain.Favorite, int, error) {
	where := squirrel.And{squirrel.Eq{"client_id": clientID}}
	if len(filter.Tags) > 0 {
		where = append(where, squirrel.Expr("tags @> ?", filter.Tags))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count favorites: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count favorites: %w", err)
	}

	sb := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sb = sb.Offset(uint64(filter.Offset))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list favorites: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0)
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new favorite and returns the persisted row.
// Returns domain.ErrAlreadyExists if the client already saved the same
// headword from the same source.
func (r *Repo) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	raw, err := json.Marshal(f.Result)
	if err != nil {
		return nil, fmt.Errorf("encode favorite result: %w", err)
	}

	query, args, err := psql.Insert(table).
		Columns("id", "client_id", "headword", "headword_normalized", "source", "result", "tags", "created_at", "updated_at").
		Values(
			f.ID,
			f.ClientID,
			f.Result.Headword,
			domain.NormalizeText(f.Result.Headword),
			f.Result.Source.String(),
			raw,
			nonNilTags(f.Tags),
			f.CreatedAt,
			f.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert favorite: %w", err)
	}

	created, err := scanFavorite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", f.ID)
	}
	return created, nil
}

// UpdateTags replaces the tags of a favorite owned by clientID.
func (r *Repo) UpdateTags(ctx context.Context, clientID, id uuid.UUID, tags []string) (*domain.Favorite, error) {
	query, args, err := psql.Update(table).
		Set("tags", nonNilTags(tags)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "client_id": clientID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update favorite tags: %w", err)
	}

	f, err := scanFavorite(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", id)
	}
	return f, nil
}

// Delete removes a favorite. Returns domain.ErrNotFound if it does not exist
// or belongs to another client.
func (r *Repo) Delete(ctx context.Context, clientID, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "client_id": clientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete favorite: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "favorite", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanFavorite(row pgx.Row) (*domain.Favorite, error) {
	var (
		f   domain.Favorite
		raw []byte
	)
	if err := row.Scan(&f.ID, &f.ClientID, &raw, &f.Tags, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &f.Result); err != nil {
		return nil, fmt.Errorf("decode favorite result: %w", err)
	}
	f.Tags = nonNilTags(f.Tags)
	return &f, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
