package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/region"
	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/pkg/cache"
)

// postgresRepository implements region.Repository over pgxpool with a
// Redis read-through cache. Regions change rarely, so single-region
// lookups and the unfiltered first page are cached; every mutation
// invalidates the whole region keyspace.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) region.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

const (
	regionCacheKeyPrefix = "region:"
	regionListCacheKey   = "regions:list:default"
	cacheTTL             = 15 * time.Minute
)

const regionColumns = "id, code, name, created_at, updated_at"

func scanRegion(row pgx.Row) (*region.Region, error) {
	var r region.Region
	err := row.Scan(&r.ID, &r.Code, &r.Name, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *postgresRepository) Create(ctx context.Context, in *region.Region) (*region.Region, error) {
	query := `
        INSERT INTO regions (code, name)
        VALUES ($1, $2)
        RETURNING ` + regionColumns

	created, err := scanRegion(r.pool.QueryRow(ctx, query, in.Code, in.Name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, region.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create region: %w", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*region.Region, error) {
	cacheKey := fmt.Sprintf("%s%d", regionCacheKeyPrefix, id)

	var cached region.Region
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + regionColumns + ` FROM regions WHERE id = $1`

	rg, err := scanRegion(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, region.ErrRegionNotFound
		}
		return nil, fmt.Errorf("failed to get region by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, rg, cacheTTL)
	return rg, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p pagination.Params) ([]region.Region, int64, error) {
	// Only the common case is cached: first page, default size, no search.
	cacheable := p.Search == "" && p.Page == pagination.DefaultPage && p.Limit == pagination.DefaultLimit

	type cachedList struct {
		Regions []region.Region `json:"regions"`
		Total   int64           `json:"total"`
	}

	if cacheable {
		var cl cachedList
		if found, err := r.cache.Get(ctx, regionListCacheKey, &cl); err == nil && found {
			return cl.Regions, cl.Total, nil
		}
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + regionColumns + ` FROM regions WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if p.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (code ILIKE $%d OR name ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+p.Search+"%")
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY code")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, p.Limit, p.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []region.Region
	for rows.Next() {
		var rg region.Region
		if err := rows.Scan(&rg.ID, &rg.Code, &rg.Name, &rg.CreatedAt, &rg.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, rg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating regions: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM regions WHERE 1=1`
	countArgs := []interface{}{}
	if p.Search != "" {
		countQuery += " AND (code ILIKE $1 OR name ILIKE $1)"
		countArgs = append(countArgs, "%"+p.Search+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count regions: %w", err)
	}

	if cacheable {
		_ = r.cache.Set(ctx, regionListCacheKey, cachedList{Regions: regions, Total: total}, cacheTTL)
	}

	return regions, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, in *region.Region) (*region.Region, error) {
	query := `
        UPDATE regions
        SET code = $1, name = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + regionColumns

	updated, err := scanRegion(r.pool.QueryRow(ctx, query, in.Code, in.Name, in.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, region.ErrRegionNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, region.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to update region: %w", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return region.ErrRegionHasLinks
		}
		return fmt.Errorf("failed to delete region: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return region.ErrRegionNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM regions WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check region ids: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan region id: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating region ids: %w", err)
	}

	var missing []int64
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// invalidate drops every cached region entry. Cache failures are not
// fatal: the next read repopulates from the database.
func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, regionCacheKeyPrefix+"*")
	_ = r.cache.Delete(ctx, regionListCacheKey)
}
