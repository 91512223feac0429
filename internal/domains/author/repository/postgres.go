package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/shared/pagination"
)

// postgresRepository implements author.Repository over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = "id, first_name, last_name, created_at, updated_at"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.FirstName, a.LastName))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, p pagination.Params) ([]author.Author, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + authorColumns + ` FROM authors WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if p.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR first_name || ' ' || last_name ILIKE $%d)",
			argPos, argPos, argPos))
		args = append(args, "%"+p.Search+"%")
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY id")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, p.Limit, p.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM authors WHERE 1=1`
	countArgs := []interface{}{}
	if p.Search != "" {
		countQuery += " AND (first_name ILIKE $1 OR last_name ILIKE $1 OR first_name || ' ' || last_name ILIKE $1)"
		countArgs = append(countArgs, "%"+p.Search+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasArticles
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountArticles(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE author_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles for author: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) GetAllWithArticleCount(ctx context.Context) ([]author.AuthorWithCount, error) {
	query := `
        SELECT a.id, a.first_name, a.last_name, a.created_at, a.updated_at,
               COUNT(ar.id) AS article_count
        FROM authors a
        LEFT JOIN articles ar ON ar.author_id = a.id
        GROUP BY a.id
        ORDER BY a.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors with counts: %w", err)
	}
	defer rows.Close()

	var result []author.AuthorWithCount
	for rows.Next() {
		var a author.AuthorWithCount
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.CreatedAt, &a.UpdatedAt, &a.ArticleCount); err != nil {
			return nil, fmt.Errorf("failed to scan author with count: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors with counts: %w", err)
	}

	return result, nil
}
