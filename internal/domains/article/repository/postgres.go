package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/domains/region"
	"newsroom-backend/pkg/database"
)

// postgresRepository implements article.Repository over pgxpool.
// Region sets are stored in the article_regions association table and
// replaced inside a transaction on every save.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

// Listing joins the author row directly; regions are fetched for the
// whole page in a second query to avoid row multiplication.
const listSelect = `
    SELECT ar.id, ar.title, ar.content, ar.author_id, ar.created_at, ar.updated_at,
           au.id, au.first_name, au.last_name, au.created_at, au.updated_at
    FROM articles ar
    LEFT JOIN authors au ON au.id = ar.author_id
`

func (r *postgresRepository) GetAll(ctx context.Context, f article.ListFilter) ([]article.Article, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(listSelect)
	queryBuilder.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if f.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (ar.title ILIKE $%d OR ar.content ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+f.Search+"%")
		argPos++
	}
	if f.AuthorID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND ar.author_id = $%d", argPos))
		args = append(args, *f.AuthorID)
		argPos++
	}
	if f.RegionID != nil {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM article_regions x WHERE x.article_id = ar.id AND x.region_id = $%d)", argPos))
		args = append(args, *f.RegionID)
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY ar.id")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, f.Limit, f.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		a, err := scanArticleWithAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating articles: %w", err)
	}

	if err := r.loadRegions(ctx, articles); err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *postgresRepository) count(ctx context.Context, f article.ListFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM articles ar WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if f.Search != "" {
		query += fmt.Sprintf(" AND (ar.title ILIKE $%d OR ar.content ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+f.Search+"%")
		argPos++
	}
	if f.AuthorID != nil {
		query += fmt.Sprintf(" AND ar.author_id = $%d", argPos)
		args = append(args, *f.AuthorID)
		argPos++
	}
	if f.RegionID != nil {
		query += fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM article_regions x WHERE x.article_id = ar.id AND x.region_id = $%d)", argPos)
		args = append(args, *f.RegionID)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*article.Article, error) {
	row := r.pool.QueryRow(ctx, listSelect+" WHERE ar.id = $1", id)

	a, err := scanArticleWithAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, article.ErrArticleNotFound
		}
		return nil, err
	}

	articles := []article.Article{*a}
	if err := r.loadRegions(ctx, articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

func (r *postgresRepository) CreateWithRegions(ctx context.Context, a *article.Article, regionIDs []int64) (*article.Article, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var articleID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO articles (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`,
			a.Title, a.Content, a.AuthorID,
		).Scan(&articleID)
		if err != nil {
			return 0, fmt.Errorf("failed to create article: %w", err)
		}

		if err := insertRegionLinks(ctx, tx, articleID, regionIDs); err != nil {
			return 0, err
		}
		return articleID, nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) UpdateWithRegions(ctx context.Context, a *article.Article, regionIDs []int64) (*article.Article, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE articles SET title = $1, content = $2, author_id = $3, updated_at = NOW() WHERE id = $4`,
			a.Title, a.Content, a.AuthorID, a.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return article.ErrArticleNotFound
		}

		// Full replacement of the region set.
		if _, err := tx.Exec(ctx, `DELETE FROM article_regions WHERE article_id = $1`, a.ID); err != nil {
			return fmt.Errorf("failed to clear article regions: %w", err)
		}
		return insertRegionLinks(ctx, tx, a.ID, regionIDs)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, a.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return article.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return exists, nil
}

func insertRegionLinks(ctx context.Context, tx pgx.Tx, articleID int64, regionIDs []int64) error {
	for _, regionID := range regionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO article_regions (article_id, region_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			articleID, regionID,
		)
		if err != nil {
			return fmt.Errorf("failed to link region %d: %w", regionID, err)
		}
	}
	return nil
}

// loadRegions fetches the region sets for a page of articles in one
// query and attaches them in order. Every article ends up with a
// non-nil (possibly empty) Regions slice.
func (r *postgresRepository) loadRegions(ctx context.Context, articles []article.Article) error {
	for i := range articles {
		articles[i].Regions = []region.Region{}
	}
	if len(articles) == 0 {
		return nil
	}

	ids := make([]int64, len(articles))
	index := make(map[int64]int, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
		index[a.ID] = i
	}

	rows, err := r.pool.Query(ctx, `
        SELECT x.article_id, r.id, r.code, r.name, r.created_at, r.updated_at
        FROM article_regions x
        JOIN regions r ON r.id = x.region_id
        WHERE x.article_id = ANY($1)
        ORDER BY r.id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query article regions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var rg region.Region
		if err := rows.Scan(&articleID, &rg.ID, &rg.Code, &rg.Name, &rg.CreatedAt, &rg.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan article region: %w", err)
		}
		i := index[articleID]
		articles[i].Regions = append(articles[i].Regions, rg)
	}
	return rows.Err()
}

func scanArticleWithAuthor(row pgx.Row) (*article.Article, error) {
	var a article.Article
	var au author.Author
	var authorID *int64
	var firstName, lastName *string
	var createdAt, updatedAt *time.Time

	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt,
		&authorID, &firstName, &lastName, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		au.ID = *authorID
		au.FirstName = *firstName
		au.LastName = *lastName
		au.CreatedAt = *createdAt
		au.UpdatedAt = *updatedAt
		a.Author = &au
	}

	return &a, nil
}
