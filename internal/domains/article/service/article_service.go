package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/domains/region"
)

// articleService coordinates the three repositories: articles own the
// data, authors and regions are consulted for referential checks.
type articleService struct {
	articles article.Repository
	authors  author.Repository
	regions  region.Repository
}

func NewArticleService(articles article.Repository, authors author.Repository, regions region.Repository) article.Service {
	return &articleService{
		articles: articles,
		authors:  authors,
		regions:  regions,
	}
}

func (s *articleService) Create(ctx context.Context, req *article.SaveArticleRequest) (*article.Article, error) {
	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("article validation failed")
		return nil, err
	}

	created, err := s.articles.CreateWithRegions(ctx, &article.Article{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}, req.RegionIDs)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("article_id", created.ID).Str("title", created.Title).Msg("article created")
	return created, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*article.Article, error) {
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) GetAll(ctx context.Context, f article.ListFilter) ([]article.Article, int64, error) {
	if err := s.validateFilter(ctx, f); err != nil {
		return nil, 0, err
	}
	return s.articles.GetAll(ctx, f)
}

func (s *articleService) Update(ctx context.Context, id int64, req *article.SaveArticleRequest) (*article.Article, error) {
	exists, err := s.articles.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, article.ErrArticleNotFound
	}

	req.Normalize()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	return s.articles.UpdateWithRegions(ctx, &article.Article{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}, req.RegionIDs)
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("article_id", id).Msg("article deleted")
	return nil
}

func (s *articleService) Search(ctx context.Context, term string, f article.ListFilter) ([]article.Article, int64, error) {
	f.Search = term
	return s.GetAll(ctx, f)
}

// validate runs field rules plus the referential checks on author_id
// and region_ids. Reference failures are reported as field-level
// validation errors so the client can surface them inline.
func (s *articleService) validate(ctx context.Context, req *article.SaveArticleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	errs := validation.Errors{}

	if req.AuthorID != nil {
		exists, err := s.authors.ExistsByID(ctx, *req.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			errs["author_id"] = fmt.Errorf("Author with ID %d does not exist", *req.AuthorID)
		}
	}

	if len(req.RegionIDs) > 0 {
		missing, err := s.regions.MissingIDs(ctx, req.RegionIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			errs["region_ids"] = fmt.Errorf("Region with ID %d does not exist", missing[0])
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *articleService) validateFilter(ctx context.Context, f article.ListFilter) error {
	errs := validation.Errors{}

	if f.AuthorID != nil {
		exists, err := s.authors.ExistsByID(ctx, *f.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			errs["author_id"] = fmt.Errorf("Author with ID %d does not exist", *f.AuthorID)
		}
	}

	if f.RegionID != nil {
		missing, err := s.regions.MissingIDs(ctx, []int64{*f.RegionID})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			errs["region_id"] = fmt.Errorf("Region with ID %d does not exist", *f.RegionID)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
