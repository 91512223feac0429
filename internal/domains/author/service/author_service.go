package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/shared/pagination"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Msg("author validation failed")
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Str("name", created.FullName()).Msg("author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, p pagination.Params) ([]author.Author, int64, error) {
	return s.repo.GetAll(ctx, p)
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	return s.repo.Update(ctx, &author.Author{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountArticles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return author.ErrAuthorHasArticles
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("author deleted")
	return nil
}

func (s *authorService) Search(ctx context.Context, term string, p pagination.Params) ([]author.Author, int64, error) {
	p.Search = term
	return s.repo.GetAll(ctx, p)
}

func (s *authorService) GetAllWithArticleCount(ctx context.Context) ([]author.AuthorWithCount, error) {
	return s.repo.GetAllWithArticleCount(ctx)
}
