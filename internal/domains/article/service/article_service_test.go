package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/domains/region"
	"newsroom-backend/internal/shared/pagination"
)

// fakeArticleRepo is an in-memory article.Repository that records the
// region set of every save.
type fakeArticleRepo struct {
	articles   map[int64]article.Article
	regionSets map[int64][]int64
	nextID     int64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles:   make(map[int64]article.Article),
		regionSets: make(map[int64][]int64),
		nextID:     1,
	}
}

func (r *fakeArticleRepo) GetAll(_ context.Context, _ article.ListFilter) ([]article.Article, int64, error) {
	out := make([]article.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id int64) (*article.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, article.ErrArticleNotFound
	}
	return &a, nil
}

func (r *fakeArticleRepo) CreateWithRegions(_ context.Context, a *article.Article, regionIDs []int64) (*article.Article, error) {
	a.ID = r.nextID
	r.nextID++
	a.Regions = []region.Region{}
	r.articles[a.ID] = *a
	r.regionSets[a.ID] = regionIDs
	out := *a
	return &out, nil
}

func (r *fakeArticleRepo) UpdateWithRegions(_ context.Context, a *article.Article, regionIDs []int64) (*article.Article, error) {
	if _, ok := r.articles[a.ID]; !ok {
		return nil, article.ErrArticleNotFound
	}
	a.Regions = []region.Region{}
	r.articles[a.ID] = *a
	r.regionSets[a.ID] = regionIDs
	out := *a
	return &out, nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.articles[id]; !ok {
		return article.ErrArticleNotFound
	}
	delete(r.articles, id)
	delete(r.regionSets, id)
	return nil
}

func (r *fakeArticleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

// fakeAuthorRepo only answers the existence checks the article service
// makes; everything else is unused here.
type fakeAuthorRepo struct {
	ids map[int64]bool
}

func (r *fakeAuthorRepo) Create(context.Context, *author.Author) (*author.Author, error) {
	panic("not used")
}
func (r *fakeAuthorRepo) GetByID(context.Context, int64) (*author.Author, error) {
	panic("not used")
}
func (r *fakeAuthorRepo) GetAll(context.Context, pagination.Params) ([]author.Author, int64, error) {
	panic("not used")
}
func (r *fakeAuthorRepo) Update(context.Context, *author.Author) (*author.Author, error) {
	panic("not used")
}
func (r *fakeAuthorRepo) Delete(context.Context, int64) error { panic("not used") }
func (r *fakeAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}
func (r *fakeAuthorRepo) CountArticles(context.Context, int64) (int, error) { panic("not used") }
func (r *fakeAuthorRepo) GetAllWithArticleCount(context.Context) ([]author.AuthorWithCount, error) {
	panic("not used")
}

type fakeRegionRepo struct {
	ids map[int64]bool
}

func (r *fakeRegionRepo) Create(context.Context, *region.Region) (*region.Region, error) {
	panic("not used")
}
func (r *fakeRegionRepo) GetByID(context.Context, int64) (*region.Region, error) {
	panic("not used")
}
func (r *fakeRegionRepo) GetAll(context.Context, pagination.Params) ([]region.Region, int64, error) {
	panic("not used")
}
func (r *fakeRegionRepo) Update(context.Context, *region.Region) (*region.Region, error) {
	panic("not used")
}
func (r *fakeRegionRepo) Delete(context.Context, int64) error { panic("not used") }
func (r *fakeRegionRepo) MissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if !r.ids[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func newService(articles *fakeArticleRepo, authorIDs, regionIDs []int64) article.Service {
	authors := &fakeAuthorRepo{ids: make(map[int64]bool)}
	for _, id := range authorIDs {
		authors.ids[id] = true
	}
	regions := &fakeRegionRepo{ids: make(map[int64]bool)}
	for _, id := range regionIDs {
		regions.ids[id] = true
	}
	return NewArticleService(articles, authors, regions)
}

func TestCreateNormalizesNilRegionIDs(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, nil, nil)

	created, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:   "A proper title",
		Content: "long enough body",
	})

	require.NoError(t, err)
	saved, ok := repo.regionSets[created.ID]
	require.True(t, ok)
	assert.NotNil(t, saved)
	assert.Empty(t, saved)
	assert.Nil(t, created.AuthorID)
}

func TestCreateRejectsShortTitle(t *testing.T) {
	svc := newService(newFakeArticleRepo(), nil, nil)

	_, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:   "Hey",
		Content: "long enough body",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Title must be at least 5 characters", verrs["title"].Error())
}

func TestCreateRejectsUnknownAuthor(t *testing.T) {
	svc := newService(newFakeArticleRepo(), nil, nil)
	authorID := int64(7)

	_, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:    "A proper title",
		Content:  "long enough body",
		AuthorID: &authorID,
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Author with ID 7 does not exist", verrs["author_id"].Error())
}

func TestCreateRejectsUnknownRegion(t *testing.T) {
	svc := newService(newFakeArticleRepo(), nil, []int64{1})

	_, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:     "A proper title",
		Content:   "long enough body",
		RegionIDs: []int64{1, 9},
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Region with ID 9 does not exist", verrs["region_ids"].Error())
}

func TestCreateWithValidReferences(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, []int64{1}, []int64{2, 3})
	authorID := int64(1)

	created, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:     "A proper title",
		Content:   "long enough body",
		AuthorID:  &authorID,
		RegionIDs: []int64{2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, repo.regionSets[created.ID])
}

func TestUpdateReplacesRegionSet(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, nil, []int64{2, 3})
	created, err := svc.Create(context.Background(), &article.SaveArticleRequest{
		Title:     "A proper title",
		Content:   "long enough body",
		RegionIDs: []int64{2, 3},
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &article.SaveArticleRequest{
		Title:   "A proper title",
		Content: "long enough body",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.regionSets[created.ID])
}

func TestUpdateUnknownArticle(t *testing.T) {
	svc := newService(newFakeArticleRepo(), nil, nil)

	_, err := svc.Update(context.Background(), 42, &article.SaveArticleRequest{
		Title:   "A proper title",
		Content: "long enough body",
	})

	assert.ErrorIs(t, err, article.ErrArticleNotFound)
}

func TestGetAllRejectsUnknownAuthorFilter(t *testing.T) {
	svc := newService(newFakeArticleRepo(), nil, nil)
	authorID := int64(5)

	_, _, err := svc.GetAll(context.Background(), article.ListFilter{
		Page: 1, Limit: 20, AuthorID: &authorID,
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Author with ID 5 does not exist", verrs["author_id"].Error())
}
