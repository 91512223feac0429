package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/region"
	"newsroom-backend/internal/shared/pagination"
)

type fakeRegionRepo struct {
	regions map[int64]region.Region
	nextID  int64
	linked  map[int64]bool // ids still referenced by articles
}

func newFakeRegionRepo() *fakeRegionRepo {
	return &fakeRegionRepo{
		regions: make(map[int64]region.Region),
		nextID:  1,
		linked:  make(map[int64]bool),
	}
}

func (r *fakeRegionRepo) Create(_ context.Context, reg *region.Region) (*region.Region, error) {
	for _, existing := range r.regions {
		if existing.Code == reg.Code {
			return nil, region.ErrDuplicateCode
		}
	}
	reg.ID = r.nextID
	r.nextID++
	r.regions[reg.ID] = *reg
	out := *reg
	return &out, nil
}

func (r *fakeRegionRepo) GetByID(_ context.Context, id int64) (*region.Region, error) {
	reg, ok := r.regions[id]
	if !ok {
		return nil, region.ErrRegionNotFound
	}
	return &reg, nil
}

func (r *fakeRegionRepo) GetAll(_ context.Context, _ pagination.Params) ([]region.Region, int64, error) {
	out := make([]region.Region, 0, len(r.regions))
	for _, reg := range r.regions {
		out = append(out, reg)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRegionRepo) Update(_ context.Context, reg *region.Region) (*region.Region, error) {
	if _, ok := r.regions[reg.ID]; !ok {
		return nil, region.ErrRegionNotFound
	}
	r.regions[reg.ID] = *reg
	out := *reg
	return &out, nil
}

func (r *fakeRegionRepo) Delete(_ context.Context, id int64) error {
	if r.linked[id] {
		return region.ErrRegionHasLinks
	}
	if _, ok := r.regions[id]; !ok {
		return region.ErrRegionNotFound
	}
	delete(r.regions, id)
	return nil
}

func (r *fakeRegionRepo) MissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if _, ok := r.regions[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func TestCreateUppercasesCode(t *testing.T) {
	svc := NewRegionService(newFakeRegionRepo())

	created, err := svc.Create(context.Background(), &region.CreateRegionRequest{
		Code: "  eu ",
		Name: " Europe ",
	})

	require.NoError(t, err)
	assert.Equal(t, "EU", created.Code)
	assert.Equal(t, "Europe", created.Name)
}

func TestCreateRejectsMissingCode(t *testing.T) {
	svc := NewRegionService(newFakeRegionRepo())

	_, err := svc.Create(context.Background(), &region.CreateRegionRequest{Name: "Europe"})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Code is required", verrs["code"].Error())
}

func TestCreateRejectsLongCode(t *testing.T) {
	svc := NewRegionService(newFakeRegionRepo())

	_, err := svc.Create(context.Background(), &region.CreateRegionRequest{
		Code: "WAYTOOLONGCODE",
		Name: "Europe",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Code must be between 2 and 10 characters", verrs["code"].Error())
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := NewRegionService(newFakeRegionRepo())
	_, err := svc.Create(context.Background(), &region.CreateRegionRequest{Code: "EU", Name: "Europe"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &region.CreateRegionRequest{Code: "eu", Name: "Europe again"})

	assert.ErrorIs(t, err, region.ErrDuplicateCode)
	assert.Equal(t, 409, region.ToHTTPStatus(err))
}

func TestDeleteLinkedRegion(t *testing.T) {
	repo := newFakeRegionRepo()
	svc := NewRegionService(repo)
	created, err := svc.Create(context.Background(), &region.CreateRegionRequest{Code: "EU", Name: "Europe"})
	require.NoError(t, err)
	repo.linked[created.ID] = true

	err = svc.Delete(context.Background(), created.ID)

	assert.ErrorIs(t, err, region.ErrRegionHasLinks)
}

func TestUpdateUnknownRegion(t *testing.T) {
	svc := NewRegionService(newFakeRegionRepo())

	_, err := svc.Update(context.Background(), 42, &region.UpdateRegionRequest{Code: "EU", Name: "Europe"})

	assert.ErrorIs(t, err, region.ErrRegionNotFound)
}
