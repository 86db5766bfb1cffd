package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental/config"
	otelMocks "rental/infras/otel/mocks"
	pgMocks "rental/infras/postgres/mocks"
	s3Mocks "rental/infras/s3/mocks"
	propertyMocks "rental/internal/domains/property/mocks"
	"rental/internal/domains/property/model"
	"rental/internal/domains/property/model/dto"
	"rental/internal/domains/property/service"
	cacheMocks "rental/shared/cache/mocks"
	gDto "rental/shared/dto"
	"rental/shared/failure"
)

type fixture struct {
	repo       *propertyMocks.MockProperty
	transactor *pgMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
	s3         *s3Mocks.MockS3
	svc        service.Property
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       propertyMocks.NewMockProperty(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		s3:         s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.transactor, cfg, f.cache, otelMocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
}

func ptr[T any](v T) *T {
	return &v
}

func houseRequest() dto.SavePropertyRequest {
	return dto.SavePropertyRequest{
		Type:         "house",
		Street:       "12 Pine St",
		City:         "Chicago",
		State:        "IL",
		Price:        ptr(decimal.RequireFromString("1500.00")),
		Availability: true,
		Rooms:        ptr(3),
	}
}

func TestPropertyService_Load(t *testing.T) {
	t.Run("returns the subtype matching the type", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: 4, Type: model.TypeApartment, Street: "4 Oak", City: "Austin", Price: decimal.RequireFromString("900")}, nil)
		f.repo.EXPECT().GetSubtype(gomock.Any(), int64(4), model.TypeApartment).
			Return(model.Apartment{PropertyID: 4, Rooms: 2, BuildingType: "high-rise"}, nil)
		f.repo.EXPECT().GetNeighborhood(gomock.Any(), int64(4)).Return(nil, nil)

		res, err := f.svc.Load(context.Background(), 4)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "apartment", res.Property.Type)
		assert.Equal(t, "apartment", res.Subtype.Type)
		assert.Equal(t, 2, *res.Subtype.Rooms)
		assert.Equal(t, "high-rise", *res.Subtype.BuildingType)
		assert.Nil(t, res.Subtype.BusinessTypes)
		assert.Equal(t, "900.00", res.Property.Price)
		assert.Nil(t, res.Neighborhood)
	})

	t.Run("missing subtype row is an empty subtype", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		schools := "Lincoln Elementary"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{ID: 9, Type: model.TypeHouse}, nil)
		f.repo.EXPECT().GetSubtype(gomock.Any(), int64(9), model.TypeHouse).Return(nil, nil)
		f.repo.EXPECT().GetNeighborhood(gomock.Any(), int64(9)).
			Return(&model.Neighborhood{PropertyID: 9, Schools: &schools, Land: true}, nil)

		res, err := f.svc.Load(context.Background(), 9)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, dto.SubtypeResponse{}, res.Subtype)
		require.NotNil(t, res.Neighborhood)
		assert.Equal(t, schools, *res.Neighborhood.Schools)
		assert.Nil(t, res.Neighborhood.CrimeRate)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, nil)

		_, err := f.svc.Load(context.Background(), 404)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "property:get:3", gomock.Any()).Return(nil)

		_, err := f.svc.Load(context.Background(), 3)

		assert.NoError(t, err)
	})
}

func TestPropertyService_Save(t *testing.T) {
	tests := []struct {
		name     string
		id       *int64
		req      func() dto.SavePropertyRequest
		setup    func(f fixture)
		wantID   int64
		wantCode int
	}{
		{
			name: "create inserts base row and matching subtype",
			req:  houseRequest,
			setup: func(f fixture) {
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, p model.Property) (int64, error) {
						assert.Equal(t, model.TypeHouse, p.Type)
						assert.True(t, p.Price.Equal(decimal.RequireFromString("1500")))

						return 21, nil
					})
				f.repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), model.House{PropertyID: 21, Rooms: 3}).Return(nil)
			},
			wantID: 21,
		},
		{
			name: "create house without rooms stores no subtype row",
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Rooms = nil

				return req
			},
			setup: func(f fixture) {
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(22), nil)
			},
			wantID: 22,
		},
		{
			name: "changing house to apartment clears subtypes and inserts only the apartment",
			id:   ptr(int64(7)),
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Type = "apartment"
				req.BuildingType = "walk-up"

				return req
			},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				pgMocks.PassThrough(f.transactor)

				gomock.InOrder(
					f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ gDto.FilterGroup) error {
							assert.Equal(t, model.TypeApartment, fields[model.FieldType])
							assert.NotContains(t, fields, model.FieldImage)
							assert.NotContains(t, fields, model.FieldID)

							return nil
						}),
					f.repo.EXPECT().DeleteSubtypesTx(gomock.Any(), gomock.Any(), int64(7)).Return(nil),
					f.repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), model.Apartment{PropertyID: 7, Rooms: 3, BuildingType: "walk-up"}).Return(nil),
				)
			},
			wantID: 7,
		},
		{
			name: "neighborhood without values removes the stored row",
			id:   ptr(int64(8)),
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Neighborhood = &dto.NeighborhoodRequest{}

				return req
			},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().DeleteSubtypesTx(gomock.Any(), gomock.Any(), int64(8)).Return(nil)
				f.repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().DeleteNeighborhoodTx(gomock.Any(), gomock.Any(), int64(8)).Return(nil)
			},
			wantID: 8,
		},
		{
			name: "zero crime rate still replaces the neighborhood",
			id:   ptr(int64(8)),
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Neighborhood = &dto.NeighborhoodRequest{CrimeRate: ptr(decimal.Zero)}

				return req
			},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().DeleteSubtypesTx(gomock.Any(), gomock.Any(), int64(8)).Return(nil)
				f.repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().DeleteNeighborhoodTx(gomock.Any(), gomock.Any(), int64(8)).Return(nil)
				f.repo.EXPECT().InsertNeighborhoodTx(gomock.Any(), gomock.Any(), model.Neighborhood{
					PropertyID: 8,
					CrimeRate:  decimal.NewNullDecimal(decimal.Zero),
				}).Return(nil)
			},
			wantID: 8,
		},
		{
			name: "missing price is a validation error",
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Price = nil

				return req
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing street is a validation error",
			req: func() dto.SavePropertyRequest {
				req := houseRequest()
				req.Street = ""

				return req
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update of unknown property",
			id:   ptr(int64(99)),
			req:  houseRequest,
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store failure mid transaction is a persistence error",
			req:  houseRequest,
			setup: func(f fixture) {
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(23), nil)
				f.repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "constraint violation is a conflict",
			req:  houseRequest,
			setup: func(f fixture) {
				pgMocks.PassThrough(f.transactor)
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23514"})
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			id, err := f.svc.Save(context.Background(), tt.id, tt.req())
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestPropertyService_SaveInvalidatesBeforeReturning(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := propertyMocks.NewMockProperty(ctrl)
	transactor := pgMocks.NewMockTransactor(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, transactor, cfg, redis, otelMocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	pgMocks.PassThrough(transactor)
	repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(31), nil)
	repo.EXPECT().InsertSubtypeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var invalidated []string

	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) error {
			invalidated = append(invalidated, key)

			return nil
		}).Times(2)
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pattern string) error {
			invalidated = append(invalidated, pattern)

			return nil
		}).Times(2)

	id, err := svc.Save(context.Background(), nil, houseRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
	assert.Len(t, invalidated, 4)
}

func TestPropertyService_Search(t *testing.T) {
	t.Run("empty criteria filters to available properties", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().CountListings(gomock.Any(), gomock.Any()).Return(1, nil)
		f.repo.EXPECT().GetListings(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error) {
				assert.Equal(t, dto.SearchOrder(), params.Sorts)
				require.Len(t, filter.Filters, 1)
				assert.Equal(t, model.FieldAvailability, filter.Filters[0].(gDto.Filter).Field)

				return []model.Listing{{Property: model.Property{ID: 1, Price: decimal.RequireFromString("1500"), Availability: true}}}, nil
			})

		res, err := f.svc.Search(context.Background(), dto.SearchRequest{}, gDto.QueryParams{Page: 1, Limit: 10})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.Len(t, res.Properties, 1)
		assert.Equal(t, "1500.00", res.Properties[0].Price)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("caller sort does not override price order", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().CountListings(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().GetListings(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Listing, error) {
				assert.Empty(t, params.SortBy)
				assert.Empty(t, params.SortDir)
				assert.Equal(t, dto.SearchOrder(), params.Sorts)

				return nil, nil
			})

		params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "city", SortDir: gDto.SortDirDesc}

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{City: "aus"}, params)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("invalid type is rejected before the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{Type: "castle"}, gDto.QueryParams{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().CountListings(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{City: "Austin"}, gDto.QueryParams{})

		assert.ErrorIs(t, err, failure.PersistenceError)
	})
}

func TestPropertyService_ListAndLatest(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().CountListings(gomock.Any(), gDto.FilterGroup{}).Return(2, nil)
	f.repo.EXPECT().GetListings(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Listing, error) {
			assert.Equal(t, dto.NewestFirst(), params.Sorts)

			return []model.Listing{{Property: model.Property{ID: 2}}, {Property: model.Property{ID: 1}}}, nil
		})
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
			assert.Equal(t, 5, params.Limit)

			return []model.Property{{ID: 2, Availability: true}}, nil
		})

	list, err := f.svc.List(context.Background(), gDto.QueryParams{})
	require.NoError(t, err)
	assert.Len(t, list.Properties, 2)

	latest, err := f.svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Len(t, latest.Properties, 1)

	time.Sleep(10 * time.Millisecond)
}

func TestPropertyService_UploadImage(t *testing.T) {
	req := dto.UploadImageRequest{Image: &multipart.FileHeader{Filename: "front.png"}}

	t.Run("replaces a previously uploaded image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Property{ID: 5, Image: "https://cdn.example.com/property/5/old.png"}, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "property/5", gomock.Any(), req.Image, gomock.Any()).
			Return("https://cdn.example.com/property/5/new.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldImage: "https://cdn.example.com/property/5/new.png"}, gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("https://cdn.example.com/property/5/old.png").Return("property/5/old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "", "property/5/old.png").Return(nil)

		res, err := f.svc.UploadImage(context.Background(), 5, req)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/property/5/new.png", res.Image)
	})

	t.Run("removes the upload when the row cannot be updated", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Property{ID: 5}, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "property/5", gomock.Any(), req.Image, gomock.Any()).Return("https://cdn.example.com/property/5/x.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "property/5", gomock.Any()).Return(nil)

		_, err := f.svc.UploadImage(context.Background(), 5, req)

		assert.ErrorIs(t, err, failure.PersistenceError)
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Property{}, nil)

		_, err := f.svc.UploadImage(context.Background(), 5, req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
