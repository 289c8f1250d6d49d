package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autosalon/internal/database"
	"autosalon/internal/domain"
	"autosalon/internal/modules/catalog"
	"autosalon/internal/modules/history"
	"autosalon/internal/repository"
	"autosalon/internal/storage"
)

type fixture struct {
	svc     *catalog.Service
	repo    *repository.CarRepository
	history *history.Service
	toyota  domain.Brand
	bmw     domain.Brand
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(fmt.Sprintf("file:catalog_%d?mode=memory&cache=shared", time.Now().UnixNano()), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := repository.NewCarRepository(db)
	f := &fixture{
		repo:    repo,
		history: history.NewService(storage.NewStore(storage.NewMemoryBackend(), nil), nil, nil),
		toyota:  domain.Brand{Name: "Toyota", Country: "Япония"},
		bmw:     domain.Brand{Name: "BMW", Country: "Германия"},
	}
	require.NoError(t, repo.CreateBrand(ctx, &f.toyota))
	require.NoError(t, repo.CreateBrand(ctx, &f.bmw))
	f.svc = catalog.NewService(repo, f.history, zap.NewNop())
	return f
}

func (f *fixture) addCar(t *testing.T, brand domain.Brand, model string, year int, price int64, sold bool, age time.Duration) *domain.Car {
	t.Helper()
	car := &domain.Car{
		BrandID:      brand.ID,
		Model:        model,
		Year:         year,
		Price:        price,
		Transmission: domain.TransmissionAutomatic,
		FuelType:     domain.FuelPetrol,
		IsSold:       sold,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-age),
		Images: []domain.CarImage{
			{URL: "https://cdn.example/" + model + ".jpg", IsMain: true},
		},
	}
	require.NoError(t, f.repo.Create(context.Background(), car))
	return car
}

func TestListCars_PaginationAndOrder(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 8; i++ {
		f.addCar(t, f.toyota, fmt.Sprintf("Model%d", i), 2020, 1_000_000, false, time.Duration(i)*time.Hour)
	}
	f.addCar(t, f.toyota, "Sold", 2020, 1_000_000, true, 0)

	page, err := f.svc.ListCars(context.Background(), repository.CarFilter{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Cars, catalog.PageSize)
	assert.Equal(t, "Model0", page.Cars[0].Model)
	require.NotNil(t, page.Cars[0].Brand)
	assert.Equal(t, "Toyota", page.Cars[0].Brand.Name)

	// за пределами — последняя страница
	page, err = f.svc.ListCars(context.Background(), repository.CarFilter{}, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Cars, 2)
	assert.Equal(t, "Model7", page.Cars[1].Model)

	page, err = f.svc.ListCars(context.Background(), repository.CarFilter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestListCars_Filters(t *testing.T) {
	f := newFixture(t)
	f.addCar(t, f.toyota, "Camry", 2023, 3_000_000, false, 0)
	f.addCar(t, f.toyota, "Corolla", 2018, 1_500_000, false, time.Hour)
	f.addCar(t, f.bmw, "X5", 2021, 7_000_000, false, 2*time.Hour)

	ctx := context.Background()
	cases := []struct {
		name   string
		filter repository.CarFilter
		want   []string
	}{
		{"brand", repository.CarFilter{BrandID: f.bmw.ID}, []string{"X5"}},
		{"search model", repository.CarFilter{Search: "CAM"}, []string{"Camry"}},
		{"search brand", repository.CarFilter{Search: "toyo"}, []string{"Camry", "Corolla"}},
		{"price range", repository.CarFilter{MinPrice: 2_000_000, MaxPrice: 5_000_000}, []string{"Camry"}},
		{"year range", repository.CarFilter{MinYear: 2019, MaxYear: 2022}, []string{"X5"}},
		{"transmission", repository.CarFilter{Transmission: domain.TransmissionManual}, []string{}},
		{"fuel", repository.CarFilter{FuelType: domain.FuelPetrol}, []string{"Camry", "Corolla", "X5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := f.svc.ListCars(ctx, tc.filter, 1)
			require.NoError(t, err)

			got := make([]string, 0, len(page.Cars))
			for _, c := range page.Cars {
				got = append(got, c.Model)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetail_SimilarAndHistory(t *testing.T) {
	f := newFixture(t)
	camry := f.addCar(t, f.toyota, "Camry", 2023, 3_000_000, false, 0)
	for i := 0; i < 4; i++ {
		f.addCar(t, f.toyota, fmt.Sprintf("Other%d", i), 2020, 2_000_000, false, time.Hour)
	}
	f.addCar(t, f.toyota, "SoldOne", 2020, 2_000_000, true, time.Hour)
	f.addCar(t, f.bmw, "X5", 2021, 7_000_000, false, time.Hour)

	ctx := context.Background()
	d, err := f.svc.Detail(ctx, "client-1", camry.ID)
	require.NoError(t, err)

	assert.Equal(t, "Camry", d.Car.Model)
	assert.Len(t, d.Car.Images, 1)
	assert.Len(t, d.Similar, catalog.SimilarLimit)
	for _, s := range d.Similar {
		assert.NotEqual(t, camry.ID, s.ID)
		assert.Equal(t, f.toyota.ID, s.BrandID)
		assert.False(t, s.IsSold)
	}

	viewed := f.history.For("client-1").List(ctx)
	require.Len(t, viewed, 1)
	assert.Equal(t, camry.ID, viewed[0].ID)
	assert.Equal(t, "Toyota", viewed[0].Brand)
	assert.Empty(t, f.history.For("client-2").List(ctx))
}

func TestDetail_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Detail(context.Background(), "client-1", 404)
	assert.ErrorIs(t, err, catalog.ErrCarNotFound)
	assert.Empty(t, f.history.For("client-1").List(context.Background()))
}
