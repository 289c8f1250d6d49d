package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"autosalon/internal/config"
	"autosalon/internal/database"
	"autosalon/internal/domain"
	"autosalon/internal/logging"
	"autosalon/internal/modules/auth"
	"autosalon/internal/repository"
)

type seedCar struct {
	brand        string
	model        string
	year         int
	price        int64
	mileage      int
	color        string
	transmission domain.Transmission
	fuel         domain.FuelType
	engine       float64
	horsepower   int
	image        string
}

var brands = []domain.Brand{
	{Name: "Toyota", Country: "Япония", Description: "Крупнейший японский автопроизводитель"},
	{Name: "BMW", Country: "Германия", Description: "Bayerische Motoren Werke"},
	{Name: "Mercedes-Benz", Country: "Германия"},
	{Name: "Kia", Country: "Южная Корея"},
	{Name: "Hyundai", Country: "Южная Корея"},
	{Name: "Lada", Country: "Россия"},
}

var cars = []seedCar{
	{"Toyota", "Camry", 2023, 3_000_000, 12_000, "Белый", domain.TransmissionAutomatic, domain.FuelPetrol, 2.5, 200, "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb"},
	{"Toyota", "RAV4", 2022, 3_450_000, 25_000, "Серый", domain.TransmissionVariator, domain.FuelHybrid, 2.5, 222, "https://images.unsplash.com/photo-1581540222194-0def2dda95b8"},
	{"Toyota", "Land Cruiser 300", 2024, 11_900_000, 1_500, "Чёрный", domain.TransmissionAutomatic, domain.FuelDiesel, 3.3, 299, "https://images.unsplash.com/photo-1594502184342-2e12f877aa73"},
	{"BMW", "X5 xDrive40i", 2023, 9_800_000, 8_000, "Синий", domain.TransmissionAutomatic, domain.FuelPetrol, 3.0, 340, "https://images.unsplash.com/photo-1555215695-3004980ad54e"},
	{"BMW", "320d", 2021, 4_100_000, 41_000, "Белый", domain.TransmissionAutomatic, domain.FuelDiesel, 2.0, 190, "https://images.unsplash.com/photo-1580273916550-e323be2ae537"},
	{"BMW", "i4 eDrive40", 2023, 6_700_000, 5_000, "Серый", domain.TransmissionAutomatic, domain.FuelElectric, 0, 340, "https://images.unsplash.com/photo-1617531653332-bd46c24f2068"},
	{"Mercedes-Benz", "E 200", 2022, 6_200_000, 19_000, "Чёрный", domain.TransmissionAutomatic, domain.FuelPetrol, 2.0, 197, "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8"},
	{"Kia", "K5", 2023, 2_900_000, 10_000, "Красный", domain.TransmissionAutomatic, domain.FuelPetrol, 2.5, 194, "https://images.unsplash.com/photo-1609521263047-f8f205293f24"},
	{"Kia", "Sportage", 2022, 3_100_000, 30_000, "Зелёный", domain.TransmissionRobot, domain.FuelPetrol, 1.6, 180, "https://images.unsplash.com/photo-1633695632011-d1f3b0a2d9d0"},
	{"Hyundai", "Solaris", 2020, 1_350_000, 64_000, "Серебристый", domain.TransmissionManual, domain.FuelPetrol, 1.6, 123, ""},
	{"Lada", "Vesta", 2024, 1_500_000, 0, "Белый", domain.TransmissionManual, domain.FuelPetrol, 1.6, 106, ""},
	{"Lada", "Niva Legend", 2023, 1_050_000, 7_000, "Хаки", domain.TransmissionManual, domain.FuelPetrol, 1.7, 83, ""},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.IsProdLike(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg.DSN, logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}

	logger.Info("running AutoMigrate")
	if err := database.Migrate(db); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	logger.Info("cleaning old data")
	for _, table := range []string{"purchase_requests", "car_images", "cars", "brands", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
		}
	}

	ctx := context.Background()
	users := seedUsers(ctx, db, logger)
	carIDs := seedCatalog(ctx, db, logger)
	seedRequests(ctx, db, logger, users, carIDs)

	logger.Info("seed completed",
		zap.Int("brands", len(brands)),
		zap.Int("cars", len(carIDs)),
		zap.Int("users", len(users)),
	)
}

func seedUsers(ctx context.Context, db *gorm.DB, logger *zap.Logger) []*domain.User {
	repo := repository.NewUserRepository(db)
	accounts := []struct {
		user     domain.User
		password string
	}{
		{domain.User{Username: "admin", Email: "admin@autoelite.ru", Role: domain.RoleAdmin, Position: "Администратор"}, "admin123"},
		{domain.User{Username: "manager", Email: "manager@autoelite.ru", Role: domain.RoleManager, Phone: "+7 (495) 000-00-01", Department: "Продажи", Position: "Менеджер"}, "manager123"},
		{domain.User{Username: "ivan", Email: "ivan@mail.ru", Role: domain.RoleClient, Phone: "+7 (916) 123-45-67"}, "client123"},
		{domain.User{Username: "olga", Email: "olga@yandex.ru", Role: domain.RoleClient, Phone: "+7 (926) 765-43-21"}, "client123"},
	}

	out := make([]*domain.User, 0, len(accounts))
	for _, a := range accounts {
		u := a.user
		hash, err := auth.HashPassword(a.password)
		if err != nil {
			logger.Fatal("hash password", zap.Error(err))
		}
		u.PasswordHash = hash
		if err := repo.Create(ctx, &u); err != nil {
			logger.Fatal("create user", zap.String("email", u.Email), zap.Error(err))
		}
		logger.Info("user created", zap.String("email", u.Email), zap.String("password", a.password), zap.String("role", string(u.Role)))
		out = append(out, &u)
	}
	return out
}

func seedCatalog(ctx context.Context, db *gorm.DB, logger *zap.Logger) []int64 {
	repo := repository.NewCarRepository(db)

	brandIDs := map[string]int64{}
	for i := range brands {
		b := brands[i]
		if err := repo.CreateBrand(ctx, &b); err != nil {
			logger.Fatal("create brand", zap.String("brand", b.Name), zap.Error(err))
		}
		brandIDs[b.Name] = b.ID
	}

	ids := make([]int64, 0, len(cars))
	now := time.Now()
	for i, sc := range cars {
		car := domain.Car{
			BrandID:      brandIDs[sc.brand],
			Model:        sc.model,
			Year:         sc.year,
			Price:        sc.price,
			Mileage:      sc.mileage,
			Color:        sc.color,
			Transmission: sc.transmission,
			FuelType:     sc.fuel,
			EngineVolume: sc.engine,
			Horsepower:   sc.horsepower,
			Description:  fmt.Sprintf("%s %s %d года в отличном состоянии.", sc.brand, sc.model, sc.year),
			// последний автомобиль уже продан
			IsSold:    i == len(cars)-1,
			CreatedAt: now.Add(-time.Duration(i) * 36 * time.Hour),
		}
		if sc.image != "" {
			car.Images = []domain.CarImage{{URL: sc.image, IsMain: true, Description: "Основное фото"}}
		}
		if err := repo.Create(ctx, &car); err != nil {
			logger.Fatal("create car", zap.String("model", sc.model), zap.Error(err))
		}
		ids = append(ids, car.ID)
	}
	return ids
}

func seedRequests(ctx context.Context, db *gorm.DB, logger *zap.Logger, users []*domain.User, carIDs []int64) {
	repo := repository.NewPurchaseRequestRepository(db)
	statuses := []domain.RequestStatus{domain.RequestPending, domain.RequestProcessing, domain.RequestCompleted}

	for _, u := range users {
		if u.Role != domain.RoleClient {
			continue
		}
		pr := &domain.PurchaseRequest{
			UserID:       u.ID,
			CarID:        carIDs[rand.Intn(len(carIDs)-1)],
			ContactName:  u.Username,
			ContactPhone: u.Phone,
			ContactEmail: u.Email,
			Message:      "Хочу записаться на тест-драйв",
			Status:       statuses[rand.Intn(len(statuses))],
		}
		if err := repo.Create(ctx, pr); err != nil {
			logger.Fatal("create purchase request", zap.Error(err))
		}
	}
	logger.Info("purchase requests created")
}
