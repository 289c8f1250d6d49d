package domain

import "time"

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionRobot     Transmission = "robot"
	TransmissionVariator  Transmission = "variator"
)

// TransmissionLabels — подписи для карточки автомобиля
var TransmissionLabels = map[Transmission]string{
	TransmissionManual:    "Механическая",
	TransmissionAutomatic: "Автоматическая",
	TransmissionRobot:     "Роботизированная",
	TransmissionVariator:  "Вариатор",
}

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

var FuelLabels = map[FuelType]string{
	FuelPetrol:   "Бензин",
	FuelDiesel:   "Дизель",
	FuelElectric: "Электрический",
	FuelHybrid:   "Гибрид",
}

// Brand — марка автомобиля
type Brand struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Country     string `json:"country,omitempty" gorm:"size:50"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	FoundedYear *int   `json:"founded_year,omitempty"`
}

func (Brand) TableName() string {
	return "brands"
}

// Car — автомобиль в каталоге салона. Цена хранится в целых рублях.
type Car struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	BrandID      int64        `json:"brand_id" gorm:"not null;index"`
	Model        string       `json:"model" gorm:"size:100;not null"`
	Year         int          `json:"year" gorm:"not null;index"`
	Price        int64        `json:"price" gorm:"not null;index"`
	Mileage      int          `json:"mileage" gorm:"not null;default:0"`
	Color        string       `json:"color" gorm:"size:50"`
	Transmission Transmission `json:"transmission" gorm:"size:20"`
	FuelType     FuelType     `json:"fuel_type" gorm:"size:20"`
	EngineVolume float64      `json:"engine_volume"`
	Horsepower   int          `json:"horsepower"`
	Description  string       `json:"description,omitempty" gorm:"type:text"`
	IsSold       bool         `json:"is_sold" gorm:"not null;default:false;index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Brand  *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Images []CarImage `json:"images,omitempty" gorm:"foreignKey:CarID"`
}

func (Car) TableName() string {
	return "cars"
}

// MainImageURL returns the image flagged as main, falling back to the first one.
func (c *Car) MainImageURL() string {
	for _, img := range c.Images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(c.Images) > 0 {
		return c.Images[0].URL
	}
	return ""
}

// Input converts a catalog car into the loosely typed shape the storefront
// managers accept.
func (c *Car) Input() CarInput {
	in := CarInput{
		ID:       c.ID,
		Model:    c.Model,
		Price:    Price(c.Price),
		Year:     c.Year,
		ImageURL: c.MainImageURL(),
	}
	if c.Brand != nil {
		in.Brand = BrandName(c.Brand.Name)
	}
	return in
}

type CarImage struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CarID       int64     `json:"car_id" gorm:"not null;index"`
	URL         string    `json:"image" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"size:200"`
	IsMain      bool      `json:"is_main" gorm:"not null;default:false"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (CarImage) TableName() string {
	return "car_images"
}
