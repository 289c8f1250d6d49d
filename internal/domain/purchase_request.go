package domain

import "time"

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestProcessing RequestStatus = "processing"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestProcessing, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// PurchaseRequest — заявка клиента на покупку автомобиля
type PurchaseRequest struct {
	ID             int64         `json:"id" gorm:"primaryKey"`
	UserID         int64         `json:"user_id" gorm:"not null;index"`
	CarID          int64         `json:"car_id" gorm:"not null;index"`
	ContactName    string        `json:"contact_name" gorm:"size:100;not null"`
	ContactPhone   string        `json:"contact_phone" gorm:"size:20;not null"`
	ContactEmail   string        `json:"contact_email" gorm:"size:254"`
	Message        string        `json:"message,omitempty" gorm:"type:text"`
	Status         RequestStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	ManagerComment string        `json:"manager_comment,omitempty" gorm:"type:text"`
	// client scope the request was filed from; status changes are pushed there
	ClientScope string    `json:"-" gorm:"size:64;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID"`
}

// CarTitle is "<brand> <model>", or just the model when the brand is not loaded.
func (pr *PurchaseRequest) CarTitle() string {
	if pr.Car == nil {
		return ""
	}
	if pr.Car.Brand == nil {
		return pr.Car.Model
	}
	return pr.Car.Brand.Name + " " + pr.Car.Model
}

func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}
