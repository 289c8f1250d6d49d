package domain

import "time"

// FavoriteItem — автомобиль, сохранённый пользователем в избранное.
// В списке не больше одной записи на ID.
type FavoriteItem struct {
	ID      int64     `json:"id"`
	Brand   string    `json:"brand"`
	Model   string    `json:"model"`
	Price   int64     `json:"price"`
	Year    int       `json:"year"`
	Image   string    `json:"image"`
	AddedAt time.Time `json:"added_at"`
}

// HistoryItem — запись истории просмотров (новые сверху)
type HistoryItem struct {
	ID       int64     `json:"id"`
	Brand    string    `json:"brand"`
	Model    string    `json:"model"`
	Price    int64     `json:"price"`
	Year     int       `json:"year"`
	ViewedAt time.Time `json:"viewed_at"`
}

// SessionUser is the demo user persisted by the local session stub.
// Field names keep the camelCase layout the storefront pages read.
type SessionUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	IsDemo    bool      `json:"isDemo"`
	LoginTime time.Time `json:"loginTime"`
}
