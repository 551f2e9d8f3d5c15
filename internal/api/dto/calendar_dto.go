package dto

import "time"

// CalendarEventInput 创建/更新日程，PUT/DELETE 时 ID 可以放在 body 中
type CalendarEventInput struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	// RFC 3339 或 YYYY-MM-DD
	Date string `json:"date"`
}

type CalendarDeleteDTO struct {
	ID uint64 `json:"id"`
}

type CalendarQueryDTO struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type CalendarEventDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
