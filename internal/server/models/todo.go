package models

// Todo: строка таблицы todos вместе с владельцем (JOIN по user_id).
type Todo struct {
	ID          int64
	Name        string
	IsCompleted bool
	PublicID    string
	UserID      int64
	Owner       User
}
