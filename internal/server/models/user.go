// Серверные модели записей БД
package models

// User: строка таблицы users.
//
// ID: внутренний первичный ключ, наружу отдаётся только PublicID.
type User struct {
	ID       int64
	Name     string
	Email    string
	PublicID string
	IsAdmin  bool
}
