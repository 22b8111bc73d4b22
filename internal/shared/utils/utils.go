// Утилитарные функции общего назначения
package utils

// Ptr возвращает указатель на копию v (удобно для опциональных полей запросов).
func Ptr[T any](v T) *T {
	return &v
}

// StrPtr: частный случай Ptr для строк.
func StrPtr(s string) *string {
	return &s
}

// Deref возвращает значение по указателю или def, если указатель nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
