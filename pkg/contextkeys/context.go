package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому *gorm.DB (пул или транзакция) хранится в context
const DBContextKey = contextKey("db")
