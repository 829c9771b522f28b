package ledger

import (
	"context"

	"github.com/m04kA/SMC-AppointmentCore/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы PostgresStore работал и с *sql.DB, и с обёрткой метрик
type DBExecutor = dbmetrics.DBExecutor

// KeyValueStore контракт durable key-value хранилища (§ persistence):
// весь реестр сериализуется в одно значение под одним ключом
type KeyValueStore interface {
	// Get возвращает значение ключа; found=false, если ключ отсутствует
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set полностью перезаписывает значение ключа
	Set(ctx context.Context, key string, value []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
