package maintenance

import "github.com/fabworks/FabLab-BookingService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс executor-а из txmanager
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
