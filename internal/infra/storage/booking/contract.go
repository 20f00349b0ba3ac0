package booking

import "github.com/m04kA/SMC-SalonService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс из txmanager для работы с БД
// Репозиторий работает одинаково внутри и вне транзакции
type DBExecutor = txmanager.DBExecutor
