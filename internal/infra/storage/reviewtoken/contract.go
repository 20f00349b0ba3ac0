package reviewtoken

import "github.com/m04kA/SMC-SalonService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
