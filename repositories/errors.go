package repositories

import "errors"

// ErrNotFound возвращается всеми репозиториями, когда документа нет.
// Реализации обязаны сворачивать ошибки хранилища к этому значению,
// чтобы сервисы не зависели от кодов Firestore.
var ErrNotFound = errors.New("document not found")
