package userlock

import "sync"

// Locker - взаимное исключение операций над леджером одного игрока.
// Новый спин или операция магазина не принимаются, пока предыдущая
// мутация леджера этого игрока не завершена
type Locker struct {
	locks sync.Map // userID -> *sync.Mutex
}

func New() *Locker {
	return &Locker{}
}

// Lock - захватывает блокировку игрока, возвращает функцию освобождения
func (l *Locker) Lock(userID int) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mtx := v.(*sync.Mutex)
	mtx.Lock()
	return mtx.Unlock
}
