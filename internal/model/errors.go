package model

import "errors"

// Ошибки экономики. Все восстановимые: состояние игрока при
// отклонении операции не меняется.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyOwned      = errors.New("already owned")
	ErrInvalidStake      = errors.New("invalid stake")
	ErrUnknownCosmetic   = errors.New("unknown cosmetic")
	ErrNotOwned          = errors.New("not owned")
	ErrFeatureDisabled   = errors.New("feature disabled")
)
