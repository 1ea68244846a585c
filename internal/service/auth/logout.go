package auth

import (
	"context"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Закрываем сессию - refresh токен перестает действовать
	return s.authRepo.DeleteSession(ctx, sessionID)
}
