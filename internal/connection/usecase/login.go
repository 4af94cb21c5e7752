package usecase

import (
	"context"

	"github.com/yhoon3002/schedule-bot/internal/connection"
	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
)

// RequestAuthorizationCode forwards to the code provider. The caller
// must invoke it straight from the user's click flow; the consent
// popup is blocked outside a gesture.
func (uc *implUseCase) RequestAuthorizationCode(ctx context.Context, scope string) (connection.AuthCode, error) {
	if scope == "" {
		scope = uc.scope
	}
	return uc.codes.RequestCode(ctx, uc.ref.SessionID(), scope)
}

// LoginAndConnect runs code request, token exchange and a status
// refetch. Every failure collapses to false; Busy is cleared in the
// deferred finalizer no matter where the flow stops.
func (uc *implUseCase) LoginAndConnect(ctx context.Context) bool {
	uc.setBusy(true)
	defer uc.setBusy(false)

	code, err := uc.RequestAuthorizationCode(ctx, uc.scope)
	if err != nil {
		uc.l.Warnf(ctx, "connection.LoginAndConnect: authorization code: %v", err)
		return false
	}
	if code.Code == "" {
		return false
	}

	if err := uc.repo.Connect(ctx, repository.ConnectInput{
		SessionID:   uc.ref.SessionID(),
		Code:        code.Code,
		RedirectURI: code.RedirectURI,
	}); err != nil {
		uc.l.Errorf(ctx, "connection.LoginAndConnect: connect: %v", err)
		return false
	}

	return uc.FetchStatus(ctx).GoogleConnected
}
