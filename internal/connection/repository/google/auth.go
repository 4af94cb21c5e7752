package google

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/yhoon3002/schedule-bot/internal/connection/repository"
	"github.com/yhoon3002/schedule-bot/internal/model"
	"github.com/yhoon3002/schedule-bot/pkg/goauth"
	pkgLog "github.com/yhoon3002/schedule-bot/pkg/log"
)

type implRepository struct {
	oauth *goauth.Client
	store *goauth.Store
	l     pkgLog.Logger
}

// New creates the auth repository that holds tokens locally and talks
// to Google directly, used when no remote scheduling API is deployed.
func New(l pkgLog.Logger, oauth *goauth.Client, store *goauth.Store) repository.AuthRepository {
	return &implRepository{
		oauth: oauth,
		store: store,
		l:     l,
	}
}

func (r *implRepository) Status(ctx context.Context, sessionID string) (repository.StatusSnapshot, error) {
	rec, err := r.store.Load(sessionID)
	if errors.Is(err, goauth.ErrNoToken) {
		// No token yet is the anonymous state, not a failure.
		return repository.StatusSnapshot{}, nil
	}
	if err != nil {
		return repository.StatusSnapshot{}, err
	}

	snap := repository.StatusSnapshot{
		Email: rec.Email,
		Scope: rec.Scope,
	}
	if rec.Token != nil {
		snap.Connected = (rec.Token.AccessToken != "" || rec.Token.RefreshToken != "") &&
			goauth.HasScope(rec.Scope, goauth.ScopeCalendar)
		snap.HasRefreshToken = rec.Token.RefreshToken != ""
	}
	if rec.Name != "" || rec.Email != "" || rec.Picture != "" {
		snap.Profile = &model.Profile{
			Name:      rec.Name,
			Email:     rec.Email,
			AvatarURL: rec.Picture,
		}
	}
	return snap, nil
}

func (r *implRepository) Connect(ctx context.Context, input repository.ConnectInput) error {
	tok, err := r.oauth.Exchange(ctx, input.Code, input.RedirectURI)
	if err != nil {
		return err
	}

	// Google omits the refresh token on re-consent when one was
	// already issued; keep the stored one in that case.
	if tok.RefreshToken == "" {
		if old, loadErr := r.store.Load(input.SessionID); loadErr == nil && old.Token != nil {
			tok.RefreshToken = old.Token.RefreshToken
		}
	}

	rec := &goauth.Record{Token: tok}
	if scope, ok := tok.Extra("scope").(string); ok {
		rec.Scope = scope
	}

	info, err := r.oauth.Userinfo(ctx, oauth2.StaticTokenSource(tok))
	if err != nil {
		// Profile is metadata; the connection itself succeeded.
		r.l.Warnf(ctx, "connection repository: userinfo fetch failed: %v", err)
	} else {
		rec.Email = info.Email
		rec.Name = info.Name
		rec.Picture = info.Picture
	}

	return r.store.Save(input.SessionID, rec)
}

func (r *implRepository) Disconnect(ctx context.Context, sessionID string) error {
	rec, err := r.store.Load(sessionID)
	if err == nil && rec.Token != nil && rec.Token.AccessToken != "" {
		// Best effort: the local record is removed either way.
		if revokeErr := r.oauth.Revoke(ctx, rec.Token.AccessToken); revokeErr != nil {
			r.l.Warnf(ctx, "connection repository: revoke failed: %v", revokeErr)
		}
	}
	return r.store.Delete(sessionID)
}
