package application

import (
	"context"
	"errors"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	log "github.com/sirupsen/logrus"
)

// RpcURLKey is the settings key of the user defined node endpoint.
const RpcURLKey = "koinos_rpc_url"

// SettingsService manages the user preferences.
type SettingsService interface {
	// RpcURL points the rpc client to the stored endpoint, if any, and
	// returns the endpoint in use.
	RpcURL(ctx context.Context) (string, error)
	// SetRpcURL points the rpc client to url and persists it. The client is
	// left unchanged if persisting fails.
	SetRpcURL(ctx context.Context, url string) error
}

type settingsService struct {
	repo domain.SettingsRepository
	rpc  rpc.Service
}

func NewSettingsService(
	repo domain.SettingsRepository, rpcSvc rpc.Service,
) SettingsService {
	return &settingsService{repo, rpcSvc}
}

func (s *settingsService) RpcURL(ctx context.Context) (string, error) {
	url, err := s.repo.GetSetting(ctx, RpcURLKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingNotFound) {
			return "", err
		}
		return s.rpc.Endpoint(), nil
	}

	if url != s.rpc.Endpoint() {
		if err := s.rpc.SetEndpoint(url); err != nil {
			log.WithError(err).WithField("url", url).Warn(
				"stored rpc url is not valid, keeping the current one",
			)
			return s.rpc.Endpoint(), nil
		}
	}
	return url, nil
}

func (s *settingsService) SetRpcURL(ctx context.Context, url string) error {
	previous := s.rpc.Endpoint()
	if err := s.rpc.SetEndpoint(url); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, RpcURLKey, url); err != nil {
		if restoreErr := s.rpc.SetEndpoint(previous); restoreErr != nil {
			log.WithError(restoreErr).Warn("failed to restore previous rpc url")
		}
		return err
	}
	log.WithField("url", url).Info("rpc url updated")
	return nil
}
