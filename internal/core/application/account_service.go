package application

import (
	"context"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AccountOverview gathers everything shown about an account.
type AccountOverview struct {
	Address     string
	KoinBalance uint64
	VhpBalance  uint64
	Mana        domain.Mana
	Estimate    Estimate
	// SponsorMana is zero if no sponsor is configured.
	SponsorMana uint64
}

// ShouldSponsor tells whether sponsorship should be proposed for sending
// amount of token.
func (o AccountOverview) ShouldSponsor(
	token domain.Token, amount, threshold uint64,
) bool {
	return domain.ShouldSponsor(domain.SponsorshipOpts{
		Token:        token,
		Amount:       amount,
		CurrentMana:  o.Mana.Current,
		EstimatedFee: o.Estimate.RcUnits,
		SponsorMana:  o.SponsorMana,
		Threshold:    threshold,
	})
}

// AccountService serves the read-only queries of an account. Every failing
// read is logged and reported as zero.
type AccountService interface {
	Overview(ctx context.Context, address string) AccountOverview
	Balance(ctx context.Context, address string, token domain.Token) uint64
	Mana(ctx context.Context, address string) domain.Mana
	// Nonce returns the next nonce to use for the account.
	Nonce(ctx context.Context, address string) uint64
	// MaxAmountCycle seeds a MAX button cycle for sending token.
	MaxAmountCycle(
		ctx context.Context, address string, token domain.Token, feeMode domain.FeeMode,
	) *domain.MaxAmountCycle
}

type accountService struct {
	rpc   rpc.Service
	chain ChainConfig
}

func NewAccountService(rpcSvc rpc.Service, chain ChainConfig) AccountService {
	return &accountService{rpcSvc, chain}
}

func (a *accountService) Overview(ctx context.Context, address string) AccountOverview {
	overview := AccountOverview{Address: address}
	var rc uint64

	g := &errgroup.Group{}
	g.Go(func() error {
		overview.KoinBalance = a.Balance(ctx, address, domain.TokenKOIN)
		return nil
	})
	g.Go(func() error {
		overview.VhpBalance = a.Balance(ctx, address, domain.TokenVHP)
		return nil
	})
	g.Go(func() error {
		rc = a.accountRc(ctx, address)
		return nil
	})
	g.Go(func() error {
		estimate, err := estimateTransferCost(ctx, a.rpc)
		if err != nil {
			log.WithError(err).Warn("failed to estimate transfer cost")
		}
		overview.Estimate = estimate
		return nil
	})
	if a.chain.SponsorAddress != "" {
		g.Go(func() error {
			overview.SponsorMana = a.accountRc(ctx, a.chain.SponsorAddress)
			return nil
		})
	}
	_ = g.Wait()

	overview.Mana = domain.NewMana(rc, overview.KoinBalance)
	return overview
}

func (a *accountService) Balance(
	ctx context.Context, address string, token domain.Token,
) uint64 {
	contract, err := a.chain.TokenContract(token)
	if err != nil {
		log.WithError(err).Warn("failed to fetch balance")
		return 0
	}
	balance, err := a.rpc.GetTokenBalance(ctx, contract, address)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"token":   token.String(),
			"address": address,
		}).Warn("failed to fetch balance")
		return 0
	}
	return balance
}

func (a *accountService) Mana(ctx context.Context, address string) domain.Mana {
	var rc, balance uint64

	g := &errgroup.Group{}
	g.Go(func() error {
		rc = a.accountRc(ctx, address)
		return nil
	})
	g.Go(func() error {
		balance = a.Balance(ctx, address, domain.TokenKOIN)
		return nil
	})
	_ = g.Wait()

	return domain.NewMana(rc, balance)
}

func (a *accountService) Nonce(ctx context.Context, address string) uint64 {
	nonce, err := a.rpc.GetAccountNonce(ctx, address)
	if err != nil {
		log.WithError(err).WithField("address", address).Warn("failed to fetch nonce")
		return 0
	}
	return nonce + 1
}

func (a *accountService) MaxAmountCycle(
	ctx context.Context, address string, token domain.Token, feeMode domain.FeeMode,
) *domain.MaxAmountCycle {
	overview := a.Overview(ctx, address)

	balance := overview.KoinBalance
	if token == domain.TokenVHP {
		balance = overview.VhpBalance
	}

	sponsored := feeMode == domain.FeeModeSponsored
	if feeMode == domain.FeeModeAuto {
		sponsored = a.chain.CanSponsor() && overview.ShouldSponsor(
			token, balance, a.chain.SponsorManaThreshold,
		)
	}

	return domain.NewMaxAmountCycle(domain.MaxAmountCycleOpts{
		Token:        token,
		Balance:      balance,
		Mana:         overview.Mana,
		EstimatedFee: overview.Estimate.RcUnits,
		Sponsored:    sponsored,
		RegenWindow:  a.chain.ManaRegenWindow,
	})
}

func (a *accountService) accountRc(ctx context.Context, address string) uint64 {
	rc, err := a.rpc.GetAccountRc(ctx, address)
	if err != nil {
		log.WithError(err).WithField("address", address).Warn("failed to fetch mana")
		return 0
	}
	return rc
}
