package application

import (
	"context"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/koinos"
	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/kwallet-network/kwallet/pkg/wallet"
	log "github.com/sirupsen/logrus"
)

// TransferResult is the outcome of a broadcast transfer.
type TransferResult struct {
	TransactionID string
	Success       bool
	Sponsored     bool
	RcLimit       uint64
	// BlockID is set only if the inclusion was awaited and observed.
	BlockID   string
	Confirmed bool
}

// TransferService builds, signs and submits token transfers, optionally
// having their fees paid by the sponsor account.
type TransferService interface {
	Transfer(ctx context.Context, intent domain.TransferIntent) (*TransferResult, error)
}

// DryRunKind classifies the outcome of a dry-run submission.
type DryRunKind int

const (
	DryRunSucceeded DryRunKind = iota
	// DryRunInsufficientRc is the retryable failure of a payer without
	// enough resource credits or a too low rc limit.
	DryRunInsufficientRc
	DryRunFailed
)

// DryRunOutcome is the result of submitting a transaction without
// broadcasting it. Receipt is set if the node returned one, Err unless Kind
// is DryRunSucceeded.
type DryRunOutcome struct {
	Kind    DryRunKind
	Receipt *rpc.Receipt
	Err     error
}

type transferService struct {
	rpc    rpc.Service
	wallet WalletService
	chain  ChainConfig
	cfg    TransferConfig
}

func NewTransferService(
	rpcSvc rpc.Service, walletSvc WalletService, chain ChainConfig, cfg TransferConfig,
) TransferService {
	if cfg.RcBump == 0 {
		cfg.RcBump = DefaultRcBump
	}
	if cfg.MaxSponsorAttempts <= 0 {
		cfg.MaxSponsorAttempts = DefaultMaxSponsorAttempts
	}
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = DefaultConfirmationTimeout
	}
	return &transferService{rpcSvc, walletSvc, chain, cfg}
}

// transferFlow carries the state of a single transfer. The rpc service is a
// snapshot taken at the start, so that a change of endpoint does not affect
// a transfer in progress.
type transferFlow struct {
	rpc      rpc.Service
	signer   *wallet.Signer
	intent   domain.TransferIntent
	amount   uint64
	contract string
	from     []byte
	rc       uint64
	mana     domain.Mana
}

func (t *transferService) Transfer(
	ctx context.Context, intent domain.TransferIntent,
) (*TransferResult, error) {
	flow, err := t.newFlow(ctx, intent)
	if err != nil {
		return nil, err
	}

	sponsored, err := t.resolveFeeMode(ctx, flow)
	if err != nil {
		return nil, &TransferError{"failed to resolve fee mode", err}
	}

	tx, err := t.build(ctx, flow)
	if err != nil {
		return nil, &TransferError{"failed to build transaction", err}
	}

	if sponsored {
		if tx, err = t.sponsor(ctx, flow, tx); err != nil {
			return nil, &TransferError{"failed to sponsor transaction", err}
		}
	} else {
		tx = tx.WithRcLimit(flow.rc)
	}

	result, err := t.broadcast(ctx, flow, tx)
	if err != nil {
		return nil, &TransferError{"failed to broadcast transaction", err}
	}
	result.Sponsored = sponsored

	log.WithFields(log.Fields{
		"txid":      result.TransactionID,
		"token":     intent.Token.String(),
		"sponsored": sponsored,
		"rc_limit":  result.RcLimit,
	}).Info("transfer broadcasted")
	return result, nil
}

// newFlow validates the intent and, for KOIN, checks that the amount does
// not exceed the current mana. Nothing is submitted if this fails.
func (t *transferService) newFlow(
	ctx context.Context, intent domain.TransferIntent,
) (*transferFlow, error) {
	amount, err := intent.Validate()
	if err != nil {
		return nil, &TransferError{"invalid transfer", err}
	}
	signer := t.wallet.Signer()
	if signer == nil {
		return nil, &TransferError{"invalid transfer", ErrWalletNotLoaded}
	}
	if signer.Address() != intent.From {
		return nil, &TransferError{"invalid transfer", ErrSenderMismatch}
	}
	contract, err := t.chain.TokenContract(intent.Token)
	if err != nil {
		return nil, &TransferError{"invalid transfer", err}
	}
	from, err := wallet.DecodeAddress(intent.From)
	if err != nil {
		return nil, &TransferError{"invalid transfer", domain.ErrInvalidSender}
	}

	svc := t.rpc.Snapshot()
	rc, err := svc.GetAccountRc(ctx, intent.From)
	if err != nil {
		return nil, &TransferError{"failed to fetch mana", err}
	}
	koinBalance, err := svc.GetTokenBalance(ctx, t.chain.KoinContract, intent.From)
	if err != nil {
		return nil, &TransferError{"failed to fetch balance", err}
	}
	mana := domain.NewMana(rc, koinBalance)

	if intent.Token == domain.TokenKOIN && amount > mana.Current {
		wait, ok := mana.TimeToReach(amount, t.chain.ManaRegenWindow)
		return nil, &TransferError{"insufficient mana", &domain.InsufficientManaError{
			Amount:        amount,
			Available:     mana.Current,
			WaitTime:      wait,
			CanRegenerate: ok,
		}}
	}

	return &transferFlow{
		rpc:      svc,
		signer:   signer,
		intent:   intent,
		amount:   amount,
		contract: contract,
		from:     from,
		rc:       rc,
		mana:     mana,
	}, nil
}

func (t *transferService) resolveFeeMode(
	ctx context.Context, flow *transferFlow,
) (bool, error) {
	switch flow.intent.FeeMode {
	case domain.FeeModeSelfPay:
		return false, nil
	case domain.FeeModeSponsored:
		if !t.chain.CanSponsor() {
			return false, domain.ErrSponsorNotConfigured
		}
		return true, nil
	}

	if !t.chain.CanSponsor() {
		return false, nil
	}
	estimate, err := estimateTransferCost(ctx, flow.rpc)
	if err != nil {
		log.WithError(err).Warn("failed to estimate transfer cost, paying fee with own mana")
		return false, nil
	}
	sponsorRc, err := flow.rpc.GetAccountRc(ctx, t.chain.SponsorAddress)
	if err != nil {
		log.WithError(err).Warn("failed to fetch sponsor mana, paying fee with own mana")
		return false, nil
	}

	return domain.ShouldSponsor(domain.SponsorshipOpts{
		Token:        flow.intent.Token,
		Amount:       flow.amount,
		CurrentMana:  flow.mana.Current,
		EstimatedFee: estimate.RcUnits,
		SponsorMana:  sponsorRc,
		Threshold:    t.chain.SponsorManaThreshold,
	}), nil
}

// build returns the unsigned transfer paid by the sender.
func (t *transferService) build(
	ctx context.Context, flow *transferFlow,
) (koinos.Transaction, error) {
	chainID, err := flow.rpc.GetChainID(ctx)
	if err != nil {
		return koinos.Transaction{}, err
	}
	nonce, err := flow.rpc.GetAccountNonce(ctx, flow.intent.From)
	if err != nil {
		return koinos.Transaction{}, err
	}
	op, err := koinos.NewTransferOperation(
		flow.contract, flow.intent.From, flow.intent.To, flow.amount,
	)
	if err != nil {
		return koinos.Transaction{}, err
	}

	return koinos.NewTransaction(koinos.NewTransactionOpts{
		ChainID:    chainID,
		Nonce:      nonce + 1,
		Payer:      flow.from,
		Operations: []koinos.Operation{op},
	})
}

// sponsor estimates the resources of tx with a dry-run paid by the probe
// account, then makes the sponsor the payer and raises the rc limit until a
// dry-run succeeds.
func (t *transferService) sponsor(
	ctx context.Context, flow *transferFlow, tx koinos.Transaction,
) (koinos.Transaction, error) {
	probe, err := wallet.DecodeAddress(t.chain.ProbeAddress)
	if err != nil {
		return koinos.Transaction{}, err
	}
	sponsor, err := wallet.DecodeAddress(t.chain.SponsorAddress)
	if err != nil {
		return koinos.Transaction{}, err
	}
	probeRc, err := flow.rpc.GetAccountRc(ctx, t.chain.ProbeAddress)
	if err != nil {
		return koinos.Transaction{}, err
	}

	tx = tx.WithPayer(probe).
		WithPayee(flow.from).
		WithRcLimit(mathutil.MulFloor(probeRc, mathutil.ProbeRcShare))
	if tx, err = tx.Refresh(flow.signer); err != nil {
		return koinos.Transaction{}, err
	}

	probeOutcome := dryRun(ctx, flow.rpc, tx)
	if probeOutcome.Kind != DryRunSucceeded {
		return koinos.Transaction{}, probeOutcome.Err
	}
	if probeOutcome.Receipt == nil || probeOutcome.Receipt.RcUsed == 0 {
		return koinos.Transaction{}, domain.ErrEstimationFailed
	}

	rcLimit := mathutil.PlusMargin(probeOutcome.Receipt.RcUsed, mathutil.RcLimitMargin)
	tx = tx.WithPayer(sponsor)

	for attempt := 1; attempt <= t.cfg.MaxSponsorAttempts; attempt++ {
		if tx, err = tx.WithRcLimit(rcLimit).Refresh(flow.signer); err != nil {
			return koinos.Transaction{}, err
		}

		outcome := dryRun(ctx, flow.rpc, tx)
		switch outcome.Kind {
		case DryRunSucceeded:
			log.WithFields(log.Fields{
				"attempt":  attempt,
				"rc_limit": rcLimit,
			}).Debug("sponsor dry-run succeeded")
			return tx, nil
		case DryRunInsufficientRc:
			log.WithFields(log.Fields{
				"attempt":  attempt,
				"rc_limit": rcLimit,
			}).Debug("sponsor dry-run ran out of rc, raising limit")
			rcLimit += t.cfg.RcBump
		default:
			return koinos.Transaction{}, outcome.Err
		}
	}
	return koinos.Transaction{}, domain.ErrInsufficientSponsorResources
}

func (t *transferService) broadcast(
	ctx context.Context, flow *transferFlow, tx koinos.Transaction,
) (*TransferResult, error) {
	tx, err := tx.Refresh(flow.signer)
	if err != nil {
		return nil, err
	}
	receipt, err := flow.rpc.SubmitTransaction(ctx, tx, true)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrEmptyReceipt
	}
	if receipt.Reverted {
		return nil, &domain.OnChainRejectionError{TxID: tx.ID, Logs: receipt.Logs}
	}

	result := &TransferResult{
		TransactionID: tx.ID,
		Success:       true,
		RcLimit:       tx.Header.RcLimit,
	}
	if !t.cfg.WaitForConfirmation {
		return result, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, t.cfg.ConfirmationTimeout)
	defer cancel()
	blockID, err := flow.rpc.WaitForInclusion(waitCtx, tx.ID)
	if err != nil {
		log.WithError(err).WithField("txid", tx.ID).Warn(
			"transaction broadcasted but not yet included in a block",
		)
		return result, nil
	}
	result.BlockID = blockID
	result.Confirmed = true
	return result, nil
}

func dryRun(ctx context.Context, svc rpc.Service, tx koinos.Transaction) DryRunOutcome {
	receipt, err := svc.SubmitTransaction(ctx, tx, false)
	if err != nil {
		if rpc.IsInsufficientRc(err) {
			return DryRunOutcome{Kind: DryRunInsufficientRc, Err: err}
		}
		return DryRunOutcome{Kind: DryRunFailed, Err: err}
	}
	if receipt == nil {
		return DryRunOutcome{Kind: DryRunFailed, Err: ErrEmptyReceipt}
	}
	if receipt.InsufficientRc() {
		return DryRunOutcome{
			Kind:    DryRunInsufficientRc,
			Receipt: receipt,
			Err:     &domain.OnChainRejectionError{TxID: tx.ID, Logs: receipt.Logs},
		}
	}
	if receipt.Reverted {
		return DryRunOutcome{
			Kind:    DryRunFailed,
			Receipt: receipt,
			Err:     &domain.OnChainRejectionError{TxID: tx.ID, Logs: receipt.Logs},
		}
	}
	return DryRunOutcome{Kind: DryRunSucceeded, Receipt: receipt}
}
