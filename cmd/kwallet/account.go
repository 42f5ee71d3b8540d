package main

import (
	"context"
	"fmt"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var (
	tokenFlag = cli.StringFlag{
		Name:  "token",
		Usage: "token to send: KOIN or VHP",
		Value: domain.TokenKOIN.String(),
	}
	feeModeFlag = cli.StringFlag{
		Name:  "fee-mode",
		Usage: "who pays the transaction resources: self, sponsored or auto",
		Value: domain.FeeModeAuto.String(),
	}
	pressesFlag = cli.IntFlag{
		Name:  "presses",
		Usage: "number of consecutive MAX presses to show",
		Value: 2,
	}
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "print the KOIN and VHP balances, mana and fee estimate of the wallet",
	Action: balanceAction,
}

var mana = cli.Command{
	Name:   "mana",
	Usage:  "print the mana of the wallet",
	Action: manaAction,
}

var estimate = cli.Command{
	Name:   "estimate",
	Usage:  "print the estimated cost of a transfer",
	Action: estimateAction,
}

var maxamount = cli.Command{
	Name:   "maxamount",
	Usage:  "print the amounts proposed by consecutive presses of MAX",
	Flags:  []cli.Flag{&tokenFlag, &feeModeFlag, &pressesFlag},
	Action: maxAmountAction,
}

func balanceAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	address, err := loadWallet(appConfig)
	if err != nil {
		return err
	}

	overview := appConfig.AccountService().Overview(context.Background(), address)
	printJSON(map[string]string{
		"address":      overview.Address,
		"koin":         mathutil.FormatUnits(overview.KoinBalance),
		"vhp":          mathutil.FormatUnits(overview.VhpBalance),
		"mana":         mathutil.FormatUnits(overview.Mana.Current),
		"max_mana":     mathutil.FormatUnits(overview.Mana.Max),
		"fee_estimate": overview.Estimate.FeeTokenEquivalent,
		"sponsor_mana": mathutil.FormatUnits(overview.SponsorMana),
	})
	return nil
}

func manaAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	address, err := loadWallet(appConfig)
	if err != nil {
		return err
	}

	m := appConfig.AccountService().Mana(context.Background(), address)
	res := map[string]string{
		"current": mathutil.FormatUnits(m.Current),
		"max":     mathutil.FormatUnits(m.Max),
	}
	if !m.IsFull() {
		wait, _ := m.TimeToReach(m.Max, appConfig.Chain.ManaRegenWindow)
		res["full_in"] = domain.FormatDuration(wait)
	}
	printJSON(res)
	return nil
}

func estimateAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	est, err := appConfig.FeeEstimator().EstimateTransferCost(context.Background())
	if err != nil {
		return err
	}
	printJSON(map[string]interface{}{
		"rc_units": est.RcUnits,
		"koin":     est.FeeTokenEquivalent,
	})
	return nil
}

func maxAmountAction(ctx *cli.Context) error {
	token, err := domain.ParseToken(ctx.String(tokenFlag.Name))
	if err != nil {
		return err
	}
	feeMode, err := domain.ParseFeeMode(ctx.String(feeModeFlag.Name))
	if err != nil {
		return err
	}

	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	address, err := loadWallet(appConfig)
	if err != nil {
		return err
	}

	cycle := appConfig.AccountService().MaxAmountCycle(
		context.Background(), address, token, feeMode,
	)
	for i := 1; i <= ctx.Int(pressesFlag.Name); i++ {
		amount := cycle.Press()
		line := fmt.Sprintf("%d: %s %s", i, mathutil.FormatUnits(amount.Amount), token)
		if amount.Warning {
			line += fmt.Sprintf(
				" (exceeds current mana, wait about %s)",
				domain.FormatDuration(amount.WaitTime),
			)
		}
		fmt.Println(line)
	}
	return nil
}
