package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var (
	toFlag = cli.StringFlag{
		Name:     "to",
		Usage:    "recipient address",
		Required: true,
	}
	amountFlag = cli.StringFlag{
		Name:     "amount",
		Usage:    "amount to send, with up to 8 decimals",
		Required: true,
	}
)

var send = cli.Command{
	Name:   "send",
	Usage:  "transfer KOIN or VHP to another address",
	Flags:  []cli.Flag{&toFlag, &amountFlag, &tokenFlag, &feeModeFlag},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
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

	from, err := loadWallet(appConfig)
	if err != nil {
		return err
	}

	result, err := appConfig.TransferService().Transfer(
		context.Background(), domain.TransferIntent{
			Token:   token,
			From:    from,
			To:      ctx.String(toFlag.Name),
			Amount:  ctx.String(amountFlag.Name),
			FeeMode: feeMode,
		},
	)
	if err != nil {
		var manaErr *domain.InsufficientManaError
		if errors.As(err, &manaErr) {
			return manaErr
		}
		return err
	}

	printJSON(result)
	if result.Sponsored {
		fmt.Println("fees paid by the sponsor")
	}
	return nil
}
