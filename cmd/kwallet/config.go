package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

const rpcSetting = "rpc"

var configCmd = cli.Command{
	Name:  "config",
	Usage: "get or set the wallet settings",
	Subcommands: []*cli.Command{
		{
			Name:   "get",
			Usage:  "print the value of <key>, only rpc is supported",
			Action: configGetAction,
		},
		{
			Name:   "set",
			Usage:  "set <key> to <value>, only rpc is supported",
			Action: configSetAction,
		},
	},
}

func configGetAction(ctx *cli.Context) error {
	if ctx.Args().Get(0) != rpcSetting {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	url, err := appConfig.SettingsService().RpcURL(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func configSetAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 || ctx.Args().Get(0) != rpcSetting {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	url := ctx.Args().Get(1)
	if err := appConfig.SettingsService().SetRpcURL(context.Background(), url); err != nil {
		return err
	}
	fmt.Printf("%s %s has been set\n", rpcSetting, url)
	return nil
}
