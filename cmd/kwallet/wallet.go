package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	mnemonicFlag = cli.StringFlag{
		Name:  "mnemonic",
		Usage: "12 or 24 words seed phrase",
	}
	accountFlag = cli.UintFlag{
		Name:  "account",
		Usage: "account index of the derivation path m/44'/659'/<account>'/0/0",
	}
	wifFlag = cli.StringFlag{
		Name:  "wif",
		Usage: "private key in WIF format",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "print the derivation path along with the address",
	}
	yesFlag = cli.BoolFlag{
		Name:  "yes",
		Usage: "do not ask for confirmation",
	}
)

var create = cli.Command{
	Name:   "create",
	Usage:  "generate a new wallet and print its seed phrase",
	Action: createAction,
}

var importWallet = cli.Command{
	Name:   "import",
	Usage:  "import a wallet from a seed phrase or a private key",
	Flags:  []cli.Flag{&mnemonicFlag, &accountFlag, &wifFlag},
	Action: importAction,
}

var showAddress = cli.Command{
	Name:   "address",
	Usage:  "print the address of the wallet",
	Flags:  []cli.Flag{&verboseFlag},
	Action: addressAction,
}

var showSeed = cli.Command{
	Name:   "seed",
	Usage:  "print the seed phrase of the wallet",
	Action: seedAction,
}

var exportKey = cli.Command{
	Name:   "export-key",
	Usage:  "print the private key of the wallet in WIF format",
	Action: exportKeyAction,
}

var deleteWallet = cli.Command{
	Name:   "delete",
	Usage:  "erase the wallet from this device",
	Flags:  []cli.Flag{&yesFlag},
	Action: deleteAction,
}

func createAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	mnemonic, address, err := appConfig.WalletService().GenerateWallet(
		context.Background(),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(mnemonic)
	fmt.Println()
	fmt.Println("address:", address)
	return nil
}

func importAction(ctx *cli.Context) error {
	mnemonic, wif := ctx.String(mnemonicFlag.Name), ctx.String(wifFlag.Name)
	if (mnemonic == "") == (wif == "") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	walletSvc := appConfig.WalletService()
	var address string
	if mnemonic != "" {
		address, err = walletSvc.ImportFromMnemonic(
			context.Background(), mnemonic, uint32(ctx.Uint(accountFlag.Name)),
		)
	} else {
		address, err = walletSvc.ImportFromWIF(context.Background(), wif)
	}
	if err != nil {
		return err
	}

	fmt.Println("address:", address)
	return nil
}

func addressAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := appConfig.WalletService().LoadWallet(context.Background())
	if err != nil {
		return err
	}
	if !info.HasWallet {
		return errNoWallet
	}

	if !ctx.Bool(verboseFlag.Name) {
		fmt.Println(info.Address)
		return nil
	}
	printJSON(map[string]string{
		"address":         info.Address,
		"derivation_path": info.DerivationPath,
	})
	return nil
}

func seedAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	mnemonic, ok, err := appConfig.WalletService().SeedPhrase(context.Background())
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("wallet was imported from a private key, it has no seed phrase")
	}
	fmt.Println(mnemonic)
	return nil
}

func exportKeyAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := loadWallet(appConfig); err != nil {
		return err
	}
	fmt.Println(appConfig.WalletService().PrivateKey())
	return nil
}

func deleteAction(ctx *cli.Context) error {
	if !ctx.Bool(yesFlag.Name) && !confirm("delete the wallet from this device?") {
		return nil
	}

	appConfig, cleanup, err := getAppConfig(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := appConfig.WalletService().DeleteWallet(context.Background()); err != nil {
		return err
	}
	fmt.Println("wallet deleted")
	return nil
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
