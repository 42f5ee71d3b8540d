package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kwallet-network/kwallet/internal/config"
	"github.com/kwallet-network/kwallet/internal/core/application"
	dbbadger "github.com/kwallet-network/kwallet/internal/infrastructure/storage/db/badger"
	"github.com/kwallet-network/kwallet/pkg/stats"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	// registry collects the rpc metrics when stats are enabled, statsFile
	// is where they are dumped once the command completes.
	registry  = prometheus.NewRegistry()
	statsFile string
)

var passwordFlag = cli.StringFlag{
	Name:    "password",
	Aliases: []string{"p"},
	Usage:   "password of the wallet store, overrides KWALLET_STORE_PASSWORD",
}

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "kwallet"
	app.Usage = "Koinos wallet with mana aware and sponsored transfers"
	app.Flags = []cli.Flag{&passwordFlag}
	app.Commands = append(
		app.Commands,
		&create,
		&importWallet,
		&showAddress,
		&showSeed,
		&exportKey,
		&deleteWallet,
		&balance,
		&mana,
		&estimate,
		&maxamount,
		&send,
		&configCmd,
	)

	app.After = dumpStats

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

// getAppConfig loads the env configuration and returns the service
// container, with the rpc client pointed to the stored endpoint.
func getAppConfig(ctx *cli.Context) (*application.Config, func(), error) {
	if err := config.InitConfig(); err != nil {
		return nil, nil, err
	}
	if password := ctx.String(passwordFlag.Name); password != "" {
		config.Set(config.StorePasswordKey, password)
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbType := config.GetString(config.DBTypeKey)
	var encryptionKey []byte
	if password := config.GetString(config.StorePasswordKey); password != "" &&
		dbType == application.DBBadger {
		key, err := dbbadger.EncryptionKey(dbbadger.EncryptionKeyOpts{
			Datadir:  config.GetDatadir(),
			Password: password,
		})
		if err != nil {
			return nil, nil, err
		}
		encryptionKey = key
	}

	var registerer prometheus.Registerer
	if config.GetBool(config.EnableStatsKey) {
		registerer = registry
		statsFile = config.GetStatsFile()
	}

	appConfig := &application.Config{
		DBType:               dbType,
		Datadir:              config.GetDbDir(),
		EncryptionKey:        encryptionKey,
		RpcURL:               config.GetString(config.RpcURLKey),
		RpcRequestsPerSecond: config.GetInt(config.RpcRequestsPerSecondKey),
		Registerer:           registerer,
		Chain: application.ChainConfig{
			KoinContract:         config.GetString(config.KoinContractKey),
			VhpContract:          config.GetString(config.VhpContractKey),
			SponsorAddress:       config.GetString(config.SponsorAddressKey),
			ProbeAddress:         config.GetString(config.ProbeAddressKey),
			SponsorManaThreshold: config.GetSponsorManaThreshold(),
			ManaRegenWindow:      config.GetDuration(config.ManaRegenWindowKey),
		},
		Transfer: application.TransferConfig{
			RcBump:              config.GetUint64(config.RcBumpKey),
			MaxSponsorAttempts:  config.GetInt(config.MaxSponsorAttemptsKey),
			WaitForConfirmation: config.GetBool(config.WaitForConfirmationKey),
			ConfirmationTimeout: config.GetDuration(config.ConfirmationTimeoutKey),
		},
	}
	if err := appConfig.Validate(); err != nil {
		return nil, nil, err
	}
	cleanup := func() { appConfig.Close() }

	if _, err := appConfig.SettingsService().RpcURL(context.Background()); err != nil {
		cleanup()
		return nil, nil, err
	}
	return appConfig, cleanup, nil
}

func dumpStats(_ *cli.Context) error {
	if statsFile == "" {
		return nil
	}
	stats.LogMemoryStatistics()
	if err := stats.DumpMetrics(statsFile, registry); err != nil {
		log.WithError(err).Warn("failed to dump stats")
	}
	return nil
}

// loadWallet returns the address of the stored wallet.
var errNoWallet = errors.New("no wallet found: create or import one first")

func loadWallet(appConfig *application.Config) (string, error) {
	info, err := appConfig.WalletService().LoadWallet(context.Background())
	if err != nil {
		return "", err
	}
	if !info.HasWallet {
		return "", errNoWallet
	}
	return info.Address, nil
}

func printJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to encode response: ", err)
		return
	}
	fmt.Println(string(buf))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[kwallet] %v\n", err)
	}
	os.Exit(1)
}
