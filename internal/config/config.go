package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/kwallet-network/kwallet/internal/core/application"
	"github.com/kwallet-network/kwallet/pkg/mathutil"
	"github.com/kwallet-network/kwallet/pkg/rpc"
	"github.com/kwallet-network/kwallet/pkg/wallet"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory where the wallet stores live
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// RpcURLKey is the node endpoint used until one is stored in settings
	RpcURLKey = "RPC_URL"
	// RpcRequestsPerSecondKey paces the requests to the node, 0 disables it
	RpcRequestsPerSecondKey = "RPC_REQUESTS_PER_SECOND"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// StorePasswordKey is the password the wallet store key is derived from.
	// The store is not encrypted if empty.
	StorePasswordKey = "STORE_PASSWORD"
	// KoinContractKey is the address of the KOIN token contract
	KoinContractKey = "KOIN_CONTRACT"
	// VhpContractKey is the address of the VHP token contract
	VhpContractKey = "VHP_CONTRACT"
	// SponsorAddressKey is the account paying the fees of sponsored transfers
	SponsorAddressKey = "SPONSOR_ADDRESS"
	// ProbeAddressKey is the high resource account paying the estimation
	// dry-run of sponsored transfers
	ProbeAddressKey = "PROBE_ADDRESS"
	// SponsorManaThresholdKey is the sponsor mana, in KOIN, above which
	// sponsorship is proposed
	SponsorManaThresholdKey = "SPONSOR_MANA_THRESHOLD"
	// RcBumpKey is the rc limit increment, in base units, between two
	// sponsor dry-runs
	RcBumpKey = "RC_BUMP"
	// MaxSponsorAttemptsKey is the max number of sponsor dry-runs
	MaxSponsorAttemptsKey = "MAX_SPONSOR_ATTEMPTS"
	// WaitForConfirmationKey makes transfers wait for inclusion in a block
	WaitForConfirmationKey = "WAIT_FOR_CONFIRMATION"
	// ConfirmationTimeoutKey bounds the wait for inclusion
	ConfirmationTimeoutKey = "CONFIRMATION_TIMEOUT"
	// ManaRegenWindowKey is the time mana takes to regenerate from 0 to max
	ManaRegenWindowKey = "MANA_REGEN_WINDOW"
	// EnableStatsKey makes every command append the rpc metrics to the
	// stats file in the datadir
	EnableStatsKey = "ENABLE_STATS"

	DbLocation    = "db"
	StatsLocation = "stats"

	defaultKoinContract = "19GYjDBVXU7keLbYvMLazsGQn3GTWHjHkK"
	defaultVhpContract  = "18tWNU7E4yuQzz7hMVpceb9ixmaWLVyQsr"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("kwallet", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("KWALLET")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(RpcURLKey, rpc.DefaultURL)
	vip.SetDefault(RpcRequestsPerSecondKey, 10)
	vip.SetDefault(DBTypeKey, application.DBBadger)
	vip.SetDefault(KoinContractKey, defaultKoinContract)
	vip.SetDefault(VhpContractKey, defaultVhpContract)
	vip.SetDefault(SponsorManaThresholdKey, "1")
	vip.SetDefault(RcBumpKey, application.DefaultRcBump)
	vip.SetDefault(MaxSponsorAttemptsKey, application.DefaultMaxSponsorAttempts)
	vip.SetDefault(WaitForConfirmationKey, false)
	vip.SetDefault(ConfirmationTimeoutKey, application.DefaultConfirmationTimeout)
	vip.SetDefault(ManaRegenWindowKey, 5*24*time.Hour)
	vip.SetDefault(EnableStatsKey, false)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetSponsorManaThreshold returns the sponsor threshold in base units.
func GetSponsorManaThreshold() uint64 {
	threshold, _ := mathutil.ParseUnits(GetString(SponsorManaThresholdKey))
	return threshold
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	dbType := GetString(DBTypeKey)
	if _, ok := application.SupportedDBType[dbType]; !ok {
		return fmt.Errorf("db type %s is not supported", dbType)
	}

	for _, key := range []string{KoinContractKey, VhpContractKey} {
		if !wallet.IsValidAddress(GetString(key)) {
			return fmt.Errorf("%s must be a valid address", key)
		}
	}

	sponsor, probe := GetString(SponsorAddressKey), GetString(ProbeAddressKey)
	if (sponsor == "") != (probe == "") {
		return fmt.Errorf(
			"sponsorship requires both %s and %s when enabled",
			SponsorAddressKey, ProbeAddressKey,
		)
	}
	for _, addr := range []string{sponsor, probe} {
		if addr != "" && !wallet.IsValidAddress(addr) {
			return fmt.Errorf("invalid sponsorship address %s", addr)
		}
	}

	if _, err := mathutil.ParseUnits(GetString(SponsorManaThresholdKey)); err != nil {
		return fmt.Errorf("%s: %s", SponsorManaThresholdKey, err)
	}
	if GetInt(MaxSponsorAttemptsKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", MaxSponsorAttemptsKey)
	}
	if GetUint64(RcBumpKey) == 0 {
		return fmt.Errorf("%s must be greater than zero", RcBumpKey)
	}
	if GetDuration(ManaRegenWindowKey) <= 0 {
		return fmt.Errorf("%s must be a positive duration", ManaRegenWindowKey)
	}

	return nil
}

func GetStatsFile() string {
	return filepath.Join(GetDatadir(), StatsLocation)
}

func initDatadir() error {
	if GetString(DBTypeKey) == application.DBBadger {
		if err := makeDirectoryIfNotExists(GetDbDir()); err != nil {
			return err
		}
	}
	if GetBool(EnableStatsKey) {
		return makeDirectoryIfNotExists(GetDatadir())
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
