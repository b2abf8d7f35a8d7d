// Command seeder provisions the demo cards, plus optional synthetic cards for load tests,
// into the configured Postgres database.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/platform/storage"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// syntheticPrefix keeps generated cards in the accepted range and away from the demo cards.
const syntheticPrefix = "4000"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	synthetic := pflag.Int("synthetic", 0, "number of synthetic cards to provision (PIN 0000)")
	balance := pflag.String("balance", "100.00", "initial balance of each synthetic card")
	pflag.Parse()

	if err := run(logger, *synthetic, *balance); err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, synthetic int, balance string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StoragePostgres {
		return fmt.Errorf("seeder needs STORAGE_DRIVER=%s, got %s", config.StoragePostgres, cfg.StorageDriver)
	}
	initial, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid --balance: %w", err)
	}

	keys, err := cardcrypto.NewDerivedKeyProvider(cfg.CardKeySecret, cfg.CardKeySalt, cfg.CardKeyID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repos, closeStorage, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	svcs := services.NewServiceContainer(repos, cardcrypto.NewAESGCMCipher(keys))

	logger.Info("--- Seeding demo cards ---")
	if err := svcs.Provisioning.SeedDemoData(ctx); err != nil {
		return err
	}

	created := 0
	for i := 0; i < synthetic; i++ {
		card := fmt.Sprintf("%s%012d", syntheticPrefix, i+1)
		_, err := svcs.Account.GetAccountView(ctx, card)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		_, err = svcs.Provisioning.ProvisionAccount(ctx, dto.ProvisionAccountRequest{
			CardNumber:     card,
			PIN:            "0000",
			InitialBalance: initial,
			CustomerName:   fmt.Sprintf("Synthetic %d", i+1),
			Username:       fmt.Sprintf("synthetic%d", i+1),
		})
		if err != nil {
			return fmt.Errorf("provisioning %s: %w", cardcrypto.MaskTail(card), err)
		}
		logger.Debug("Provisioned card", slog.String("card", cardcrypto.MaskPartial(card)))
		created++
	}
	if synthetic > 0 {
		logger.Info("Provisioned synthetic cards", slog.Int("created", created), slog.Int("skipped", synthetic-created))
	}
	return nil
}
