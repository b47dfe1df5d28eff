package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// WalletLedger implements the escrow ledger over a single balances table.
//
// Schema:
//
//	CREATE TABLE wallets (
//	    account_id UUID PRIMARY KEY,
//	    balance    NUMERIC NOT NULL DEFAULT 0 CHECK (balance >= 0)
//	);
//
// Withdraw is a single conditional UPDATE, so two concurrent withdrawals can
// never overdraw an account even without coordinator serialization.
type WalletLedger struct {
	db     *pgxpool.Pool
	symbol string
	logger *slog.Logger
}

func NewWalletLedger(db *pgxpool.Pool, symbol string, logger *slog.Logger) *WalletLedger {
	return &WalletLedger{db: db, symbol: symbol, logger: logger}
}

func (l *WalletLedger) HasBalance(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool {
	var enough bool
	err := l.db.QueryRow(ctx,
		`SELECT balance >= $2 FROM wallets WHERE account_id = $1`,
		account, amount,
	).Scan(&enough)
	if err != nil {
		l.logger.Warn("balance check failed", "account", account, "error", err)
		return false
	}
	return enough
}

func (l *WalletLedger) Withdraw(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool {
	tag, err := l.db.Exec(ctx,
		`UPDATE wallets SET balance = balance - $2 WHERE account_id = $1 AND balance >= $2`,
		account, amount,
	)
	if err != nil {
		l.logger.Error("withdrawal failed", "account", account, "amount", amount, "error", err)
		return false
	}
	return tag.RowsAffected() == 1
}

func (l *WalletLedger) Deposit(ctx context.Context, account uuid.UUID, amount decimal.Decimal) bool {
	_, err := l.db.Exec(ctx,
		`INSERT INTO wallets (account_id, balance) VALUES ($1, $2)
		 ON CONFLICT (account_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`,
		account, amount,
	)
	if err != nil {
		l.logger.Error("deposit failed", "account", account, "amount", amount, "error", err)
		return false
	}
	return true
}

func (l *WalletLedger) Format(amount decimal.Decimal) string {
	return l.symbol + amount.StringFixed(2)
}

// DisabledLedger is the no-op economy mode: balance checks and withdrawals
// always fail, deposits silently succeed.
type DisabledLedger struct {
	symbol string
}

func NewDisabledLedger(symbol string) *DisabledLedger {
	return &DisabledLedger{symbol: symbol}
}

func (l *DisabledLedger) HasBalance(context.Context, uuid.UUID, decimal.Decimal) bool { return false }
func (l *DisabledLedger) Withdraw(context.Context, uuid.UUID, decimal.Decimal) bool   { return false }
func (l *DisabledLedger) Deposit(context.Context, uuid.UUID, decimal.Decimal) bool    { return true }

func (l *DisabledLedger) Format(amount decimal.Decimal) string {
	return l.symbol + amount.StringFixed(2)
}
