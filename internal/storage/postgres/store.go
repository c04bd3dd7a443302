package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/sheikh-saqib/personal-finance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

type PostgresTransactionStore struct {
	db *sql.DB
}

func NewPostgresTransactionStore(db *sql.DB) *PostgresTransactionStore {
	return &PostgresTransactionStore{
		db: db,
	}
}

func (p *PostgresTransactionStore) Insert(ctx context.Context, userID, title string, amount decimal.Decimal, category string) (models.Transaction, error) {
	const query = `INSERT INTO transactions (user_id, title, amount, category)
	VALUES ($1, $2, $3, $4)
	RETURNING id, user_id, title, amount, category, created_at`

	var tx models.Transaction
	err := p.db.QueryRowContext(ctx, query, userID, title, amount, category).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Title,
		&tx.Amount,
		&tx.Category,
		&tx.CreatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func (p *PostgresTransactionStore) FindByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	// id DESC breaks ties between rows created on the same day.
	const query = `SELECT id, user_id, title, amount, category, created_at FROM transactions
	WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Title, &tx.Amount, &tx.Category, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (p *PostgresTransactionStore) DeleteByID(ctx context.Context, id int64) (models.Transaction, bool, error) {
	const query = `DELETE FROM transactions WHERE id = $1
	RETURNING id, user_id, title, amount, category, created_at`

	var tx models.Transaction
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Title,
		&tx.Amount,
		&tx.Category,
		&tx.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Transaction{}, false, nil
	}
	if err != nil {
		return models.Transaction{}, false, err
	}
	return tx, true, nil
}

func (p *PostgresTransactionStore) SumByUser(ctx context.Context, userID string, filter models.AmountFilter) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`
	switch filter {
	case models.FilterIncome:
		query += ` AND amount > 0`
	case models.FilterExpense:
		query += ` AND amount < 0`
	}

	var sum decimal.Decimal
	if err := p.db.QueryRowContext(ctx, query, userID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

var _ interfaces.TransactionStore = (*PostgresTransactionStore)(nil)
