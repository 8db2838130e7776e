// Package catalogdb 封装 catalog schema 的 SQL 查询，接口形态与 sqlc 产物保持一致：
// 每条语句一个常量与一个方法，事务内通过 WithTx 切换执行者。
package catalogdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX 同时由 *pgxpool.Pool 与 pgx.Tx 实现。
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// New 构造 Queries。
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries 持有执行者。
type Queries struct {
	db DBTX
}

// WithTx 返回绑定到事务的 Queries。
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
