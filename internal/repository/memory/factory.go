// Package memory keeps ledger state in process memory. Nothing survives a
// restart.
package memory

import repo "github.com/baharkarakas/point-ledger/internal/repository"

func NewRepositories() repo.Set {
	return repo.Set{
		Balances:  NewBalances(),
		Histories: NewHistories(),
		AuditLogs: NewAuditLogs(),
	}
}
