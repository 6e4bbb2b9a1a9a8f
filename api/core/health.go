package core

import (
	"github.com/anoixa/photo-album/database"
)

// checkDatabaseHealth 检查数据库连通性
func checkDatabaseHealth(provider database.Provider) string {
	if provider == nil {
		return "not initialized"
	}

	if err := provider.Ping(); err != nil {
		return "unavailable: " + err.Error()
	}
	return "ok"
}
