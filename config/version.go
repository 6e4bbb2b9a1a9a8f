package config

// 由构建时 -ldflags 注入，CommitHash 为 "n/a" 时按开发构建处理
var (
	Version    string = "dev"
	CommitHash string = "n/a"
)
