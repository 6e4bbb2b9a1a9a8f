package utils

import (
	"log"
	"strings"
	"unicode"

	"github.com/anoixa/photo-album/config"
)

func SanitizeLogMessage(msg string) string {
	var sb strings.Builder
	for _, r := range msg {
		if r == 10 || r == 9 {
			sb.WriteRune(r)
		} else if unicode.IsPrint(r) || unicode.IsGraphic(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeLogFilename 清洗并截断用于日志输出的文件名
func SanitizeLogFilename(filename string) string {
	if len(filename) > 50 {
		filename = filename[:50] + "..."
	}
	return SanitizeLogMessage(filename)
}

// LogIfDev 仅在开发构建下输出日志
func LogIfDev(msg string) {
	if config.CommitHash == "n/a" {
		log.Println(msg)
	}
}

// LogIfDevf 仅在开发构建下输出格式化日志
func LogIfDevf(format string, args ...interface{}) {
	if config.CommitHash == "n/a" {
		log.Printf(format, args...)
	}
}
