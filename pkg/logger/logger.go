package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init работает с настройками по умолчанию, поэтому пакеты
// могут логировать и без явной инициализации (например, в тестах).
var Log = logrus.New()

// Init инициализирует глобальный логгер. Вызывается один раз при
// старте приложения. levelOverride (из флага командной строки) имеет
// приоритет над переменной окружения LOG_LEVEL; пустая строка
// означает "возьми из окружения".
func Init(levelOverride string) {
	Log = logrus.New()

	// 1. Уровень логирования: флаг > LOG_LEVEL > "info".
	logLevel := levelOverride
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать логи (в стандартный вывод).
	Log.SetOutput(os.Stdout)
}
