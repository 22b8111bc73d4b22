// Package logger содержит общий логгер сервера.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и, опционально, в stdout, а также удобный метод для логирования HTTP-запросов.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile: путь к файлу логов по умолчанию.
var DefaultFile = filepath.Join("runtime", "logs", "http.log")

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// Options: параметры логгера (берутся из секции log конфига сервера).
type Options struct {
	Level  string // debug|info|warn|error
	Format string // json|console
	File   string // путь к файлу, пусто: DefaultFile
	Stdout bool   // дублировать вывод в stdout
}

// NewHTTPLogger создаёт файловый zap-логгер с настройками по умолчанию.
//
// Логи записываются в файл runtime/logs/http.log.
func NewHTTPLogger() *HTTPLogger {
	return New(Options{})
}

// New создаёт zap-логгер по переданным опциям.
//
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(opts Options) *HTTPLogger {
	logFile := opts.File
	if logFile == "" {
		logFile = DefaultFile
	}
	_ = os.MkdirAll(filepath.Dir(logFile), 0755)

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // дней
		Compress:   true,
	})
	if opts.Stdout {
		writer = zapcore.NewMultiWriteSyncer(writer, zapcore.Lock(os.Stdout))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	if opts.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, parseLevel(opts.Level))

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri: параметры запроса,
// status: HTTP-статус ответа,
// responseSize: размер ответа в байтах,
// duration: длительность обработки запроса в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// parseLevel переводит строковый уровень в zapcore.Level, по умолчанию info.
func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || level == "" {
		return zap.InfoLevel
	}
	return lvl
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
