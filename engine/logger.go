package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	// CurrentLogLevel controls what messages are logged.
	// Set to LogLevelOff to eliminate logging overhead entirely.
	CurrentLogLevel = LogLevelInfo
)

func SetLogLevel(level LogLevel) { CurrentLogLevel = level }
func GetLogLevel() LogLevel      { return CurrentLogLevel }

func shouldLog(level LogLevel) bool {
	return CurrentLogLevel >= level
}

// Logger handles file-based logging for one category of simulator events.
type Logger struct {
	file   *os.File
	logger *log.Logger
	mutex  sync.Mutex
}

// LoggerManager manages the category-specific loggers used by the simulator.
type LoggerManager struct {
	simLogger    *Logger
	entityLogger *Logger
	replayLogger *Logger
	mutex        sync.Mutex
}

var (
	loggerManager *LoggerManager
	once          sync.Once
)

// InitLoggers initializes the sim/entity/replay loggers under logs/.
func InitLoggers(baseFilename string) error {
	var err error
	once.Do(func() {
		loggerManager = &LoggerManager{}

		logsDir := "logs"
		if err = os.MkdirAll(logsDir, 0755); err != nil {
			return
		}

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		baseName := baseFilename
		if ext := filepath.Ext(baseFilename); ext != "" {
			baseName = baseFilename[:len(baseFilename)-len(ext)]
		}

		simLogPath := filepath.Join(logsDir, fmt.Sprintf("%s_sim_%s.log", baseName, timestamp))
		if loggerManager.simLogger, err = createLogger(simLogPath); err != nil {
			return
		}

		entityLogPath := filepath.Join(logsDir, fmt.Sprintf("%s_entity_%s.log", baseName, timestamp))
		if loggerManager.entityLogger, err = createLogger(entityLogPath); err != nil {
			return
		}

		replayLogPath := filepath.Join(logsDir, fmt.Sprintf("%s_replay_%s.log", baseName, timestamp))
		if loggerManager.replayLogger, err = createLogger(replayLogPath); err != nil {
			return
		}

		loggerManager.simLogger.LogInfo(fmt.Sprintf("=== Sim Logger Initialized - Log file: %s ===", simLogPath))
		loggerManager.entityLogger.LogInfo(fmt.Sprintf("=== Entity Logger Initialized - Log file: %s ===", entityLogPath))
		loggerManager.replayLogger.LogInfo(fmt.Sprintf("=== Replay Logger Initialized - Log file: %s ===", replayLogPath))
	})
	return err
}

func createLogger(logPath string) (*Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

// GetLoggerManager returns the singleton logger manager, initializing it with
// default file names on first use.
func GetLoggerManager() *LoggerManager {
	if loggerManager == nil {
		InitLoggers("nsim")
	}
	return loggerManager
}

func (lm *LoggerManager) Sim() *Logger    { return lm.simLogger }
func (lm *LoggerManager) Entity() *Logger { return lm.entityLogger }
func (lm *LoggerManager) Replay() *Logger { return lm.replayLogger }

func (l *Logger) LogInfo(message string)  { l.log(LogLevelInfo, "INFO", message) }
func (l *Logger) LogDebug(message string) { l.log(LogLevelDebug, "DEBUG", message) }
func (l *Logger) LogWarn(message string)  { l.log(LogLevelWarn, "WARN", message) }
func (l *Logger) LogError(message string) { l.log(LogLevelError, "ERROR", message) }

func (l *Logger) log(level LogLevel, tag, message string) {
	if !shouldLog(level) {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.logger != nil {
		l.logger.Printf("[%s] %s", tag, message)
	}
}

// Close closes the log file. Safe to call more than once.
func (l *Logger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.file != nil {
		l.logger.Printf("[INFO] === Logger Closing ===")
		l.file.Sync()
		err := l.file.Close()
		l.file = nil
		l.logger = nil
		return err
	}
	return nil
}

// CloseAllLoggers closes every category logger managed by lm.
func (lm *LoggerManager) CloseAllLoggers() error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()
	var lastErr error
	for _, l := range []*Logger{lm.simLogger, lm.entityLogger, lm.replayLogger} {
		if l != nil {
			if err := l.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}
