package machrep

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	maxLvl int
)

// InitLoggers sets up the shared logger. logLvl ranges from 1 (errors only)
// to 4 (spam); messages above the configured level are dropped in Log before
// they reach zap.
func InitLoggers(logLvl int) {
	maxLvl = logLvl
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
}

func Log(msgLvl int, printF string, args ...interface{}) {
	if msgLvl > maxLvl || logger == nil {
		return
	}
	switch msgLvl {
	case 1:
		logger.Errorf(printF, args...)
	case 2:
		logger.Infof(printF, args...)
	case 3:
		logger.Debugf(printF, args...)
	case 4:
		logger.Debugf(printF, args...)
	}
}
