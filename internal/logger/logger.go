// Package logger wraps zap behind a small fields-based API so the rest of
// the service never imports zap directly.
package logger

import (
	"go.uber.org/zap"
)

var sugar = zap.NewNop().Sugar()

func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
	sugar.Infow("logger initialized")
}

func kvs(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func Info(msg string, fields map[string]any) {
	sugar.Infow(msg, kvs(fields)...)
}

func Warn(msg string, fields map[string]any) {
	sugar.Warnw(msg, kvs(fields)...)
}

func Error(msg string, fields map[string]any) {
	sugar.Errorw(msg, kvs(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	sugar.Fatalw(msg, kvs(fields)...)
}
