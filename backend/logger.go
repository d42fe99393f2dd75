package main

import "go.uber.org/zap"

func NewLogger(development bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
