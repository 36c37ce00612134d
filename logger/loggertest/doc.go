// Package loggertest exposes a gomock implementation of logger.Logger
// for asserting what a Registry logs.
//
//go:generate mockgen -destination=mock_logger.go -package=loggertest github.com/xy-planning-network/smartenum/logger Logger
package loggertest
