package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
)

const serviceName = "WhitelistService"

const logFieldMaxLen = 40

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the whitelist Service.
// It logs method entry/exit, duration, errors, and redacted request data.
// Caller mistakes (invalid input, duplicates) are logged at warn level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Register wraps the service method with logging
func (ls *logService) Register(
	ctx context.Context,
	req *whitelist.RegisterRequest,
) (entry *whitelist.Entry, err error) {
	start := time.Now()

	var ssid, mac string
	if req != nil {
		ssid, mac = req.SSID, req.MAC
	}

	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.String("ssid", truncateString(ssid, logFieldMaxLen)),
		zap.String("mac", redactMAC(mac)),
	)

	defer func() {
		duration := time.Since(start)

		switch {
		case err == nil:
			ls.logger.Info("Register completed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("entry_id", entry.ID.String()),
				zap.Duration("duration", duration),
			)
		case apperrors.IsInternalError(err):
			ls.logger.Error("Register failed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		default:
			ls.logger.Warn("Register rejected",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("category", apperrors.CategoryOf(err).String()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.Register(ctx, req)
}

// List wraps the service method with logging
func (ls *logService) List(ctx context.Context) (entries []*whitelist.Entry, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("List failed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("List completed",
			zap.String("service", serviceName),
			zap.String("method", "List"),
			zap.Int("count", len(entries)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.List(ctx)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}

// redactMAC keeps the vendor prefix (first three octets) of a MAC address.
func redactMAC(mac string) string {
	if mac == "" {
		return "<empty>"
	}
	if len(mac) == 17 {
		return mac[:8] + ":xx:xx:xx"
	}
	return fmt.Sprintf("<%d bytes>", len(mac))
}
