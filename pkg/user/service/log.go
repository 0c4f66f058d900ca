package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

const serviceName = "AuthService"

const (
	logMessageMaxLen     = 64
	signatureDisplaySize = 16
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the auth Service.
// It logs method entry/exit, duration, errors, and sanitized request data.
// Passwords are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

func (ls *logService) finish(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		fields = append(fields, zap.Stringer("category", apperrors.CategoryOf(err)), zap.Error(err))
		if apperrors.IsInternalError(err) {
			ls.logger.Error(method+" failed", fields...)
		} else {
			ls.logger.Warn(method+" rejected", fields...)
		}
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) Register(ctx context.Context, req *user.RegisterRequest) (resp *user.PublicUser, err error) {
	start := time.Now()
	ls.logger.Info("Register started", zap.String("method", "Register"), zap.String("email", req.Email))

	defer func() {
		if err != nil {
			ls.finish("Register", start, err, zap.String("email", req.Email))
			return
		}
		ls.finish("Register", start, nil, zap.Int64("user_id", resp.ID))
	}()

	return ls.svc.Register(ctx, req)
}

func (ls *logService) Login(ctx context.Context, req *user.LoginRequest) (resp *user.LoginResponse, err error) {
	start := time.Now()
	ls.logger.Info("Login started", zap.String("method", "Login"), zap.String("email", req.Email))

	defer func() {
		if err != nil {
			ls.finish("Login", start, err, zap.String("email", req.Email))
			return
		}
		ls.finish("Login", start, nil,
			zap.Int64("user_id", resp.User.ID),
			zap.Time("expires_at", resp.ExpiresAt))
	}()

	return ls.svc.Login(ctx, req)
}

func (ls *logService) Me(ctx context.Context, userID int64) (resp *user.PublicUser, err error) {
	start := time.Now()
	defer func() {
		ls.finish("Me", start, err, zap.Int64("user_id", userID))
	}()
	return ls.svc.Me(ctx, userID)
}

func (ls *logService) VerifySignature(ctx context.Context, req *user.VerifySignatureRequest) (resp *user.PublicUser, err error) {
	start := time.Now()
	ls.logger.Info("VerifySignature started",
		zap.String("method", "VerifySignature"),
		zap.String("email", req.Email),
		zap.String("address", req.Address),
		zap.String("message", truncateString(req.Message, logMessageMaxLen)),
		zap.String("signature", redactSignature(req.Signature)),
	)

	defer func() {
		ls.finish("VerifySignature", start, err,
			zap.String("email", req.Email),
			zap.String("address", req.Address))
	}()

	return ls.svc.VerifySignature(ctx, req)
}

func (ls *logService) RemoveWallet(ctx context.Context, email string) (resp *user.PublicUser, err error) {
	start := time.Now()
	ls.logger.Info("RemoveWallet started", zap.String("method", "RemoveWallet"), zap.String("email", email))

	defer func() {
		ls.finish("RemoveWallet", start, err, zap.String("email", email))
	}()

	return ls.svc.RemoveWallet(ctx, email)
}

func (ls *logService) AddWallet(ctx context.Context, email, address string) (w *user.LinkedWallet, created bool, err error) {
	start := time.Now()
	defer func() {
		ls.finish("AddWallet", start, err,
			zap.String("email", email),
			zap.String("address", address),
			zap.Bool("created", created))
	}()
	return ls.svc.AddWallet(ctx, email, address)
}

func (ls *logService) DeleteWallet(ctx context.Context, email, address string) (err error) {
	start := time.Now()
	defer func() {
		ls.finish("DeleteWallet", start, err, zap.String("email", email), zap.String("address", address))
	}()
	return ls.svc.DeleteWallet(ctx, email, address)
}

func (ls *logService) ListWallets(ctx context.Context, email string) (wallets []*user.LinkedWallet, err error) {
	start := time.Now()
	defer func() {
		ls.finish("ListWallets", start, err, zap.String("email", email), zap.Int("count", len(wallets)))
	}()
	return ls.svc.ListWallets(ctx, email)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// redactSignature shows only signature metadata
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}
