package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader はリクエスト ID を運ぶメタデータのキーです。
const RequestIDHeader = "x-request-id"

// LoggingInterceptor はリクエスト ID を割り当て、メソッド・ステータスコード・所要時間を記録します。
// ハンドラには request_id 付きのロガーがコンテキスト経由で渡ります。
func LoggingInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		logger := base.With().
			Str("request_id", requestID).
			Str("method", info.FullMethod).
			Logger()
		ctx = logger.WithContext(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		event := logger.Info()
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unavailable, codes.Unknown:
			event = logger.Error().Err(err)
		default:
			event = logger.Warn().Err(err)
		}
		event.Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Msg("grpc request")

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}
