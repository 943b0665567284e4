package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// AccessLog 记录每个请求的方法、路径、状态码与耗时。
func AccessLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := []interface{}{
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				}
				if id := chimw.GetReqID(r.Context()); id != "" {
					fields = append(fields, "request_id", id)
				}
				if status >= http.StatusInternalServerError {
					log.Warnw("request", fields...)
					return
				}
				log.Infow("request", fields...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
