package middleware

import "net/http"

// Chain folds several middleware into one. The first argument ends up
// outermost, so
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// behaves like
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
