// Package requestid tags every HTTP request with an identifier that follows
// it through the context and into log records.
//
// Middleware keeps a well-formed X-Request-ID sent by the client and otherwise
// generates a UUID. FromContext returns the id, and LoggerExtractor plugs it
// into logger.WithContextExtractors so every *Context log call carries a
// request_id attribute.
package requestid
