// Package environment names the deployment environment the binary runs in and
// carries it through context.Context, HTTP requests and structured logs.
//
// Parse normalises configuration values such as "prod" or "stage" to one of
// Development, Staging or Production. Middleware stores the environment on
// every request context, and LoggerExtractor adds it to slog records written
// with a *Context logging method.
//
//	env := environment.Parse(cfg.AppEnv)
//	log := logger.New(logger.WithEnvironment(env, cfg.ServiceName),
//	    logger.WithContextExtractors(environment.LoggerExtractor()))
//	r.Use(environment.Middleware(env))
package environment
