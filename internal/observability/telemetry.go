package observability

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/scout-market/internal/config"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

type closer struct {
	name  string
	close func(context.Context) error
}

// Telemetry owns the optional tracing, profiling and pprof surfaces of the
// API process.
type Telemetry struct {
	logger  *logging.Logger
	closers []closer
}

// Start brings up every enabled surface. On failure the surfaces already
// started are shut down before returning.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "init uptrace")
	}
	t.add("uptrace", shutdownTracing)

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "init pyroscope"), t.Shutdown(ctx))
	}
	t.add("pyroscope", func(context.Context) error { return stopProfiler() })

	pprofSrv, err := StartPprofServer(cfg, logger)
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "start pprof"), t.Shutdown(ctx))
	}
	if pprofSrv != nil {
		t.add("pprof", pprofSrv.Shutdown)
	}

	return t, nil
}

func (t *Telemetry) add(name string, fn func(context.Context) error) {
	t.closers = append(t.closers, closer{name: name, close: fn})
}

// Shutdown closes the surfaces in reverse start order and reports every
// failure.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	for i := len(t.closers) - 1; i >= 0; i-- {
		c := t.closers[i]
		if err := c.close(ctx); err != nil {
			errs = append(errs, errors.Wrapf(err, "shutdown %s", c.name))
			continue
		}
		t.logger.Debug("telemetry surface stopped", "surface", c.name)
	}
	t.closers = nil
	return errors.Join(errs...)
}
