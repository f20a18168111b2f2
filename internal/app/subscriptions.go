package app

import (
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/notify"
)

// onConfigChange applies a reloaded configuration to the running
// executors.
func (app *Application) onConfigChange(change notify.Change) {
	switch change.Type {
	case notify.ChangeRejected:
		app.metrics.RecordReloadRejected()
		app.logger.Error("ignoring config change, keeping previous bindings: %v", change.Err)
	case notify.ChangeReload:
		cfg, ok := change.New.(*config.Config)
		if !ok || cfg == nil {
			return
		}
		app.metrics.RecordReload()
		app.applyConfig(cfg)
	}
}

// applyConfig swaps bindings into every executor whose backend and device
// are unchanged at the same position. Anything structural needs a restart.
func (app *Application) applyConfig(cfg *config.Config) {
	for _, w := range cfg.Warnings {
		app.logger.Warn("%s", w)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if len(cfg.Executors) != len(app.executors) {
		app.logger.Warn("config now lists %d executors, %d running; restart to apply",
			len(cfg.Executors), len(app.executors))
	}

	updated := 0
	for i, ex := range app.executors {
		if i >= len(cfg.Executors) {
			break
		}
		next := cfg.Executors[i]
		if next.Identity() != ex.spec.Identity() {
			app.logger.Warn("%s changed from %s to %s; restart to apply",
				ex.name, ex.spec.Identity(), next.Identity())
			continue
		}
		if next.Retry != ex.spec.Retry {
			ex.log.Warn("retry setting changed; restart to apply")
		}
		ex.loop.SetBindings(next.Bindings)
		ex.spec.Bindings = next.Bindings
		updated++
	}

	app.logger.Info("reloaded %s, updated %d of %d executors", cfg.Path, updated, len(app.executors))
}
