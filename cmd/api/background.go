package main

import (
	"context"
	"fmt"
	"time"
)

// background runs fn on its own goroutine with a detached context, so a
// finished request does not cancel follow-up work. Panics are logged.
func (app *application) background(name string, fn func(ctx context.Context) error) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "task", name, "error", fmt.Sprint(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			app.logger.Warnw("background task failed", "task", name, "error", err.Error())
			return
		}
		app.logger.Infow("background task done", "task", name)
	}()
}
