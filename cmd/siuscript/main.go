package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-siuscript/pkg/registry"
	"github.com/goliatone/go-siuscript/pkg/script"
	"github.com/goliatone/go-siuscript/pkg/sink"
	"github.com/goliatone/go-siuscript/pkg/tui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("siuscript: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen, err := script.New(script.WithRegistry(registry.Default()))
	if err != nil {
		log.Fatalf("init generator: %v", err)
	}

	session, err := tui.NewSession(gen,
		tui.WithSink(sink.NewFileSink()),
		tui.WithPromptDriver(tui.NewSurveyDriver()),
	)
	if err != nil {
		log.Fatalf("init session: %v", err)
	}

	report, err := session.Run(ctx)
	switch {
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled), errors.Is(err, tui.ErrGenerationAbandoned):
		return
	case err != nil:
		log.Fatalf("%v", err)
	}

	for _, outcome := range report.Outcomes {
		if outcome.Err != nil {
			os.Exit(1)
		}
	}
}
