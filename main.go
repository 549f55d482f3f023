package main

// Interactive shopping cart:
// 1. Add item (fruit, vegetable, canned)
// 2. Remove item by name
// 3. Save cart to file
// 4. Restore cart from file
// 5. Display cart
// 6. Exit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cart-manager/config"
	"cart-manager/handler"
	"cart-manager/service"
	"cart-manager/store"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires the program together and returns the process exit code: 0 after
// Exit or end of input, 1 for any startup or input failure.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// --- Logger (stderr, so it never mixes with the menu) ---
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.OutputPaths = []string{"stderr"}
	base, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(stderr, "building logger:", err)
		return 1
	}
	defer base.Sync()
	logger := base.With(zap.String("session", uuid.NewString()))

	// --- Store ---
	st, err := store.Open(cfg.Store, cfg.File)
	if err != nil {
		logger.Error("opening store", zap.String("driver", cfg.Store), zap.String("path", cfg.File), zap.Error(err))
		return 1
	}
	defer st.Close()

	// --- Service ---
	svc := service.NewService(st, logger)
	var serviceInterface service.ServiceInterface = svc

	// --- Handler ---
	h := handler.NewHandler(serviceInterface, stdin, stdout, logger)

	logger.Info("cart started", zap.String("driver", cfg.Store), zap.String("path", st.Path()))
	if err := h.Run(); err != nil {
		logger.Error("reading input", zap.Error(err))
		return 1
	}
	logger.Info("cart exited")
	return 0
}
