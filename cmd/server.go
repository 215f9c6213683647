package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cosmosexplorer/internal/config"
	"cosmosexplorer/internal/explorer"
	"cosmosexplorer/internal/http/handler"
	"cosmosexplorer/internal/http/handler/middleware"
	"cosmosexplorer/internal/http/payload"
	"cosmosexplorer/internal/http/server"
	"cosmosexplorer/internal/notify"
	"cosmosexplorer/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var _ handler.ExplorerService = (*explorer.Explorer)(nil)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server and the pollers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := log.NewZapLogger("explorer", log.ParseLevel(cfg.Logger.Level))
			defer func() { _ = logger.Sync() }()

			return Start(cmd.Context(), logger, cfg)
		},
	}
}

// Start wires the explorer behind the HTTP server and blocks until a
// shutdown signal arrives or the server fails.
func Start(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) error {
	client := newClient(logger.Named("chainapi"), cfg)

	bus := notify.NewBus(logger.Named("notify"), cfg.NotifyTTL())
	defer bus.Close()

	exp := explorer.New(logger, client, bus, explorer.Options{
		DashboardBlocks:       cfg.Pages.DashboardBlocks,
		DashboardTransactions: cfg.Pages.DashboardTransactions,
		BlocksPage:            cfg.Pages.Blocks,
		TransactionsPage:      cfg.Pages.Transactions,
		PollInterval:          cfg.PollInterval(),
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exp.Start(ctx)
	defer exp.Stop()

	// handler
	explorerHdlr := handler.NewExplorerHandler(
		logger.Named("handler"),
		payload.Decoder{},
		exp,
		bus)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	registerRoutes(mux, explorerHdlr)

	logger.Infow("explorer starting",
		"api", cfg.API.BaseURL,
		"port", cfg.Server.Port,
		"poll_interval", cfg.PollInterval())

	srv := server.NewHTTP(logger, hdlr, cfg.Server.Port)
	return run(srv)
}

func registerRoutes(mux *http.ServeMux, h *handler.ExplorerHandler) {
	mux.HandleFunc(handler.GetDashboard, h.HandleGetDashboard)
	mux.HandleFunc(handler.GetBlocks, h.HandleGetBlocks)
	mux.HandleFunc(handler.LoadMoreBlocks, h.HandleLoadMoreBlocks)
	mux.HandleFunc(handler.GetLatestBlock, h.HandleGetLatestBlock)
	mux.HandleFunc(handler.GetBlock, h.HandleGetBlock)
	mux.HandleFunc(handler.GetTransactions, h.HandleGetTransactions)
	mux.HandleFunc(handler.LoadMoreTransactions, h.HandleLoadMoreTransactions)
	mux.HandleFunc(handler.GetPendingTransactions, h.HandleGetPendingTransactions)
	mux.HandleFunc(handler.CreateTransfer, h.HandleCreateTransfer)
	mux.HandleFunc(handler.EstimateTransferFee, h.HandleEstimateTransferFee)
	mux.HandleFunc(handler.GetWallets, h.HandleGetWallets)
	mux.HandleFunc(handler.CreateWallet, h.HandleCreateWallet)
	mux.HandleFunc(handler.GetWallet, h.HandleGetWallet)
	mux.HandleFunc(handler.DeleteWallet, h.HandleDeleteWallet)
	mux.HandleFunc(handler.GetMining, h.HandleGetMining)
	mux.HandleFunc(handler.GetMiner, h.HandleGetMiner)
	mux.HandleFunc(handler.RegisterMiner, h.HandleRegisterMiner)
	mux.HandleFunc(handler.StartMining, h.HandleStartMining)
	mux.HandleFunc(handler.StopMining, h.HandleStopMining)
	mux.HandleFunc(handler.UnregisterMiner, h.HandleUnregisterMiner)
	mux.HandleFunc(handler.GetTokens, h.HandleGetTokens)
	mux.HandleFunc(handler.TokenOperation, h.HandleTokenOperation)
	mux.HandleFunc(handler.GetNotifications, h.HandleGetNotifications)
	mux.HandleFunc(handler.DismissNotification, h.HandleDismissNotification)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		_ = server.Shutdown()
		return err
	}
	if sdErr := server.Shutdown(); sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	return nil
}
