package cmd

import (
	"fmt"
	"net/http"

	"cosmosexplorer/internal/chainapi"
	"cosmosexplorer/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configFile string
	envFile    string
}

// NewRootCmd builds the explorer command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "explorer",
		Short:         "Browse and operate a Cosmos chain through its REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env", "", "path to a .env file")

	root.AddCommand(
		newServeCmd(opts),
		newBlocksCmd(opts),
		newTransactionsCmd(opts),
		newStatusCmd(opts),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) load() (config.App, error) {
	cfg, err := config.NewApp(o.configFile, o.envFile)
	if err != nil {
		return config.App{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newClient(logger *zap.SugaredLogger, cfg config.App) *chainapi.Client {
	return chainapi.NewClient(logger, cfg.API.BaseURL, &http.Client{Timeout: cfg.APITimeout()})
}
