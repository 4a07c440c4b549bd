package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hikari-no-yume/dream-sparer/pkg/api"
)

var (
	serveBind   string
	servePort   int
	serveAPIKey string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve a movie's chunk tree over HTTP",
	Long: `Start the inspection server for one movie file: file properties,
chunk metadata, raw payloads and decoded sound headers as JSON/octet-stream,
plus Prometheus metrics on /metrics.

Examples:
  dream-sparer serve movie.dir --port 8080
  dream-sparer serve movie.dir --api-key sekrit --bind 0.0.0.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0])
		if err != nil {
			return err
		}

		serverCfg := api.ServerConfig{
			Bind:   cfg.Server.Bind,
			Port:   cfg.Server.Port,
			APIKey: cfg.Server.APIKey,
		}
		if cmd.Flags().Changed("bind") {
			serverCfg.Bind = serveBind
		}
		if cmd.Flags().Changed("port") {
			serverCfg.Port = servePort
		}
		if cmd.Flags().Changed("api-key") {
			serverCfg.APIKey = serveAPIKey
		}

		return api.Start(f, args[0], serverCfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveBind, "bind", "127.0.0.1", "address to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "require this X-API-Key header on API routes")
	rootCmd.AddCommand(serveCmd)
}
