package cli

import (
	"github.com/spf13/cobra"

	"go-dominance/internal/api"
	"go-dominance/internal/config"
)

var (
	serveAddr       string
	serveAllowLocal bool
	serveNoMetrics  bool
	serveNoSwagger  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP API",
	Long: `Start the HTTP API. Settings come from DOMINANCE_* environment variables
(and a .env file); flags override them.

The server provides:
- POST /api/v1/dominance and its upload, export, chart and map variants
- POST /api/v1/profile and /api/v1/ranking
- GET /api/v1/itinerary and /api/v1/samples
- Prometheus metrics at /metrics and Swagger UI at /swagger/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("addr") {
			cfg.Addr = serveAddr
		}
		if flags.Changed("allow-local-sources") {
			cfg.AllowLocalSources = serveAllowLocal
		}
		if serveNoMetrics {
			cfg.EnableMetrics = false
		}
		if serveNoSwagger {
			cfg.EnableSwagger = false
		}

		return api.NewRouter(cfg).Start(cfg.Addr, cfg.ShutdownTimeout)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveAllowLocal, "allow-local-sources", false, "accept file and sqlite sources in requests")
	serveCmd.Flags().BoolVar(&serveNoMetrics, "no-metrics", false, "disable /metrics")
	serveCmd.Flags().BoolVar(&serveNoSwagger, "no-swagger", false, "disable /swagger/")
}
