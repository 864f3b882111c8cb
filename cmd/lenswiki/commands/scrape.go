package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"lenswiki/lib/configutil"
	"lenswiki/lib/restyutil"
	"lenswiki/lib/scrapers/voigtlander"
	"lenswiki/lib/serviceutil"
	"lenswiki/lib/telemetry"
	"lenswiki/lib/timezone"
	"lenswiki/services/lenstables"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl  string `json:"base_url"`
	CacheDir string `json:"cache_dir"`
	Output   string `json:"output"`
}

var cacheDir *string
var output *string

func init() {
	cacheDir = rootCmd.PersistentFlags().String("cache-dir", "", "The directory pages are cached in, defaults to ./cache.")
	output = rootCmd.PersistentFlags().String("output", "", "The file tables are written to instead of stdout.")
}

// readConfig layers the optional lenswiki.json5 under any flags the
// user passed. Running with no config file and no flags is fine, the
// client fills in the production site and ./cache.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("lenswiki.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	return cfg
}

func createClient(ctx context.Context, cfg Config) *voigtlander.Client {
	client, err := voigtlander.NewClient(ctx, voigtlander.ClientOptions{
		BaseUrl:  cfg.BaseUrl,
		CacheDir: cfg.CacheDir,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize site client", err)
	}
	if *verbose {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/voigtlander"))
	}
	return client
}

func runScrape(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	tel, err := telemetry.SetupFromEnv(ctx, "lenswiki")
	if err != nil {
		serviceutil.Fatal("failed to initialize telemetry", err)
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	cfg := readConfig()
	client := createClient(ctx, cfg)

	var out *os.File = os.Stdout
	if cfg.Output != "" {
		out, err = os.Create(cfg.Output)
		if err != nil {
			serviceutil.Fatal("failed to create output file", err)
		}
		defer out.Close()
	}

	service := lenstables.NewService(client, out, timezone.AccessDate(timezone.Now()))

	t1 := time.Now()
	err = service.Run(ctx)
	t2 := time.Now()
	if err != nil {
		serviceutil.Fatal("failed to scrape", err)
	}

	slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds())
}
