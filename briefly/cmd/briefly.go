// Command-line interface entrypoint: summarize one URL from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"briefly/briefly/config"
	"briefly/briefly/controllers"
	"briefly/briefly/services/links"
	"briefly/briefly/services/loader"
	"briefly/briefly/services/summarizer"
	"briefly/briefly/types"
	"briefly/briefly/utils/color"
	httputils "briefly/briefly/utils/http"
	"briefly/briefly/utils/logging"
)

func main() {
	logging.InitLogger()

	length := flag.Int("length", types.DefaultSummaryLength, "approximate summary word count (100-1000)")
	style := flag.String("style", string(types.StyleBulletPoints), "summary style: Bullet Points, Numbered List, Paragraph")
	showLinks := flag.Bool("links", true, "include important links only")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall request timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("briefly usage:")
		fmt.Println("  briefly [flags] <url>   # Summarize a YouTube or website URL")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}

	fetchClient := httputils.NewBrowserClient(cfg.FetchTimeout)
	acquirer := loader.New(loader.Options{
		Video:           loader.NewVideoLoader(fetchClient),
		Fallback:        loader.NewMetadataTool(cfg.YTDLPPath),
		Web:             loader.NewWebLoader(fetchClient, cfg.UserAgent, nil),
		CacheTTL:        cfg.CacheTTL,
		CacheMaxEntries: cfg.CacheMaxEntries,
	})
	groq := summarizer.NewGroq(summarizer.GroqConfig{
		APIKey:     cfg.GroqAPIKey,
		BaseURL:    cfg.GroqBaseURL,
		Model:      cfg.Model,
		ChunkChars: cfg.ChunkChars,
	})
	ctrl := controllers.NewSummaryController(acquirer, linkFilterOrDie(cfg), groq)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Println(color.ColorInfo("Loading and summarizing content..."))
	resp, err := ctrl.Summarize(ctx, types.SummarizeRequest{
		URL:       flag.Arg(0),
		Length:    *length,
		Style:     *style,
		ShowLinks: showLinks,
	})
	if err != nil {
		logging.ErrorLogger.Error("summarize failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(color.ColorHeader("Summary"))
	fmt.Println(resp.Summary)

	if *showLinks && len(resp.Links) > 0 {
		fmt.Println()
		fmt.Println(color.ColorHeader("Important Links"))
		for _, link := range resp.Links {
			fmt.Println(color.ColorLink("- " + link))
		}
	}

	fmt.Println()
	fmt.Println(color.ColorHeader("Stats"))
	fmt.Println(color.ColorStat(fmt.Sprintf("Summary word count: %d", resp.WordCount)))
	fmt.Println(color.ColorStat(fmt.Sprintf("Number of important links: %d", resp.LinkCount)))
}

func linkFilterOrDie(cfg config.Config) *links.Filter {
	f, err := links.NewFilter(cfg.ExtraDenylist...)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}
	return f
}
