package loader

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

const renderedFetchTimeout = 15 * time.Second

// PlaywrightFetcher renders pages in headless Chromium for sites that
// serve an empty shell to plain HTTP clients. The browser driver starts
// lazily on first use so the binary runs fine without Playwright
// installed as long as the fallback never fires.
type PlaywrightFetcher struct {
	userAgent string

	once    sync.Once
	pw      *playwright.Playwright
	startUp error
}

func NewPlaywrightFetcher(userAgent string) *PlaywrightFetcher {
	return &PlaywrightFetcher{userAgent: userAgent}
}

func (f *PlaywrightFetcher) start() error {
	f.once.Do(func() {
		f.pw, f.startUp = playwright.Run()
	})
	return f.startUp
}

// Close stops the Playwright driver if it was ever started.
func (f *PlaywrightFetcher) Close() {
	if f.pw != nil {
		_ = f.pw.Stop()
	}
}

func (f *PlaywrightFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := f.start(); err != nil {
		return "", err
	}

	browser, err := f.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--disable-gpu",
			"--no-sandbox",
			"--disable-dev-shm-usage",
		},
	})
	if err != nil {
		return "", err
	}
	defer browser.Close()

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:         playwright.String(f.userAgent),
		Viewport:          &playwright.Size{Width: 1920, Height: 1080},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return "", err
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	timeout := renderedFetchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if _, err := page.Goto(rawURL, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", err
	}

	return page.Content()
}
