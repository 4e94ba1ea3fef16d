package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog/log"

	"go-dominance/internal/model"
	"go-dominance/internal/samples"
	"go-dominance/internal/store"
)

// Loader turns a model.Source into a frame
type Loader struct {
	Client  *http.Client
	Timeout time.Duration // per fetch attempt
	Retry   RetryConfig
	MaxBody int64 // max remote body bytes, 0 means unlimited
}

// NewLoader returns a loader with the default client and retry policy.
func NewLoader() *Loader {
	return &Loader{
		Client:  http.DefaultClient,
		Timeout: 15 * time.Second,
		Retry:   DefaultRetryConfig,
		MaxBody: 32 << 20,
	}
}

// Load reads the table behind src.
func (l *Loader) Load(ctx context.Context, src model.Source) (dataframe.DataFrame, error) {
	log.Debug().Str("type", src.Type).Str("url", src.URL).Msg("➡️ Starting ingestion")

	var (
		df  dataframe.DataFrame
		err error
	)
	switch strings.ToLower(src.Type) {
	case model.SourceFile:
		df, err = l.loadFile(src.URL)
	case model.SourceURL:
		df, err = l.loadURL(ctx, src.URL)
	case model.SourceInline:
		df, err = ReadTable(strings.NewReader(src.Data))
	case model.SourceSample:
		df, err = l.loadSample(src.URL)
	case model.SourceSQLite:
		df, err = l.loadSQLite(ctx, src.URL, src.Query)
	case "":
		// a bare location picks file or url by scheme
		if isRemote(src.URL) {
			df, err = l.loadURL(ctx, src.URL)
		} else {
			df, err = l.loadFile(src.URL)
		}
	default:
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrUnknownSource, src.Type)
	}
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	log.Debug().Str("type", src.Type).Int("rows", df.Nrow()).Strs("columns", df.Names()).Msg("✅ Finished ingestion")
	return df, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (l *Loader) loadFile(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer file.Close()
	return ReadTable(file)
}

func (l *Loader) loadSample(name string) (dataframe.DataFrame, error) {
	rc, err := samples.Open(name)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrUnknownSource, err)
	}
	defer rc.Close()
	return ReadTable(rc)
}

func (l *Loader) loadSQLite(ctx context.Context, dsn, query string) (dataframe.DataFrame, error) {
	if query == "" {
		return dataframe.DataFrame{}, fmt.Errorf("%w: sqlite source needs a query", ErrInvalidRequest)
	}
	records, err := store.QueryRecords(ctx, dsn, query)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return FrameFromRecords(records)
}

func (l *Loader) loadURL(ctx context.Context, url string) (dataframe.DataFrame, error) {
	if !isRemote(url) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: not an http(s) URL: %q", ErrSourceUnavailable, url)
	}

	var body []byte
	err := withRetry(ctx, l.Retry, "fetch "+url, func() error {
		b, err := l.fetch(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: GET %s: %v", ErrSourceUnavailable, url, err)
	}

	log.Debug().Str("url", url).Int("bytes", len(body)).Msg("🌐 Fetched remote CSV")
	return ReadTable(bytes.NewReader(body))
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, permanent(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, permanent(fmt.Errorf("status %s", resp.Status))
	}

	reader := io.Reader(resp.Body)
	if l.MaxBody > 0 {
		reader = io.LimitReader(resp.Body, l.MaxBody+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if l.MaxBody > 0 && int64(len(body)) > l.MaxBody {
		return nil, permanent(fmt.Errorf("body exceeds %d bytes", l.MaxBody))
	}
	return body, nil
}
