// Command homofo rewrites text into a homophonic respelling: each word is
// replaced by a different real word (or pair of words) that sounds alike.
// Candidates come from the CMU pronouncing dictionary, the Datamuse API and
// a persistent SQLite cache of past discoveries.
//
// Usage:
//
//	homofo [flags] input.txt [output.txt]
//	homofo [flags] -url https://example.com/article
//	homofo -preseed
package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/rgilles/homofo/pkg/datamuse"
	"github.com/rgilles/homofo/pkg/db"
	"github.com/rgilles/homofo/pkg/freq"
	"github.com/rgilles/homofo/pkg/phonetic"
	"github.com/rgilles/homofo/pkg/respell"
	"github.com/rgilles/homofo/pkg/seed"
	"github.com/rgilles/homofo/pkg/tokenize"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	urlFlag := flag.String("url", "", "Fetch this URL and respell its readable article text")
	dbFlag := flag.String("db", "homophone_cache.db", "Path to the SQLite homophone cache")
	dictFlag := flag.String("dict", "cmudict.dict", "Path to the CMU pronouncing dictionary (auto-downloaded when missing)")
	dictURL := flag.String("dict-url", phonetic.DefaultURL, "Download URL for the pronouncing dictionary")
	freqFlag := flag.String("freq", "count_1w.txt", "Path to the word frequency list (auto-downloaded when missing)")
	freqURL := flag.String("freq-url", freq.DefaultURL, "Download URL for the word frequency list")
	datamuseFlag := flag.String("datamuse", datamuse.DefaultEndpoint, "Datamuse API endpoint")
	chunkSize := flag.Int("chunk-size", 1000, "Number of tokens to process at a time")
	cacheSize := flag.Int("cache-size", respell.DefaultCacheSize, "Size of the in-memory LRU cache for resolved words")
	strictOnly := flag.Bool("strict-only", false, "Use only strict homophones from the pronunciation dictionary")
	strictFirst := flag.Bool("strict-first", false, "Prefer strict homophones before consulting Datamuse")
	multiword := flag.Bool("multiword", false, "Enable multi-word splits (e.g. 'mister' -> 'missed her')")
	preferLonger := flag.Bool("prefer-longer", false, "Prefer longer homophone candidates")
	mode := flag.String("mode", respell.ModeWord, "Processing mode: word or syllable")
	alpha := flag.Float64("alpha", respell.DefaultAlpha, "Weight for phonetic similarity")
	beta := flag.Float64("beta", respell.DefaultBeta, "Weight for orthographic similarity")
	gamma := flag.Float64("gamma", respell.DefaultGamma, "Weight for word frequency")
	lengthWeight := flag.Float64("length-weight", respell.DefaultLengthWeight, "Weight for candidate length")
	minZipf := flag.Float64("min-zipf", respell.DefaultMinZipf, "Minimum Zipf frequency for a candidate to be considered a real word")
	rngSeed := flag.Int64("seed", 0, "Random seed for curated override selection (0 = time-based)")
	preseed := flag.Bool("preseed", false, "Bulk-import all strict homophone groups into the cache and exit")
	flag.Parse()

	if *mode != respell.ModeWord && *mode != respell.ModeSyllable {
		log.Fatalf("Invalid -mode %q: want %q or %q", *mode, respell.ModeWord, respell.ModeSyllable)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()
	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := phonetic.EnsureDictionary(ctx, *dictFlag, *dictURL); err != nil {
		log.Fatalf("Failed to fetch pronunciation dictionary: %v", err)
	}
	dict, err := phonetic.Load(*dictFlag)
	if err != nil {
		log.Fatalf("Failed to load pronunciation dictionary: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d dictionary words.\n", dict.Len())

	if *preseed {
		seeder := seed.NewSeeder(conn)
		seeder.Logger = log.Default()
		seeder.OnProgress = func(done, total int) {
			if done%5000 == 0 || done == total {
				fmt.Fprintf(os.Stderr, "  Seeded %d/%d homophone groups...\n", done, total)
			}
		}
		n, err := seeder.Seed(ctx, dict)
		if err != nil {
			log.Fatalf("Preseed failed: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Preseed complete: %d links written.\n", n)
		return
	}

	if err := freq.EnsureFrequencies(ctx, *freqFlag, *freqURL); err != nil {
		log.Fatalf("Failed to fetch frequency list: %v", err)
	}
	freqs, err := freq.Load(*freqFlag)
	if err != nil {
		log.Fatalf("Failed to load frequency list: %v", err)
	}

	cfg := respell.Config{
		StrictOnly:       *strictOnly,
		StrictFirst:      *strictFirst,
		EnableMultisplit: *multiword,
		PreferLonger:     *preferLonger,
		Mode:             *mode,
		Alpha:            *alpha,
		Beta:             *beta,
		Gamma:            *gamma,
		LengthWeight:     *lengthWeight,
		MinZipf:          *minZipf,
		FrontCacheSize:   *cacheSize,
	}

	s := *rngSeed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	resolver, err := respell.New(cfg, respell.Deps{
		Store:  db.NewStore(conn),
		Dict:   dict,
		Freq:   freqs,
		Fuzzy:  datamuse.NewClient(datamuse.WithEndpoint(*datamuseFlag)),
		Rand:   rand.New(rand.NewSource(s)),
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("Failed to create resolver: %v", err)
	}

	content, err := readInput(ctx, *urlFlag, flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	out := os.Stdout
	if flag.Arg(1) != "" {
		f, err := os.Create(flag.Arg(1))
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	tokens := tokenize.Tokens(content)
	total := len(tokens)
	fmt.Fprintf(os.Stderr, "Tokenizing complete. Processing %d tokens in chunks of %d.\n", total, *chunkSize)

	for i := 0; i < total; i += *chunkSize {
		end := i + *chunkSize
		if end > total {
			end = total
		}
		chunk := strings.Join(tokens[i:end], "")
		chunk = tokenize.ApplyPhrases(chunk, tokenize.DefaultPhrases)
		if _, err := io.WriteString(out, respellText(ctx, resolver, chunk)); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		percent := float64(end) / float64(total) * 100
		fmt.Fprintf(os.Stderr, "  Processed up to token %d... (%.1f%%)\n", end, percent)
	}
	fmt.Fprintln(os.Stderr, "Processing complete.")
}

// respellText resolves each word token of text left to right, restoring
// the original token's casing on every substitution.
func respellText(ctx context.Context, resolver *respell.Resolver, text string) string {
	var b strings.Builder
	for _, tok := range tokenize.Tokens(text) {
		if !tokenize.IsWord(tok) {
			b.WriteString(tok)
			continue
		}
		sub := resolver.Resolve(ctx, strings.ToLower(tok))
		if sub == "" || strings.EqualFold(sub, tok) {
			b.WriteString(tok)
			continue
		}
		b.WriteString(tokenize.MatchCase(sub, tok))
	}
	return b.String()
}

// readInput returns the text to respell: the readable article text of
// urlStr when given, otherwise the contents of path.
func readInput(ctx context.Context, urlStr, path string) (string, error) {
	if urlStr != "" {
		return fetchArticle(ctx, urlStr)
	}
	if path == "" {
		return "", fmt.Errorf("provide an input file or -url")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}

// fetchArticle downloads a page and extracts its readable article text.
func fetchArticle(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	// Some hosts block default Go user agents outright.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	const maxBodySize = 10 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Title: %s\n", article.Title)
	return article.TextContent, nil
}
