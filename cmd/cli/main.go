package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"bartrender/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type redeemResponse struct {
	Label     string `json:"label"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type itemsResponse struct {
	Items []models.CocktailSummary `json:"items"`
}

func main() {
	global := flag.NewFlagSet("bartrender", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "entitlement token file path")
	device := global.String("device", "cli", "device id sent with favorite/promo calls")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cmd {
	case "promo":
		handlePromo(ctx, client, *baseURL, *tokenPath, *device, sub, args[2:])
	case "drinks":
		handleDrinks(ctx, client, *baseURL, sub, args[2:])
	case "search":
		handleSearch(ctx, client, *baseURL, args[1:])
	case "seasonal":
		handleSeasonal(ctx, client, *baseURL, args[1:])
	case "favorites":
		handleFavorites(ctx, client, *baseURL, *device, sub, args[2:])
	case "live":
		handleLive(*baseURL, sub, args[2:])
	case "export":
		handleExport(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handlePromo(ctx context.Context, client *http.Client, baseURL, tokenPath, device, sub string, args []string) {
	switch sub {
	case "redeem":
		fs := flag.NewFlagSet("promo redeem", flag.ExitOnError)
		code := fs.String("code", "", "promo code")
		_ = fs.Parse(args)
		if *code == "" {
			log.Fatal("code is required")
		}

		payload := map[string]string{"code": *code, "device_id": device}
		var resp redeemResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/promo/redeem", "", payload, &resp); err != nil {
			log.Fatalf("redeem failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Printf("✅ redeemed %q, entitled until %s\n", resp.Label, resp.ExpiresAt)
	case "status":
		token := mustToken(tokenPath)
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/promo/status", token, nil, &resp); err != nil {
			log.Fatalf("status failed: %v", err)
		}
		printJSON(resp)
	case "clear":
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("clear failed: %v", err)
		}
		fmt.Println("✅ token cleared")
	default:
		log.Fatal("usage: bartrender promo <redeem|status|clear>")
	}
}

func handleDrinks(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "curated", "mixes":
		fs := flag.NewFlagSet("drinks "+sub, flag.ExitOnError)
		virgin := fs.Bool("virgin", false, "non-alcoholic view")
		shots := fs.Bool("shots", false, "shots view")
		_ = fs.Parse(args)

		path := "/cocktails/curated"
		if sub == "mixes" {
			path = "/cocktails/ai-mixes"
		}
		u, err := url.Parse(baseURL + path)
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		u.RawQuery = modeQuery(*virgin, *shots).Encode()

		var resp itemsResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("%s failed: %v", sub, err)
		}
		printJSON(resp.Items)
	case "show":
		fs := flag.NewFlagSet("drinks show", flag.ExitOnError)
		name := fs.String("name", "", "drink name")
		virgin := fs.Bool("virgin", false, "non-alcoholic variant")
		shots := fs.Bool("shots", false, "shot variant")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		u, err := url.Parse(baseURL + "/cocktails/" + url.PathEscape(*name) + "/details")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		u.RawQuery = modeQuery(*virgin, *shots).Encode()

		var resp models.CocktailDetails
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	case "image":
		fs := flag.NewFlagSet("drinks image", flag.ExitOnError)
		name := fs.String("name", "", "drink name")
		out := fs.String("out", "", "output file (defaults to <name>.jpg)")
		force := fs.Bool("force", false, "regenerate even if cached")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		outPath := *out
		if outPath == "" {
			outPath = strings.ReplaceAll(strings.ToLower(*name), " ", "_") + ".jpg"
		}

		u, err := url.Parse(baseURL + "/cocktails/" + url.PathEscape(*name) + "/image")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		if *force {
			qv := u.Query()
			qv.Set("force", "1")
			u.RawQuery = qv.Encode()
		}

		data, err := doRaw(ctx, client, u.String())
		if err != nil {
			log.Fatalf("image failed: %v", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			log.Fatalf("write image: %v", err)
		}
		log.Printf("✅ saved %d bytes to %s", len(data), outPath)
	default:
		log.Fatal("usage: bartrender drinks <curated|mixes|show|image>")
	}
}

func handleSearch(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "search query")
	virgin := fs.Bool("virgin", false, "non-alcoholic view")
	shots := fs.Bool("shots", false, "shots view")
	_ = fs.Parse(args)
	if *query == "" {
		log.Fatal("q is required")
	}

	u, err := url.Parse(baseURL + "/search")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := modeQuery(*virgin, *shots)
	qv.Set("q", *query)
	u.RawQuery = qv.Encode()

	var resp itemsResponse
	if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
		log.Fatalf("search failed: %v", err)
	}
	printJSON(resp.Items)
}

func handleSeasonal(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("seasonal", flag.ExitOnError)
	offset := fs.Int("offset", 0, "months ahead of the current one")
	virgin := fs.Bool("virgin", false, "non-alcoholic view")
	shots := fs.Bool("shots", false, "shots view")
	_ = fs.Parse(args)

	u, err := url.Parse(baseURL + "/seasonal")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := modeQuery(*virgin, *shots)
	qv.Set("offset", fmt.Sprintf("%d", *offset))
	u.RawQuery = qv.Encode()

	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
		log.Fatalf("seasonal failed: %v", err)
	}
	printJSON(resp)
}

func handleFavorites(ctx context.Context, client *http.Client, baseURL, device, sub string, args []string) {
	switch sub {
	case "list":
		u := baseURL + "/favorites?device=" + url.QueryEscape(device)
		var resp itemsResponse
		if err := doJSON(ctx, client, http.MethodGet, u, "", nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp.Items)
	case "toggle":
		fs := flag.NewFlagSet("favorites toggle", flag.ExitOnError)
		name := fs.String("name", "", "drink name")
		description := fs.String("description", "", "description stored with the favorite")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		payload := models.CocktailSummary{Name: *name, Description: *description}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/favorites/toggle?device="+url.QueryEscape(device), "", payload, &resp); err != nil {
			log.Fatalf("toggle failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: bartrender favorites <list|toggle>")
	}
}

func handleLive(baseURL, sub string, args []string) {
	switch sub {
	case "listen":
		fs := flag.NewFlagSet("live listen", flag.ExitOnError)
		addr := fs.String("addr", "127.0.0.1:7070", "TCP event feed address")
		pretty := fs.Bool("pretty", true, "pretty print JSON events")
		_ = fs.Parse(args)
		for {
			if err := runLiveTCP(*addr, *pretty); err != nil {
				log.Printf("[live] disconnected: %v", err)
			}
			time.Sleep(1 * time.Second)
		}
	case "subscribe":
		fs := flag.NewFlagSet("live subscribe", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			endpoint, err = websocketURL(baseURL, "/ws")
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		if err := runWebSocket(endpoint); err != nil {
			log.Fatalf("subscribe failed: %v", err)
		}
	default:
		log.Fatal("usage: bartrender live <listen|subscribe>")
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "json":
		fs := flag.NewFlagSet("export json", flag.ExitOnError)
		out := fs.String("out", "data/catalog.json", "output JSON path")
		_ = fs.Parse(args)

		items, err := fetchCatalog(ctx, client, baseURL)
		if err != nil {
			log.Fatalf("export json failed: %v", err)
		}
		if err := writeJSON(*out, items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		log.Printf("✅ exported %d drinks to %s", len(items), *out)
	case "csv":
		fs := flag.NewFlagSet("export csv", flag.ExitOnError)
		out := fs.String("out", "data/catalog.csv", "output CSV path")
		_ = fs.Parse(args)

		items, err := fetchCatalog(ctx, client, baseURL)
		if err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
		if err := writeCSV(*out, items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		log.Printf("✅ exported %d drinks to %s", len(items), *out)
	default:
		log.Fatal("usage: bartrender export <json|csv>")
	}
}

func runLiveTCP(addr string, pretty bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[live] connected to %s", addr)
	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		line := reader.Bytes()
		if !pretty {
			fmt.Println(string(line))
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			fmt.Println(string(line))
			continue
		}
		b, _ := json.MarshalIndent(obj, "", "  ")
		fmt.Println(string(b))
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[live] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

// fetchCatalog pulls every list the API serves without generation side
// effects: curated, AI mixes, and the current seasonal page.
func fetchCatalog(ctx context.Context, client *http.Client, baseURL string) ([]models.CocktailSummary, error) {
	var out []models.CocktailSummary
	seen := map[string]bool{}

	for _, path := range []string{"/cocktails/curated", "/cocktails/ai-mixes", "/seasonal"} {
		var resp itemsResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+path, "", nil, &resp); err != nil {
			return nil, err
		}
		for _, it := range resp.Items {
			if it.IsDivider || seen[strings.ToLower(it.Name)] {
				continue
			}
			seen[strings.ToLower(it.Name)] = true
			out = append(out, it)
		}
	}

	return out, nil
}

func writeJSON(path string, items []models.CocktailSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.CocktailSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		"name", "description", "tags", "special_label", "is_premium", "likes",
	}); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write([]string{
			item.Name,
			item.Description,
			strings.Join(item.Tags, ","),
			item.SpecialLabel,
			fmt.Sprintf("%t", item.IsPremium),
			fmt.Sprintf("%d", item.Likes),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func modeQuery(virgin, shots bool) url.Values {
	qv := url.Values{}
	if virgin {
		qv.Set("virgin", "1")
	}
	if shots {
		qv.Set("shots", "1")
	}
	return qv
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func doRaw(ctx context.Context, client *http.Client, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s failed: %s", endpoint, strings.TrimSpace(string(data)))
	}
	return data, nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.bartrender-token.json"
	}
	return filepath.Join(home, ".bartrender", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, redeem a code first: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, redeem a code first")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("bartrender <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  promo redeem|status|clear")
	fmt.Println("  drinks curated|mixes|show|image")
	fmt.Println("  search -q <query>")
	fmt.Println("  seasonal [-offset N]")
	fmt.Println("  favorites list|toggle")
	fmt.Println("  live listen|subscribe")
	fmt.Println("  export json|csv")
}
