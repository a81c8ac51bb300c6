package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// LockRequest is the lock endpoint payload
type LockRequest struct {
	TimeLogIDs []uint64   `json:"timeLogIds"`
	Filter     LockFilter `json:"filter"`
}

// LockFilter mirrors the filter block of the lock payload
type LockFilter struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// RequestResult contains metrics for a single request
type RequestResult struct {
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// ContentionStats aggregates outcomes across all workers
type ContentionStats struct {
	Locked        int // 200: this request won the batch
	Conflicts     int // 409: another request locked first
	NoOps         int // 400 nothing-locked: candidates drifted
	OtherFailures int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent lock requests per batch")
	batches := flag.Int("n", 20, "Number of contention batches to run")
	idsStr := flag.String("ids", "1,2,3,4,5", "Comma-separated time log IDs every request competes for")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	adminID := flag.String("admin", "1", "Actor ID sent in X-Actor-ID (must be an admin)")
	startDate := flag.String("from", "2025-01-01", "Filter start date (YYYY-MM-DD)")
	endDate := flag.String("to", "2025-12-31", "Filter end date (YYYY-MM-DD)")
	flag.Parse()

	var ids []uint64
	for _, idStr := range strings.Split(*idsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		fmt.Println("No valid time log IDs given")
		return
	}

	fmt.Printf("Contending for %d time logs with %d concurrent requests per batch\n", len(ids), *concurrency)
	fmt.Printf("Batches: %d\n", *batches)

	payload, err := json.Marshal(LockRequest{
		TimeLogIDs: ids,
		Filter:     LockFilter{StartDate: *startDate, EndDate: *endDate},
	})
	if err != nil {
		fmt.Printf("Failed to build payload: %v\n", err)
		return
	}

	stats := &ContentionStats{
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *batches**concurrency),
	}

	client := &http.Client{Timeout: 10 * time.Second}
	startTime := time.Now()

	// Every batch fires all requests at once against the same candidate
	// set. At most one request per run of the data can win; the rest must
	// come back as conflicts or no-ops, never as partial locks.
	for b := 0; b < *batches; b++ {
		var wg sync.WaitGroup
		for i := 0; i < *concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result := sendLockRequest(client, *baseURL, *adminID, payload)
				recordResult(stats, result)
			}()
		}
		wg.Wait()

		if (b+1)%5 == 0 {
			fmt.Printf("Progress: %d/%d batches completed\n", b+1, *batches)
		}
	}

	printResults(stats, time.Since(startTime), *batches**concurrency)
}

func sendLockRequest(client *http.Client, baseURL, adminID string, payload []byte) RequestResult {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/time-logs/lock", bytes.NewReader(payload))
	if err != nil {
		return RequestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", adminID)
	req.Header.Set("X-Actor-Role", "admin")

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return RequestResult{ResponseTime: elapsed, Error: err}
	}
	resp.Body.Close()
	return RequestResult{StatusCode: resp.StatusCode, ResponseTime: elapsed}
}

func recordResult(stats *ContentionStats, result RequestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)

	switch {
	case result.Error != nil:
		stats.OtherFailures++
		stats.ErrorCounts[result.Error.Error()]++
	case result.StatusCode == http.StatusOK:
		stats.Locked++
	case result.StatusCode == http.StatusConflict:
		stats.Conflicts++
	case result.StatusCode == http.StatusBadRequest:
		stats.NoOps++
	default:
		stats.OtherFailures++
		stats.ErrorCounts[fmt.Sprintf("HTTP status code %d", result.StatusCode)]++
	}
}

func printResults(stats *ContentionStats, totalTime time.Duration, totalRequests int) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var p50, p95, p99 time.Duration
	if len(sorted) > 0 {
		p50 = sorted[len(sorted)*50/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:   %d in %.2f seconds\n", totalRequests, totalTime.Seconds())
	fmt.Printf("Locked (200):     %d\n", stats.Locked)
	fmt.Printf("Conflicts (409):  %d\n", stats.Conflicts)
	fmt.Printf("No-ops (400):     %d\n", stats.NoOps)
	fmt.Printf("Other failures:   %d\n", stats.OtherFailures)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:     %v\n", p50)
	fmt.Printf("P95 Response:     %v\n", p95)
	fmt.Printf("P99 Response:     %v\n", p99)

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if stats.Locked <= 1 {
		fmt.Println("At most one request won the batch: the conditional lock held under contention")
	} else {
		fmt.Printf("%d requests reported success for the same candidate set: investigate the lock guard\n", stats.Locked)
	}
	fmt.Println("================================================")
}
