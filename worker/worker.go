package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"ytmeta/config"
	"ytmeta/metrics"
	"ytmeta/model"
	"ytmeta/table"
	"ytmeta/youtube"
)

const (
	fetchSubject  = "metadata.fetch"
	resultSubject = "metadata.fetch.result"

	requestTimeout = 2 * time.Minute
)

type Worker struct {
	config     *config.Config
	natsConn   *nats.Conn
	fetcher    *youtube.Fetcher
	cancelFunc context.CancelFunc
}

func NewWorker(cfg *config.Config, fetcher *youtube.Fetcher) (*Worker, error) {
	nc, err := nats.Connect(cfg.NATSUrl)
	if err != nil {
		return nil, err
	}

	return &Worker{
		config:   cfg,
		natsConn: nc,
		fetcher:  fetcher,
	}, nil
}

func (w *Worker) Start(ctx context.Context) error {
	log.Println("Starting metadata worker...")

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel

	_, err := w.natsConn.Subscribe(fetchSubject, func(msg *nats.Msg) {
		w.handleFetchRequest(workerCtx, msg)
	})
	if err != nil {
		return err
	}

	log.Printf("Successfully subscribed to %s", fetchSubject)
	return nil
}

func (w *Worker) Stop() {
	log.Println("Stopping metadata worker...")
	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	if w.natsConn != nil {
		w.natsConn.Close()
	}
}

func (w *Worker) handleFetchRequest(ctx context.Context, msg *nats.Msg) {
	var req model.FetchRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		log.Printf("Failed to unmarshal fetch request: %v", err)
		return
	}

	log.Printf("Processing fetch request: %s (%d ids)", req.RequestID, len(req.IDs))

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result := Process(reqCtx, w.fetcher, req)

	resultData, err := json.Marshal(result)
	if err != nil {
		log.Printf("Failed to marshal fetch result for %s: %v", req.RequestID, err)
		return
	}
	if err := w.natsConn.Publish(resultSubject, resultData); err != nil {
		log.Printf("Failed to publish fetch result for %s: %v", req.RequestID, err)
		return
	}

	log.Printf("Completed fetch request: %s", req.RequestID)
}

// Process runs the normalize → fetch → rows pipeline for one request and
// maps the outcome onto a FetchResult. Fetch failures end up in the result's
// Error field rather than being returned; the requester sees them either way.
func Process(ctx context.Context, fetcher *youtube.Fetcher, req model.FetchRequest) model.FetchResult {
	result := model.FetchResult{
		RequestID:   req.RequestID,
		ProcessedAt: time.Now(),
	}

	ids := youtube.NormalizeIDs(req.IDs)
	if len(ids) == 0 {
		result.Error = "no video IDs provided"
		return result
	}

	items, err := fetcher.FetchVideos(ctx, ids)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.NotFound = youtube.MissingIDs(ids, items)
	if len(result.NotFound) > 0 {
		metrics.VideosNotFoundTotal.Add(float64(len(result.NotFound)))
	}

	cols := table.SelectColumns(req.Columns)
	switch req.Format {
	case "markdown":
		result.Table = table.RenderMarkdown(table.Labels(cols), table.BuildRows(items, cols))
	case "grid":
		result.Table = table.RenderGrid(table.Labels(cols), table.BuildRows(items, cols))
	default:
		result.Videos = table.BuildRowMaps(items, cols)
	}

	result.Success = true
	return result
}
