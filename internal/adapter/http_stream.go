// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	eventStreamContentType = "text/event-stream"
	snapshotEvent          = "snapshot"

	// maxEventSize bounds one SSE line.
	maxEventSize = 1 << 20

	reconnectInitialInterval = 250 * time.Millisecond
	reconnectMaxInterval     = 10 * time.Second
)

// streamSubscription is one SSE connection, reopened until Unsubscribe.
type streamSubscription struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (s *streamSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Subscribe opens the event stream of path. ctx bounds only the first
// connection, which must succeed; later drops are retried with backoff and
// the server resends the current value on every reconnect. A 401 or 404
// ends the subscription and is reported to the stream error handler.
func (h *httpServerAdapter) Subscribe(ctx context.Context, path models.Path, fn func(models.Snapshot)) (store.Subscription, error) {
	subCtx, cancel := context.WithCancel(context.Background())

	body, err := h.openStream(ctx, subCtx, path)
	if err != nil {
		cancel()
		return nil, err
	}

	sub := &streamSubscription{cancel: cancel}
	go h.consume(subCtx, path, body, fn)

	return sub, nil
}

// openStream connects under streamCtx while honouring ctx until the
// response headers arrive.
func (h *httpServerAdapter) openStream(ctx, streamCtx context.Context, path models.Path) (io.ReadCloser, error) {
	reqCtx, cancel := context.WithCancel(streamCtx)
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	resp, err := h.withToken(h.stream.R().SetContext(reqCtx)).
		SetHeader("Accept", eventStreamContentType).
		SetDoNotParseResponse(true).
		Get(dataURL(path))
	if err != nil {
		cancel()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("subscribe %s: %w", path, err)
	}

	body := resp.RawBody()
	if err = newHTTPError(resp.StatusCode(), nil); err != nil {
		msg, _ := io.ReadAll(io.LimitReader(body, maxEventSize))
		_ = body.Close()
		cancel()
		return nil, newHTTPError(resp.StatusCode(), msg)
	}

	return &cancelOnClose{ReadCloser: body, cancel: cancel}, nil
}

// cancelOnClose releases the request context together with the body.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

func (h *httpServerAdapter) consume(ctx context.Context, path models.Path, body io.ReadCloser, fn func(models.Snapshot)) {
	log := h.logger.WithComponent("stream")

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = reconnectInitialInterval
	retry.MaxInterval = reconnectMaxInterval

	for {
		delivered, err := readEvents(ctx, path, body, fn)
		_ = body.Close()
		if ctx.Err() != nil {
			return
		}
		if delivered {
			retry.Reset()
		}
		log.Warn().Err(err).Str("func", "*httpServerAdapter.consume").Str("path", path.String()).Msg("stream dropped, reconnecting")

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retry.NextBackOff()):
			}

			body, err = h.openStream(ctx, ctx, path)
			if err == nil {
				break
			}
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
				log.Error().Err(err).Str("func", "*httpServerAdapter.consume").Str("path", path.String()).Msg("stream closed for good")
				if onErr := h.streamErrorHandler(); onErr != nil {
					onErr(path, err)
				}
				return
			}
			log.Debug().Err(err).Str("func", "*httpServerAdapter.consume").Msg("reconnect failed")
		}
	}
}

// readEvents delivers snapshot events until the stream ends. It reports
// whether at least one snapshot was delivered.
func readEvents(ctx context.Context, path models.Path, r io.Reader, fn func(models.Snapshot)) (bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var (
		event     string
		data      []string
		delivered bool
	)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if event == snapshotEvent && len(data) > 0 {
				snapshot, err := models.DecodeSnapshot(path, []byte(strings.Join(data, "\n")))
				if err != nil {
					return delivered, err
				}
				if ctx.Err() != nil {
					return delivered, ctx.Err()
				}
				fn(snapshot)
				delivered = true
			}
			event, data = "", nil
		case strings.HasPrefix(line, ":"):
			// heartbeat
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return delivered, err
	}
	return delivered, io.ErrUnexpectedEOF
}
