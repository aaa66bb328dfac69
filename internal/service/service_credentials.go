// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

const tracerName = "github.com/MKhiriev/go-creds-manager/internal/service"

type credentialService struct {
	store  store.Store
	tracer trace.Tracer
	logger *logger.Logger
}

func NewCredentialService(s store.Store, logger *logger.Logger) CredentialService {
	return &credentialService{
		store:  s,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
}

func (c *credentialService) Folder(ctx context.Context, ft models.FolderType) (models.FolderData, error) {
	snapshot, err := c.read(ctx, models.FolderPath(ft))
	if err != nil {
		return nil, err
	}
	return snapshot.Folder, nil
}

func (c *credentialService) Item(ctx context.Context, path models.Path) (models.DataItem, error) {
	snapshot, err := c.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return snapshot.Item, nil
}

func (c *credentialService) Save(ctx context.Context, path models.Path, item models.DataItem) error {
	ctx, span := c.start(ctx, "credentials.save", path)
	defer span.End()

	span.SetAttributes(attribute.Int("creds.fields", len(item)))
	if err := c.store.Write(ctx, path, item); err != nil {
		recordError(span, err)
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*credentialService.Save").
		Str("path", path.String()).
		Int("fields", len(item)).
		Msg("subfolder saved")
	return nil
}

func (c *credentialService) Delete(ctx context.Context, path models.Path) error {
	ctx, span := c.start(ctx, "credentials.delete", path)
	defer span.End()

	if err := c.store.Delete(ctx, path); err != nil {
		recordError(span, err)
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*credentialService.Delete").
		Str("path", path.String()).
		Msg("path deleted")
	return nil
}

func (c *credentialService) Watch(ctx context.Context, path models.Path, fn func(models.Snapshot)) (store.Subscription, error) {
	ctx, span := c.start(ctx, "credentials.subscribe", path)
	defer span.End()

	sub, err := c.store.Subscribe(ctx, path, fn)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return sub, nil
}

// read takes the first snapshot a subscription delivers and cancels it.
func (c *credentialService) read(ctx context.Context, path models.Path) (models.Snapshot, error) {
	ctx, span := c.start(ctx, "credentials.read", path)
	defer span.End()

	first := make(chan models.Snapshot, 1)
	sub, err := c.store.Subscribe(ctx, path, func(s models.Snapshot) {
		select {
		case first <- s:
		default:
		}
	})
	if err != nil {
		recordError(span, err)
		return models.Snapshot{}, err
	}
	defer sub.Unsubscribe()

	select {
	case snapshot := <-first:
		return snapshot, nil
	case <-ctx.Done():
		recordError(span, ctx.Err())
		return models.Snapshot{}, ctx.Err()
	}
}

func (c *credentialService) start(ctx context.Context, name string, path models.Path) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("creds.folder_type", path.FolderType.String()),
		attribute.String("creds.subfolder", path.Subfolder),
	))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
