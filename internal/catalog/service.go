// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vodbrowse/internal/platform/apperr"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	"github.com/taibuivan/vodbrowse/internal/platform/ctxutil"
	"github.com/taibuivan/vodbrowse/internal/source"
	"github.com/taibuivan/vodbrowse/pkg/slice"
)

// Service implements the proxy use cases on top of the source registry and
// the upstream client. Every error it returns is an [*apperr.AppError].
type Service struct {
	sources  Sources
	upstream Upstream
	logger   *slog.Logger
}

// NewService constructs a [Service].
func NewService(sources Sources, upstream Upstream, logger *slog.Logger) *Service {
	return &Service{
		sources:  sources,
		upstream: upstream,
		logger:   logger,
	}
}

// ListSources returns the public projection of every enabled source.
func (service *Service) ListSources(ctx context.Context) ([]source.Summary, error) {
	enabled, err := service.sources.Enabled(ctx)
	if err != nil {
		return nil, apperr.UpstreamFailure(constants.MsgSearchFailed, err)
	}

	summaries := slice.Map(enabled, source.Source.Summary)
	if summaries == nil {
		summaries = []source.Summary{}
	}
	return summaries, nil
}

/*
ListCategories returns the upstream category list of the source keyed by
resourceID, in upstream order.

Returns:
  - []Category: at least one category
  - error: MissingParameter, UnknownSource, EmptyResult or UpstreamFailure
*/
func (service *Service) ListCategories(ctx context.Context, resourceID string) ([]Category, error) {
	src, err := service.resolve(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	categories, err := service.upstream.Categories(ctx, src)
	if err != nil {
		return nil, apperr.UpstreamFailure(constants.MsgSearchFailed, err)
	}
	if len(categories) == 0 {
		return nil, apperr.EmptyResult(constants.MsgNoResults)
	}

	return categories, nil
}

/*
ListItems returns one upstream listing page of the source keyed by
resourceID, in upstream order and unfiltered.

Returns:
  - []Item: at least one item
  - error: MissingParameter, UnknownSource, EmptyResult or UpstreamFailure
*/
func (service *Service) ListItems(ctx context.Context, resourceID string, query ListQuery) ([]Item, error) {
	src, err := service.resolve(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	items, err := service.upstream.Items(ctx, src, query)
	if err != nil {
		return nil, apperr.UpstreamFailure(constants.MsgSearchFailed, err)
	}
	if len(items) == 0 {
		return nil, apperr.EmptyResult(constants.MsgNoResults)
	}

	return items, nil
}

// resolve finds the enabled source keyed by resourceID. The upstream is never
// contacted when this fails.
func (service *Service) resolve(ctx context.Context, resourceID string) (source.Source, error) {
	if resourceID == "" {
		return source.Source{}, apperr.MissingParameter(constants.MsgMissingResourceID)
	}

	src, ok, err := service.sources.Find(ctx, resourceID)
	if err != nil {
		return source.Source{}, apperr.UpstreamFailure(constants.MsgSearchFailed, err)
	}
	if !ok {
		ctxutil.GetLogger(ctx).InfoContext(ctx, "unknown_source_requested",
			slog.String("resource_id", resourceID),
		)
		return source.Source{}, apperr.UnknownSource(constants.MsgUnknownSource, resourceID)
	}

	return src, nil
}
