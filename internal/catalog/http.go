// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vodbrowse/internal/platform/apperr"
	"github.com/taibuivan/vodbrowse/internal/platform/constants"
	requestutil "github.com/taibuivan/vodbrowse/internal/platform/request"
	"github.com/taibuivan/vodbrowse/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer of the category proxy.
type Handler struct {
	service   *Service
	cacheTime int
}

// NewHandler constructs a [Handler]. cacheTime is the public cache TTL in
// seconds advertised on cacheable answers.
func NewHandler(service *Service, cacheTime int) *Handler {
	return &Handler{service: service, cacheTime: cacheTime}
}

// Routes returns the category endpoints, mounted under /api/category.
//
//   - GET /list?resourceId=<key>
//   - GET /detail?resourceId=<key>&q=<typeId>&page=<n>
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/list", handler.listCategories)
	router.Get("/detail", handler.listItems)

	return router
}

// ListSources serves GET /api/sources.
func (handler *Handler) ListSources(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.service.ListSources(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Results(writer, summaries)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	resourceID := requestutil.QueryRaw(request, constants.ParamResourceID)

	categories, err := handler.service.ListCategories(request.Context(), resourceID)
	if err != nil {
		// An empty category list is reported with an empty array.
		handler.fail(writer, request, err, []Category{})
		return
	}

	respond.CacheFor(writer, handler.cacheTime)
	respond.Results(writer, categories)
}

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	resourceID := requestutil.QueryRaw(request, constants.ParamResourceID)

	query := ListQuery{
		TypeID: requestutil.Query(request, constants.ParamQuery),
		Page:   requestutil.QueryInt(request, constants.ParamPage),
	}

	items, err := handler.service.ListItems(request.Context(), resourceID, query)
	if err != nil {
		handler.fail(writer, request, err, nil)
		return
	}

	respond.CacheFor(writer, handler.cacheTime)
	respond.Results(writer, items)
}

// fail writes the error envelope. emptyResult is the result value used when
// the upstream answered with nothing; every other failure carries null.
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error, emptyResult any) {
	switch {
	case apperr.Is(err, apperr.CodeMissingParameter):
		respond.CacheFor(writer, handler.cacheTime)
		respond.Error(writer, request, err)
	case apperr.Is(err, apperr.CodeEmptyResult):
		respond.ErrorWithResult(writer, request, err, emptyResult)
	default:
		respond.Error(writer, request, err)
	}
}
