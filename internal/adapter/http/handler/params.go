package handler

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"pod-seller-ledger/internal/adapter/http/dto"
	"pod-seller-ledger/internal/adapter/http/middleware"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/pkg/apperror"
	"pod-seller-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize      = 20
	maxPageSize          = 100
	maxIdempotencyKeyLen = 128
)

// requireActor returns the authenticated actor or writes AUTH_001.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return domain.Actor{}, false
	}
	return actor, true
}

// uuidParam parses a path parameter or writes REQ_001.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds and sanitizes a request body. When optional is set an
// empty body is accepted.
func bindJSON(c *gin.Context, req any, optional bool) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if !(optional && errors.Is(err, io.EOF)) {
			response.Error(c, apperror.Validation(err.Error()))
			return false
		}
	}
	dto.SanitizeStruct(req)
	return true
}

// idempotencyKey reads the Idempotency-Key header.
func idempotencyKey(c *gin.Context) (string, bool) {
	key := strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLen {
		response.Error(c, apperror.Validation("Idempotency-Key must be at most 128 characters"))
		return "", false
	}
	return key, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
