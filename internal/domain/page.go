package domain

import "math"

// PageRequest selects a zero-based page of a filtered result set
type PageRequest struct {
	Page int
	Size int
}

// Validate rejects page indexes below zero, sizes below one and
// pages whose offset does not fit in an int
func (r PageRequest) Validate() error {
	if r.Page < 0 || r.Size < 1 {
		return ErrInvalidPageRequest
	}
	if r.Page > math.MaxInt/r.Size {
		return ErrInvalidPageRequest
	}
	return nil
}

// Offset is the number of rows preceding the page
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is a slice of a larger result set plus totals for the whole set
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage computes total pages from the element count
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	return Page[T]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    TotalPages(total, req.Size),
	}
}

// TotalPages is ceil(total/size), zero for an empty set
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total-1)/int64(size) + 1)
}
