package field

import (
	"context"
	"net/http"
	"net/url"
)

const (
	EditModeCreate = "create"
	EditModeUpdate = "update"
	EditModeAttach = "attach"
)

// Request is the slice of an incoming admin request that fields care about.
type Request struct {
	ctx      context.Context
	editMode string
	query    url.Values
}

func NewRequest(r *http.Request) *Request {
	query := r.URL.Query()
	return &Request{
		ctx:      r.Context(),
		editMode: query.Get("editMode"),
		query:    query,
	}
}

func NewRequestWithContext(ctx context.Context, editMode string) *Request {
	return &Request{
		ctx:      ctx,
		editMode: editMode,
		query:    url.Values{},
	}
}

func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

func (r *Request) EditMode() string {
	if r == nil {
		return ""
	}
	return r.editMode
}

func (r *Request) Query(key string) string {
	if r == nil || r.query == nil {
		return ""
	}
	return r.query.Get(key)
}

func (r *Request) IsCreateOrAttachRequest() bool {
	mode := r.EditMode()
	return mode == EditModeCreate || mode == EditModeAttach
}
